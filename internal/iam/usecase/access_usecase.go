// Package usecase implements business logic orchestration for identity and
// access management operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

// accessUseCase implements AccessUseCase for the access registry.
type accessUseCase struct {
	accessRepo AccessRepository
}

// Create registers a new access name in the registry.
//
// Roles are not rewritten when the registry grows: their stored maps simply
// lack the new key, and the projection applied on every role read fills it in
// as false.
func (a *accessUseCase) Create(
	ctx context.Context,
	input *iamDomain.CreateAccessInput,
) (*iamDomain.Access, error) {
	access := &iamDomain.Access{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := a.accessRepo.Create(ctx, access); err != nil {
		return nil, err
	}

	return access, nil
}

// Get retrieves an access by ID.
func (a *accessUseCase) Get(ctx context.Context, accessID uuid.UUID) (*iamDomain.Access, error) {
	return a.accessRepo.Get(ctx, accessID)
}

// List retrieves the full registry ordered by name.
func (a *accessUseCase) List(ctx context.Context) ([]*iamDomain.Access, error) {
	return a.accessRepo.List(ctx)
}

// Delete removes an access from the registry.
//
// Stored role maps keep the now-stale key; the next projection drops it. No
// cascade over roles is performed.
func (a *accessUseCase) Delete(ctx context.Context, accessID uuid.UUID) error {
	return a.accessRepo.Delete(ctx, accessID)
}

// NewAccessUseCase creates a new AccessUseCase with the provided dependencies.
func NewAccessUseCase(accessRepo AccessRepository) AccessUseCase {
	return &accessUseCase{accessRepo: accessRepo}
}
