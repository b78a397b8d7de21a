package usecase

import (
	"context"
	"time"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamService "github.com/licentio/licentio/internal/iam/service"
	"github.com/licentio/licentio/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (t *tokenUseCaseWithMetrics) Login(
	ctx context.Context,
	input *iamDomain.LoginInput,
) (*iamDomain.LoginOutput, error) {
	start := time.Now()
	output, err := t.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "iam", "token_login", status)
	t.metrics.RecordDuration(ctx, "iam", "token_login", time.Since(start), status)

	return output, err
}

// Verify records metrics for token verification operations.
func (t *tokenUseCaseWithMetrics) Verify(ctx context.Context, token string) (*iamService.Claims, error) {
	start := time.Now()
	claims, err := t.next.Verify(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "iam", "token_verify", status)
	t.metrics.RecordDuration(ctx, "iam", "token_verify", time.Since(start), status)

	return claims, err
}
