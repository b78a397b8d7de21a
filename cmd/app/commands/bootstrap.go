package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
)

// RunBootstrap seeds the well-known access names into the registry. The
// command is idempotent: names that already exist are counted and skipped, so
// it is safe to run on every deploy.
//
// Requirements: Database must be migrated and accessible.
func RunBootstrap(
	ctx context.Context,
	accessUseCase iamUseCase.AccessUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	logger.Info("bootstrapping access registry")

	created := []string{}
	skipped := []string{}

	for _, name := range iamDomain.BootstrapAccessNames() {
		_, err := accessUseCase.Create(ctx, &iamDomain.CreateAccessInput{Name: name})
		if err != nil {
			if errors.Is(err, iamDomain.ErrAccessExists) {
				skipped = append(skipped, name)
				continue
			}
			return fmt.Errorf("failed to create access %q: %w", name, err)
		}
		created = append(created, name)
	}

	if format == "json" {
		outputBootstrapJSON(created, skipped, writer)
	} else {
		outputBootstrapText(created, skipped, writer)
	}

	logger.Info("bootstrap completed",
		slog.Int("created", len(created)),
		slog.Int("skipped", len(skipped)),
	)

	return nil
}

// outputBootstrapText outputs the result in human-readable text format.
func outputBootstrapText(created, skipped []string, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "Bootstrap completed!")
	for _, name := range created {
		_, _ = fmt.Fprintf(writer, "Created access: %s\n", name)
	}
	for _, name := range skipped {
		_, _ = fmt.Fprintf(writer, "Already exists: %s\n", name)
	}
}

// outputBootstrapJSON outputs the result in JSON format for machine consumption.
func outputBootstrapJSON(created, skipped []string, writer io.Writer) {
	result := map[string][]string{
		"created": created,
		"skipped": skipped,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
