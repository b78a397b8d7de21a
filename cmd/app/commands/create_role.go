package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
)

// RunCreateRole creates a new role and optionally grants it a comma-separated
// list of access names. Every named access must already exist in the
// registry.
//
// Requirements: Database must be migrated and accessible.
func RunCreateRole(
	ctx context.Context,
	roleUseCase iamUseCase.RoleUseCase,
	accessUseCase iamUseCase.AccessUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name, accessesCSV, format string,
) error {
	logger.Info("creating new role", slog.String("name", name))

	accessNames, err := parseAccessNames(accessesCSV)
	if err != nil {
		return err
	}

	role, err := roleUseCase.Create(ctx, &iamDomain.CreateRoleInput{Name: name})
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	if len(accessNames) > 0 {
		registry, err := accessUseCase.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list accesses: %w", err)
		}

		byName := make(map[string]*iamDomain.Access, len(registry))
		for _, access := range registry {
			byName[access.Name] = access
		}

		for _, accessName := range accessNames {
			access, ok := byName[accessName]
			if !ok {
				return fmt.Errorf("unknown access name: %s", accessName)
			}

			role, err = roleUseCase.SetAccess(ctx, role.ID, access.ID, true)
			if err != nil {
				return fmt.Errorf("failed to grant access %q: %w", accessName, err)
			}
		}
	}

	if format == "json" {
		outputRoleJSON(role, writer)
	} else {
		outputRoleText(role, writer)
	}

	logger.Info("role created successfully",
		slog.String("role_id", role.ID.String()),
		slog.String("name", role.Name),
	)

	return nil
}

// parseAccessNames splits a comma-separated list of access names, dropping
// empty entries.
func parseAccessNames(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	parts := strings.Split(input, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("at least one access name is required")
	}

	return names, nil
}

// outputRoleText outputs the result in human-readable text format.
func outputRoleText(role *iamDomain.Role, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "Role created successfully!")
	_, _ = fmt.Fprintf(writer, "Role ID: %s\n", role.ID.String())
	_, _ = fmt.Fprintf(writer, "Name: %s\n", role.Name)
	for accessName, granted := range role.Accesses {
		if granted {
			_, _ = fmt.Fprintf(writer, "Granted: %s\n", accessName)
		}
	}
}

// outputRoleJSON outputs the result in JSON format for machine consumption.
func outputRoleJSON(role *iamDomain.Role, writer io.Writer) {
	result := map[string]any{
		"role_id":  role.ID.String(),
		"name":     role.Name,
		"accesses": role.Accesses,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
