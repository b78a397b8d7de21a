package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
)

// RunCreateUser creates a new local user account. The password and initial
// role are optional: a user without a password can only authenticate through
// the directory service, and the role must already exist when given.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase iamUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	username, password, role, format string,
) error {
	logger.Info("creating new user", slog.String("username", username))

	input := &iamDomain.CreateUserInput{
		Username: username,
		Password: password,
		Role:     role,
	}

	user, err := userUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		outputUserJSON(user, writer)
	} else {
		outputUserText(user, writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return nil
}

// outputUserText outputs the result in human-readable text format.
func outputUserText(user *iamDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "User created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(writer, "Username: %s\n", user.Username)
	if len(user.Roles) > 0 {
		_, _ = fmt.Fprintf(writer, "Roles: %v\n", user.Roles)
	}
	if !user.HasLocalPassword() {
		_, _ = fmt.Fprintln(writer, "No password set: the user can only authenticate through the directory service.")
	}
}

// outputUserJSON outputs the result in JSON format for machine consumption.
func outputUserJSON(user *iamDomain.User, writer io.Writer) {
	result := map[string]any{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"roles":    user.Roles,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
