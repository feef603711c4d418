package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gamesrank/backend/internal/app"
	"gamesrank/backend/internal/auth"
	"gamesrank/backend/internal/catalog"
	"gamesrank/backend/internal/config"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const commandTimeout = 5 * time.Minute

// importCmd replaces the catalog with the rows of a file
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the game catalog with a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			return runImport(ctx, a.Catalog, args[0], cmd.OutOrStdout())
		})
	},
}

// syncCmd pulls the external listing
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upsert the catalog from the external game-listing API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			return runSync(ctx, a.Catalog, cmd.OutOrStdout())
		})
	},
}

var (
	adminEmail    string
	adminName     string
	adminPassword string
)

// createAdminCmd creates an administrator account
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			return runCreateAdmin(ctx, a.Users, adminEmail, adminName, adminPassword, cmd.OutOrStdout())
		})
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Login email")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "Display name")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password (min 8 characters)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

// withApp opens the stores for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	a, err := app.Open(ctx, config.AppConfig, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			logger.Warn("Failed to close stores", zap.Error(err))
		}
	}()

	return fn(ctx, a)
}

func runImport(ctx context.Context, svc *catalog.Service, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	result, err := svc.Import(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %d games, skipped %d rows\n", result.Imported, result.Skipped)
	return nil
}

func runSync(ctx context.Context, svc *catalog.Service, out io.Writer) error {
	result, err := svc.Sync(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "fetched %d, inserted %d, updated %d, skipped %d\n",
		result.Fetched, result.Inserted, result.Updated, result.Skipped)
	return nil
}

func runCreateAdmin(ctx context.Context, users repository.UserRepository, email, name, password string, out io.Writer) error {
	user, err := auth.CreateAccount(ctx, users, auth.NewAccount{
		Email:    email,
		Name:     name,
		Password: password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	fmt.Fprintf(out, "created admin %s (id %d)\n", user.Email, user.ID)
	return nil
}
