// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev superuser already exists.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/app"
	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store/drivers/sqlite"
	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/aryamangoenka/User-Management-System/pkg/idx"
)

const (
	devAdminUsername  = "admin"
	devAdminPassword  = "password123"
	devUserUsername   = "dev"
	devLegacyUsername = "legacy_dev"
)

func main() {
	cfg := app.LoadConfig()

	cryptox.SetPepperPath(cfg.PepperFile)

	db, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile))
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	ctx := context.Background()

	if _, err := db.Users().GetUserByUsername(ctx, devAdminUsername); err == nil {
		log.Println("Seed already applied (admin exists). Skipping.")
		os.Exit(0)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Fatalf("seed check: %v", err)
	}

	passwordHash, err := cryptox.HashPassword(devAdminPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now().UTC()

	// Roles with the role-management permission set, plus a plain default.
	// Skipped when any roles exist already, so a partially seeded database
	// doesn't trip the unique name constraint.
	rolesEmpty, err := db.Roles().IsEmpty(ctx)
	if err != nil {
		log.Fatalf("roles check: %v", err)
	}
	if rolesEmpty {
		adminRole := domain.Role{
			ID:   idx.New().String(),
			Name: "admin",
			Permissions: []string{
				domain.PermCreateRole,
				domain.PermDeleteRole,
				domain.PermAddPermissionToRole,
				domain.PermRemovePermissionFromRole,
			},
			CreatedAt: now,
		}
		if err := db.Roles().CreateRole(ctx, adminRole); err != nil {
			log.Fatalf("create admin role: %v", err)
		}
		if err := db.Roles().CreateRole(ctx, domain.Role{
			ID:        idx.New().String(),
			Name:      domain.DefaultRole,
			CreatedAt: now,
		}); err != nil {
			log.Fatalf("create default role: %v", err)
		}
	}

	if err := db.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Username:     devAdminUsername,
		Email:        "admin@example.com",
		PasswordHash: passwordHash,
		Role:         "admin",
		IsSuperuser:  true,
		IsActive:     true,
		CreatedAt:    now,
	}); err != nil {
		log.Fatalf("create admin user: %v", err)
	}

	if err := db.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Username:     devUserUsername,
		Email:        "dev@example.com",
		PasswordHash: passwordHash,
		Role:         domain.DefaultRole,
		IsActive:     true,
		CreatedAt:    now,
	}); err != nil {
		log.Fatalf("create dev user: %v", err)
	}

	// A legacy account plus a live session token, for exercising the bridge.
	legacyAccountID := idx.New().String()
	if err := db.LegacyAccounts().CreateAccount(ctx, domain.LegacyAccount{
		ID:        legacyAccountID,
		Username:  devLegacyUsername,
		Email:     "legacy@example.com",
		Role:      domain.DefaultRole,
		IsActive:  true,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create legacy account: %v", err)
	}

	legacyToken := cryptox.MustGenerateToken(cryptox.TokenSize256)
	if err := db.LegacySessions().CreateSession(ctx, domain.LegacySession{
		TokenHash: cryptox.FingerprintToken(legacyToken),
		AccountID: legacyAccountID,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create legacy session: %v", err)
	}

	log.Println("Seed completed successfully.")
	fmt.Printf("Admin login: %s / %s\n", devAdminUsername, devAdminPassword)
	fmt.Printf("Dev login: %s / %s\n", devUserUsername, devAdminPassword)
	fmt.Printf("Legacy session token (%s): %s\n", devLegacyUsername, legacyToken)
}
