// Command adminctl registers an administrator account directly against the
// database, bypassing the HTTP endpoint. It is meant for bootstrapping the
// first user on a fresh deployment.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/migrations"
	"github.com/masjidapp/backend/internal/server/config"
	"github.com/masjidapp/backend/internal/store"
	"github.com/masjidapp/backend/internal/users"
	"github.com/masjidapp/backend/internal/verify"
)

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func promptSecret(label string) (string, error) {
	fmt.Printf("%s: ", label)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()

	reader := bufio.NewReader(os.Stdin)

	firstName, err := prompt(reader, "First name")
	if err != nil {
		return err
	}
	lastName, err := prompt(reader, "Last name")
	if err != nil {
		return err
	}
	email, err := prompt(reader, "Email")
	if err != nil {
		return err
	}
	username, err := prompt(reader, "Username")
	if err != nil {
		return err
	}
	password, err := promptSecret("Password")
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	svc := users.NewService(
		store.NewFactory(db, store.PerCall),
		verify.Spec{MaxAttempts: cfg.VerifyMaxAttempts, RetryDelay: cfg.VerifyRetryDelay},
		logger,
	)

	acct := users.Account{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Role:        "Admin",
		Credentials: users.Credentials{Username: username, Secret: password},
	}

	out, err := svc.Register(ctx, acct)
	if err != nil {
		return err
	}

	switch out.Status {
	case users.Registered:
		fmt.Printf("user %q registered\n", username)
	case users.AlreadyRegistered:
		fmt.Printf("user %q already exists\n", username)
	default:
		fmt.Printf("registration failed: %s\n", out.Reason)
	}

	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
