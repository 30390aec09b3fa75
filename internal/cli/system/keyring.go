package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/keyring"
	"github.com/julianstephens/stillday/internal/storage"
)

// KeyringSetCmd stores database connection credentials in the OS keyring
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(cmd.ConnectionString, "postgres://") &&
		!strings.HasPrefix(cmd.ConnectionString, "postgresql://") &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if storage.HasEmbeddedCredentials(cmd.ConnectionString) {
		// The keyring is encrypted, so embedded credentials are allowed
		// here even though they are rejected on the command line.
		fmt.Println("⚠️  Warning: Connection string contains embedded credentials.")
		fmt.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("✓ Connection string stored successfully in OS keyring")
	fmt.Println("  You can now use stillday without the --config flag")
	return nil
}

// KeyringGetCmd retrieves database connection credentials from the OS keyring
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'stillday keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	// Redact the password before printing
	fmt.Printf("Connection string: %s\n", redactConnString(connStr))
	return nil
}

// KeyringClearCmd removes database connection credentials from the OS keyring
type KeyringClearCmd struct{}

func (cmd *KeyringClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored in keyring.")
			return nil
		}
		return fmt.Errorf("failed to clear connection string from keyring: %w", err)
	}
	fmt.Println("✓ Connection string removed from OS keyring")
	return nil
}

func redactConnString(connStr string) string {
	at := strings.LastIndex(connStr, "@")
	scheme := strings.Index(connStr, "://")
	if at == -1 || scheme == -1 || at < scheme {
		return connStr
	}
	userinfo := connStr[scheme+3 : at]
	if colon := strings.Index(userinfo, ":"); colon != -1 {
		userinfo = userinfo[:colon] + ":****"
	}
	return connStr[:scheme+3] + userinfo + connStr[at:]
}
