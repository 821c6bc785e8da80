package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/moodkeeper/internal/client/storage"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	userID, err := c.authService.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registration successful!")
	c.io.Printf("User ID: %s\n", userID)
	c.io.Println("Run 'moodkeeper login' to start journaling.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Welcome back, %s!\n", session.Username)

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("Logout successful, local session deleted.")

	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not authenticated. Run 'moodkeeper login' first.")
			return nil
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	c.io.Printf("Logged in as: %s\n", session.Username)
	c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	c.io.Printf("Current mode:  %s\n", c.resolver.Current(ctx))

	status, err := c.dataService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Println()
	switch {
	case status.Pending == 0 && status.Failed == 0:
		c.io.Println("All entries synchronized.")
	default:
		c.io.Printf("Unsynced entries: %d pending, %d failed\n", status.Pending, status.Failed)
	}

	return nil
}
