package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/moodkeeper/internal/models"
)

func (c *Cli) runMode(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		c.io.Printf("Current mode: %s\n", c.resolver.Current(ctx))
		return nil

	case "set":
		if len(args) < 2 {
			return fmt.Errorf("usage: moodkeeper mode set <A|B>")
		}
		m, err := models.ParseMode(args[1])
		if err != nil {
			return err
		}
		if err := c.resolver.SetOverride(ctx, m); err != nil {
			return err
		}
		c.io.Printf("Mode override set to %s.\n", m)
		return nil

	case "auto":
		if err := c.resolver.ClearOverride(ctx); err != nil {
			return err
		}
		c.io.Printf("Mode override cleared, automatic mode: %s\n", c.resolver.Current(ctx))
		return nil

	default:
		return fmt.Errorf("unknown mode subcommand: %s", sub)
	}
}
