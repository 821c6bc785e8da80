package cli

import (
	"context"
	"fmt"
	"time"
)

// watchInterval период перерисовки view в watch команде
const watchInterval = 2 * time.Second

// runWatch держит подписку на snapshot stream открытой и перепечатывает
// view при изменениях до отмены контекста (Ctrl+C)
func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("Watching journal, press Ctrl+C to stop.")
	c.io.Println()

	// Фоновый пересчет режима, пока watch активен
	go c.resolver.Run(ctx)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	var lastRendered string
	for {
		view, err := c.dataService.ListEntries(ctx)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		rendered := fmt.Sprintf("mode=%s entries=%d", c.resolver.Cached(), len(view))
		if rendered != lastRendered {
			lastRendered = rendered
			c.io.Printf("[%s] %s\n", time.Now().Format("15:04:05"), rendered)
			if err := c.runList(ctx); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
