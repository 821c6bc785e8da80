package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/moodkeeper/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	mood := fs.Int("mood", 0, "mood score 1..5 (required)")
	note := fs.String("note", "", "free-form note")
	tags := fs.String("tags", "", "comma-separated tags")
	at := fs.String("at", "", "recorded time, RFC3339 (default: now)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var recordedAt time.Time
	if *at != "" {
		parsed, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("invalid -at value: %w", err)
		}
		recordedAt = parsed
	}

	entry, err := c.dataService.AddEntry(ctx, *mood, *note, splitTags(*tags), recordedAt)
	if err != nil {
		return err
	}

	c.io.Printf("Entry %s recorded (mood %d).\n", entry.ID, entry.Mood)

	return nil
}

func (c *Cli) runList(ctx context.Context) error {
	view, err := c.dataService.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if len(view) == 0 {
		c.io.Println("No entries yet. Run 'moodkeeper add -mood N' to record one.")
		return nil
	}

	for _, item := range view {
		marker := " "
		switch item.Status {
		case models.MutationPending:
			marker = "~" // применено локально, ждет подтверждения
		case models.MutationFailed:
			marker = "!" // запись не дошла до сервера
		}

		line := fmt.Sprintf("%s %s  mood %d  %s",
			marker,
			item.Entry.RecordedAt.Format("2006-01-02 15:04"),
			item.Entry.Mood,
			item.Entry.ID)
		if item.Entry.Note != "" {
			line += "  " + item.Entry.Note
		}
		if len(item.Entry.Tags) > 0 {
			line += "  [" + strings.Join(item.Entry.Tags, ", ") + "]"
		}
		c.io.Println(line)
	}

	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: moodkeeper delete <entry-id>")
	}

	if err := c.dataService.DeleteEntry(ctx, args[0]); err != nil {
		return err
	}

	c.io.Printf("Entry %s deleted.\n", args[0])

	return nil
}

// splitTags разбирает список тегов из "a,b,c"
func splitTags(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
