package system

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/notifier"
)

// RemindCmd is invoked by a cron entry or the tray app to surface a
// gentle check-in. It is hidden from help output.
type RemindCmd struct {
	DryRun bool `help:"Print the reminder to stdout instead of sending it."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	settings := ctx.Planner.Settings()
	if !settings.RemindersEnabled {
		if c.DryRun {
			fmt.Println("Reminders are disabled in settings.")
		}
		return nil
	}

	entry := ctx.Planner.Today()
	text := reminderText(len(entry.Tasks), entry.Intention != "", entry.Reflection != nil)

	if c.DryRun {
		fmt.Printf("Would send: %s\n", text)
		return nil
	}

	n := notifier.New()
	if err := n.Notify(text); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}

func reminderText(taskCount int, hasIntention, hasReflection bool) string {
	switch {
	case !hasIntention:
		return "Take a breath. What is your intention for today?"
	case taskCount == 0:
		return "Pick up to three things that matter today."
	case !hasReflection:
		return "A moment to reflect: what went well today?"
	default:
		return "All set for today. Done is enough."
	}
}
