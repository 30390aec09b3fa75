package days

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/validation"
)

type HistoryCmd struct {
	Date string `arg:"" optional:"" help:"Show the full entry for a past day (YYYY-MM-DD)."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	if c.Date != "" {
		date, err := validation.ParseDate(c.Date)
		if err != nil {
			return err
		}
		entry, ok := ctx.Planner.Entry(date)
		if !ok {
			fmt.Printf("No entry for %s.\n", date)
			return nil
		}
		cli.PrintEntry(entry)
		return nil
	}

	entries := ctx.Planner.History()
	if len(entries) == 0 {
		fmt.Println("No past days recorded yet.")
		return nil
	}

	fmt.Println("Past days (most recent first):")
	for _, entry := range entries {
		done := 0
		for _, task := range entry.Tasks {
			if task.Completed {
				done++
			}
		}
		marker := ""
		if entry.Reflection != nil && entry.Reflection.LetGo {
			marker = "  (let go)"
		}
		intention := entry.Intention
		if intention == "" {
			intention = "-"
		}
		fmt.Printf("  %s  %d/%d tasks  %s%s\n", entry.Date, done, len(entry.Tasks), intention, marker)
	}
	return nil
}
