package days

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
)

type LetGoCmd struct{}

func (c *LetGoCmd) Run(ctx *cli.Context) error {
	// Snapshot the carry-over count before the day is closed.
	incomplete := 0
	for _, task := range ctx.Planner.Today().Tasks {
		if !task.Completed {
			incomplete++
		}
	}

	ctx.PerformAutomaticBackup()
	ctx.Planner.LetGo()

	if incomplete == 0 {
		fmt.Println("Day released. Nothing left undone.")
	} else {
		fmt.Printf("Day released. %d unfinished task(s) moved to tomorrow.\n", incomplete)
	}
	fmt.Println("Done is enough.")
	return nil
}
