package tasks

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
)

type TaskListCmd struct {
	Ids bool `help:"Show full task ids."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	entry := ctx.Planner.Today()
	if len(entry.Tasks) == 0 {
		fmt.Println("No tasks for today. Up to three is plenty.")
		return nil
	}
	for i, task := range entry.Tasks {
		fmt.Println(cli.FormatTaskLine(i, task))
		if c.Ids {
			fmt.Printf("   id: %s\n", task.ID)
		}
	}
	return nil
}
