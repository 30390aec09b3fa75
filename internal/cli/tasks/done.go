package tasks

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
)

type TaskDoneCmd struct {
	Task string `arg:"" help:"Task position or id prefix."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Task)
	if err != nil {
		return err
	}
	ctx.Planner.ToggleTaskComplete(task.ID)
	if task.Completed {
		fmt.Printf("Reopened: %s\n", task.Title)
	} else {
		fmt.Printf("Completed: %s\n", task.Title)
	}
	return nil
}
