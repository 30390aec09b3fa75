package tasks

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
)

type TaskRemoveCmd struct {
	Task string `arg:"" help:"Task position or id prefix."`
}

func (c *TaskRemoveCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Task)
	if err != nil {
		return err
	}
	ctx.Planner.RemoveTask(task.ID)
	fmt.Printf("Removed: %s\n", task.Title)
	return nil
}
