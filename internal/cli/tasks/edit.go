package tasks

import (
	"errors"
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/validation"
)

type TaskEditCmd struct {
	Task   string  `arg:"" help:"Task position or id prefix."`
	Title  *string `help:"New title."`
	Effort *string `enum:"short,medium,deep" help:"New effort estimate."`
	Note   *string `help:"New mindfulness note (empty string clears it)."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Title == nil && c.Effort == nil && c.Note == nil {
		return errors.New("nothing to change, pass at least one of --title, --effort, --note")
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Task)
	if err != nil {
		return err
	}

	patch := models.TaskPatch{Title: c.Title, MindfulnessNote: c.Note}
	if c.Effort != nil {
		effort, err := validation.ParseEffort(*c.Effort)
		if err != nil {
			return err
		}
		patch.Effort = &effort
	}

	ctx.Planner.UpdateTask(task.ID, patch)
	fmt.Printf("Updated: %s\n", task.Title)
	return nil
}
