package tasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/constants"
	"github.com/julianstephens/stillday/internal/validation"
)

type TaskAddCmd struct {
	Title  []string `arg:"" help:"Task title."`
	Effort string   `short:"e" enum:"short,medium,deep" default:"medium" help:"Effort estimate: short, medium, or deep."`
	Note   string   `short:"n" help:"Optional mindfulness note to read before starting."`
}

func (c *TaskAddCmd) Validate() error {
	if strings.TrimSpace(strings.Join(c.Title, " ")) == "" {
		return errors.New("task title cannot be empty")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	effort, err := validation.ParseEffort(c.Effort)
	if err != nil {
		return err
	}
	task, added := ctx.Planner.AddTask(strings.Join(c.Title, " "), effort, c.Note)
	if !added {
		fmt.Printf("Today already holds %d tasks. That is enough; nothing was added.\n", constants.MaxTasksPerDay)
		return nil
	}
	fmt.Printf("Added: %s\n", task.Title)
	return nil
}
