// Package tasks holds the CLI surface for working with today's task
// list. Tasks are addressed by their 1-based position in `stillday
// today` output, or by a unique id prefix.
package tasks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/models"
)

func resolveTask(ctx *cli.Context, ref string) (models.Task, error) {
	tasks := ctx.Planner.Today().Tasks
	if len(tasks) == 0 {
		return models.Task{}, fmt.Errorf("no tasks for today")
	}

	if pos, err := strconv.Atoi(ref); err == nil {
		if pos < 1 || pos > len(tasks) {
			return models.Task{}, fmt.Errorf("no task at position %d (today has %d)", pos, len(tasks))
		}
		return tasks[pos-1], nil
	}

	var matches []models.Task
	for _, task := range tasks {
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("%q matches more than one task, use a longer prefix or the position number", ref)
	}
}
