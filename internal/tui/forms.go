package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillday/internal/models"
)

func newTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task title cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.EffortLevel]().
				Title("Effort").
				Options(
					huh.NewOption("Short", models.EffortShort),
					huh.NewOption("Medium", models.EffortMedium),
					huh.NewOption("Deep", models.EffortDeep),
				).
				Value(&fm.Effort),
			huh.NewInput().
				Title("Mindfulness note").
				Description("Something to read before starting. Optional.").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}

func newIntentionForm(fm *IntentionFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Intention").
				Description("One sentence for the day.").
				Value(&fm.Intention),
			huh.NewSelect[models.MoodLevel]().
				Title("Mood").
				Options(
					huh.NewOption("1 · struggling", models.MoodLevel(1)),
					huh.NewOption("2 · low", models.MoodLevel(2)),
					huh.NewOption("3 · okay", models.MoodLevel(3)),
					huh.NewOption("4 · good", models.MoodLevel(4)),
					huh.NewOption("5 · great", models.MoodLevel(5)),
				).
				Value(&fm.Mood),
			huh.NewSelect[models.EnergyLevel]().
				Title("Energy").
				Options(
					huh.NewOption("Low", models.EnergyLow),
					huh.NewOption("Medium", models.EnergyMedium),
					huh.NewOption("High", models.EnergyHigh),
				).
				Value(&fm.Energy),
		),
	).WithTheme(huh.ThemeDracula())
}

func newReflectForm(fm *ReflectFormModel) *huh.Form {
	if len(fm.WentWell) < 3 {
		fm.WentWell = append(fm.WentWell, make([]string, 3-len(fm.WentWell))...)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Went well (1)").
				Value(&fm.WentWell[0]),
			huh.NewInput().
				Title("Went well (2)").
				Value(&fm.WentWell[1]),
			huh.NewInput().
				Title("Went well (3)").
				Value(&fm.WentWell[2]),
			huh.NewInput().
				Title("Felt heavy").
				Value(&fm.FeltHeavy),
			huh.NewInput().
				Title("Grateful for").
				Value(&fm.Gratitude),
		),
	).WithTheme(huh.ThemeDracula())
}
