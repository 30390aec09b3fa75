package settings

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Reminders *bool `help:"Enable or disable gentle reminders."`
	Haptics   *bool `help:"Enable or disable haptic feedback."`
	Sounds    *bool `help:"Enable or disable sounds."`
	DarkMode  *bool `help:"Enable or disable dark mode."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Planner.Settings()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Reminders: %v\n", settings.RemindersEnabled)
		fmt.Printf("  Haptics:   %v\n", settings.HapticsEnabled)
		fmt.Printf("  Sounds:    %v\n", settings.SoundsEnabled)
		fmt.Printf("  Dark Mode: %v\n", settings.DarkMode)
		return nil
	}

	patch := models.SettingsPatch{
		RemindersEnabled: c.Reminders,
		HapticsEnabled:   c.Haptics,
		SoundsEnabled:    c.Sounds,
		DarkMode:         c.DarkMode,
	}
	if c.Reminders == nil && c.Haptics == nil && c.Sounds == nil && c.DarkMode == nil {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	ctx.Planner.UpdateSettings(patch)
	fmt.Println("Settings updated successfully.")
	return nil
}
