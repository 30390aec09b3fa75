package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/stillday/internal/backup"
	"github.com/julianstephens/stillday/internal/logger"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/planner"
	"github.com/julianstephens/stillday/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Planner *planner.Planner
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	// Connection strings are not file-backed, nothing to copy
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		return
	}
	mgr := backup.NewManager(path)
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var moodLabels = map[models.MoodLevel]string{
	1: "struggling",
	2: "low",
	3: "okay",
	4: "good",
	5: "great",
}

// FormatMood renders a mood level as "3/5 (okay)", or a dash when unset.
func FormatMood(m *models.MoodLevel) string {
	if m == nil {
		return "-"
	}
	if label, ok := moodLabels[*m]; ok {
		return fmt.Sprintf("%d/5 (%s)", int(*m), label)
	}
	return fmt.Sprintf("%d/5", int(*m))
}

// FormatEnergy renders an energy level, or a dash when unset.
func FormatEnergy(e *models.EnergyLevel) string {
	if e == nil {
		return "-"
	}
	return string(*e)
}

// FormatTaskLine renders a single task for list output:
//
//  1. [x] Finish the report (deep) ~ one mindful breath first
func FormatTaskLine(idx int, task models.Task) string {
	check := " "
	if task.Completed {
		check = "x"
	}
	line := fmt.Sprintf("%d. [%s] %s (%s)", idx+1, check, task.Title, task.Effort)
	if task.MindfulnessNote != "" {
		line += " ~ " + task.MindfulnessNote
	}
	return line
}

// PrintEntry renders a full day entry to stdout. Shared by the today and
// history commands.
func PrintEntry(entry models.DayEntry) {
	fmt.Printf("Date:      %s\n", entry.Date)
	if entry.Intention != "" {
		fmt.Printf("Intention: %s\n", entry.Intention)
	} else {
		fmt.Println("Intention: -")
	}
	fmt.Printf("Mood:      %s\n", FormatMood(entry.Mood))
	fmt.Printf("Energy:    %s\n", FormatEnergy(entry.Energy))

	fmt.Println("\nTasks:")
	if len(entry.Tasks) == 0 {
		fmt.Println("  (none yet)")
	}
	for i, task := range entry.Tasks {
		fmt.Printf("  %s\n", FormatTaskLine(i, task))
	}

	if entry.Reflection != nil {
		fmt.Println("\nReflection:")
		for _, item := range entry.Reflection.WentWell {
			fmt.Printf("  went well: %s\n", item)
		}
		if entry.Reflection.FeltHeavy != "" {
			fmt.Printf("  felt heavy: %s\n", entry.Reflection.FeltHeavy)
		}
		if entry.Reflection.Gratitude != "" {
			fmt.Printf("  grateful for: %s\n", entry.Reflection.Gratitude)
		}
		if entry.Reflection.LetGo {
			fmt.Println("  let go: yes")
		}
	}
}
