package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/utils"
)

// CleanText trims surrounding whitespace and truncates to maxLen runes.
func CleanText(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return s
}

// CleanList trims each item, drops empties, and caps both item count and
// item length.
func CleanList(items []string, maxItems, maxLen int) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = CleanText(item, maxLen)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == maxItems {
			break
		}
	}
	return out
}

// ParseEffort parses a user-supplied effort level.
func ParseEffort(s string) (models.EffortLevel, error) {
	e := models.EffortLevel(strings.ToLower(strings.TrimSpace(s)))
	if !models.ValidEffort(e) {
		return "", fmt.Errorf("invalid effort level %q (expected short|medium|deep)", s)
	}
	return e, nil
}

// ParseEnergy parses a user-supplied energy level.
func ParseEnergy(s string) (models.EnergyLevel, error) {
	e := models.EnergyLevel(strings.ToLower(strings.TrimSpace(s)))
	if !models.ValidEnergy(e) {
		return "", fmt.Errorf("invalid energy level %q (expected low|medium|high)", s)
	}
	return e, nil
}

// ParseMood validates a user-supplied mood rating.
func ParseMood(n int) (models.MoodLevel, error) {
	m := models.MoodLevel(n)
	if !models.ValidMood(m) {
		return 0, fmt.Errorf("mood must be between 1 and 5, got %d", n)
	}
	return m, nil
}

// ParseDate validates a user-supplied date key (YYYY-MM-DD).
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !utils.ValidDayKey(s) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return s, nil
}
