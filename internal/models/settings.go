package models

// AppSettings represents application-wide settings. All fields are
// independent booleans with fixed defaults; there is no validation.
type AppSettings struct {
	RemindersEnabled bool `json:"remindersEnabled"`
	HapticsEnabled   bool `json:"hapticsEnabled"`
	SoundsEnabled    bool `json:"soundsEnabled"`
	DarkMode         bool `json:"darkMode"`
}

// DefaultSettings returns the settings record used before any user change.
func DefaultSettings() AppSettings {
	return AppSettings{
		RemindersEnabled: true,
		HapticsEnabled:   true,
		SoundsEnabled:    true,
		DarkMode:         false,
	}
}

// SettingsPatch names the settings an update may change. Nil fields are
// left untouched.
type SettingsPatch struct {
	RemindersEnabled *bool
	HapticsEnabled   *bool
	SoundsEnabled    *bool
	DarkMode         *bool
}

// Apply merges the patch onto a settings record and returns the result.
func (p SettingsPatch) Apply(s AppSettings) AppSettings {
	if p.RemindersEnabled != nil {
		s.RemindersEnabled = *p.RemindersEnabled
	}
	if p.HapticsEnabled != nil {
		s.HapticsEnabled = *p.HapticsEnabled
	}
	if p.SoundsEnabled != nil {
		s.SoundsEnabled = *p.SoundsEnabled
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	return s
}
