package models

import (
	"fmt"
	"strconv"

	"github.com/habitflow/habitflow/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	Timezone              string `json:"timezone"`                // IANA timezone name, or "Local" for the system timezone
	DefaultFreezes        int    `json:"default_freezes"`         // freeze budget assigned to new habits
	FreezesProtectStreaks bool   `json:"freezes_protect_streaks"` // whether an available freeze suppresses a streak break
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingDefaultFreezes:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing default_freezes: %w", err)
			}
			settings.DefaultFreezes = n
		case constants.SettingFreezesProtect:
			settings.FreezesProtectStreaks = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:       settings.Timezone,
		constants.SettingDefaultFreezes: strconv.Itoa(settings.DefaultFreezes),
		constants.SettingFreezesProtect: strconv.FormatBool(settings.FreezesProtectStreaks),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.DefaultFreezes == 0 {
		settings.DefaultFreezes = constants.DefaultFreezes
	}
}
