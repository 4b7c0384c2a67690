package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/stickbrawl/shared/logger"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings remembers the last server and player name between runs.
type SavedSettings struct {
	Addr       string `json:"addr"`
	PlayerName string `json:"playerName"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "stickbrawl",
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or nil when nothing is stored or
// persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

var errNoPersistence = errors.New("persistence not initialized")

// SaveSettings writes settings to disk.
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return errNoPersistence
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	logger.For("persistence").WithField("addr", s.Addr).Debug("settings saved")
	return nil
}

// MergeSettings picks the address and name to use: explicit flags win over
// saved values, saved values over defaults.
func MergeSettings(flagAddr, flagName string, saved *SavedSettings, defaultAddr, defaultName string) SavedSettings {
	out := SavedSettings{Addr: defaultAddr, PlayerName: defaultName}
	if saved != nil {
		if saved.Addr != "" {
			out.Addr = saved.Addr
		}
		if saved.PlayerName != "" {
			out.PlayerName = saved.PlayerName
		}
	}
	if flagAddr != "" {
		out.Addr = flagAddr
	}
	if flagName != "" {
		out.PlayerName = flagName
	}
	return out
}
