package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

var (
	supportedGames = []string{"bf1", "bfv"} // golang doesn't have constant arrays :/
)

type ConfigSettings struct {
	// General settings
	RequiredSettings RequiredConfig `toml:"RequiredSettings,omitempty" json:"RequiredSettings,omitempty"`

	// Which server to follow
	MonitorSettings MonitorConfig `toml:"MonitorSettings,omitempty" json:"MonitorSettings,omitempty"`

	// Optional settings
	ProbeSettings ProbeConfig `toml:"ProbeSettings,omitempty" json:"ProbeSettings,omitempty"`

	RenderSettings RenderConfig `toml:"RenderSettings,omitempty" json:"RenderSettings,omitempty"`

	HistorySettings HistoryConfig `toml:"HistorySettings,omitempty" json:"HistorySettings,omitempty"`
}

type RequiredConfig struct {
	DiscordToken string
}

type MonitorConfig struct {
	ServerName string
	ServerID   int64
	Game       string
}

type ProbeConfig struct {
	BindAddress string
	Port        int
}

type RenderConfig struct {
	OutputDir string
}

type HistoryConfig struct {
	DBConnectURL string
}

// Load in a config
func (conf *ConfigSettings) SetConfig(path string) error {
	tempConf := ConfigSettings{}
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("configuration file (%s) not found: %w", path, err)
	}

	if md, err := toml.Decode(string(fileContent), &tempConf); err != nil {
		return err
	} else {
		for _, undecoded := range md.Undecoded() {
			slog.Warn("undecoded configuration key \"" + undecoded.String() + "\" will not be used.")
		}
	}

	// check the configuration and set defaults
	if err := checkConfig(&tempConf); err != nil {
		log.Fatalln("configuration file ("+path+") is invalid:", err)
	}

	// if we're here, the config is valid
	*conf = tempConf

	return nil
}

// general error checking
func checkConfig(conf *ConfigSettings) error {
	var errResult error

	// required settings

	if conf.RequiredSettings.DiscordToken == "" {
		errResult = errors.Join(errResult, errors.New("discord token blank or not specified"))
	}

	// optional settings

	if conf.MonitorSettings.Game == "" {
		conf.MonitorSettings.Game = "bf1"
	}

	if !slices.Contains(supportedGames, conf.MonitorSettings.Game) {
		errResult = errors.Join(errResult, errors.New("not a supported game"))
	}

	// a missing target is not an error; every cycle just reports the server
	// as not found while the probe keeps counting attempts
	if conf.MonitorSettings.ServerName == "" && conf.MonitorSettings.ServerID == 0 {
		slog.Warn("no server name or id set, nothing will ever match")
	}

	if conf.ProbeSettings.BindAddress == "" {
		conf.ProbeSettings.BindAddress = "0.0.0.0"
	}

	if conf.ProbeSettings.Port == 0 {
		conf.ProbeSettings.Port = 3030
	}

	if conf.RenderSettings.OutputDir == "" {
		conf.RenderSettings.OutputDir = "."
	}

	if conf.HistorySettings.DBConnectURL == "" {
		conf.HistorySettings.DBConnectURL = "sqlite:marnewatch.db"
	}

	// errResult is nil by default if no errors occured
	return errResult
}
