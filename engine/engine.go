// Package engine drives the monitoring loop: poll the server list, pick the
// followed server, composite its map art, and publish the result.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"marnewatch/engine/config"
	"marnewatch/engine/db"
	"marnewatch/engine/gamedata"
	"marnewatch/engine/liveness"
	"marnewatch/engine/marne"
	"marnewatch/engine/match"
)

const pollInterval = 60 * time.Second

// fallbackStatus is published when a cycle cannot produce a real status.
const fallbackStatus = `¯\_(ツ)_/¯ server not found`

// Poller fetches the current community server list.
type Poller interface {
	Fetch() (marne.ServerList, error)
}

// Renderer composites the map art with the mode abbreviation and returns
// the file path of the result.
type Renderer interface {
	Render(abbreviation, imageURL string) (string, error)
}

// Publisher pushes status text and an avatar image to the outside world.
type Publisher interface {
	SetStatusText(text string) error
	SetAvatarImage(path string) error
}

type MonitorEngine struct {
	Config    *config.ConfigSettings
	Poller    Poller
	Renderer  Renderer
	Publisher Publisher
	Tables    *gamedata.Tables
	Target    match.Target
	Tracker   *liveness.Tracker
}

// NewEngine wires a monitor from its collaborators. The target comes from
// the config; a configured name wins over a configured id.
func NewEngine(conf *config.ConfigSettings, poller Poller, renderer Renderer, publisher Publisher, tracker *liveness.Tracker) *MonitorEngine {
	var target match.Target
	if conf.MonitorSettings.ServerName != "" {
		target = match.ByName(conf.MonitorSettings.ServerName)
	} else if conf.MonitorSettings.ServerID != 0 {
		target = match.ByID(conf.MonitorSettings.ServerID)
	}

	return &MonitorEngine{
		Config:    conf,
		Poller:    poller,
		Renderer:  renderer,
		Publisher: publisher,
		Tables:    gamedata.Load(),
		Target:    target,
		Tracker:   tracker,
	}
}

// Start runs poll cycles for the life of the process.
func (m *MonitorEngine) Start() {
	slog.Info("Started monitoring server", "target", m.Target.String(), "game", m.Config.MonitorSettings.Game)

	for {
		m.runCycle()
		time.Sleep(pollInterval)
	}
}

// runCycle performs one poll, match, render, publish pass. Failures along
// the way log and shorten the cycle; the liveness tracker records the
// attempt no matter how the cycle went.
func (m *MonitorEngine) runCycle() {
	start := time.Now()
	defer func() {
		m.Tracker.RecordAttempt(liveness.EpochMinute(time.Now()))
	}()

	list, err := m.Poller.Fetch()
	if err != nil {
		slog.Error("cant get new stats", "error", err)
		m.publishFallback()
		m.recordCycle(db.CycleSchema{StartTime: start})
		return
	}

	server, err := match.Select(list, m.Target)
	if err != nil {
		slog.Error("couldn't find server in serverlist", "error", err)
		m.recordCycle(db.CycleSchema{StartTime: start})
		return
	}

	resolved := match.Resolve(server, m.Tables)
	statusText := fmt.Sprintf("%d/%d - %s", server.CurrentPlayers, server.MaxPlayers, resolved.DisplayName)

	imagePath, err := m.Renderer.Render(resolved.ModeAbbreviation, resolved.ImageURL)
	if err != nil {
		slog.Error("failed to render map image", "error", err)
		m.publishFallback()
		m.recordCycle(db.CycleSchema{
			StartTime:      start,
			CurrentPlayers: server.CurrentPlayers,
			MaxPlayers:     server.MaxPlayers,
			MapName:        resolved.DisplayName,
			Mode:           resolved.ModeAbbreviation,
		})
		return
	}

	if err := m.Publisher.SetStatusText(statusText); err != nil {
		slog.Error("failed to update status text", "error", err)
	}
	if err := m.Publisher.SetAvatarImage(imagePath); err != nil {
		slog.Error("failed to update avatar", "error", err)
	}

	m.recordCycle(db.CycleSchema{
		StartTime:      start,
		Success:        true,
		CurrentPlayers: server.CurrentPlayers,
		MaxPlayers:     server.MaxPlayers,
		MapName:        resolved.DisplayName,
		Mode:           resolved.ModeAbbreviation,
	})
}

// publishFallback pushes the "server not found" status. The avatar keeps
// whatever the last successful cycle rendered.
func (m *MonitorEngine) publishFallback() {
	if err := m.Publisher.SetStatusText(fallbackStatus); err != nil {
		slog.Error("failed to update status text", "error", err)
	}
}

func (m *MonitorEngine) recordCycle(cycle db.CycleSchema) {
	if _, err := db.CreateCycle(cycle); err != nil && !errors.Is(err, db.ErrDisabled) {
		slog.Error("failed to record cycle", "error", err.Error())
	}
}
