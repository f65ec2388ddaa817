package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"marnewatch/engine"
	"marnewatch/engine/config"
	"marnewatch/engine/db"
	"marnewatch/engine/liveness"
	"marnewatch/engine/marne"
	"marnewatch/engine/render"
	"marnewatch/presence"
	"marnewatch/www"
)

var logLvels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var opts struct {
	logger struct {
		level string
	}
	configPath string
}

func main() {
	// parse command line options
	flag.StringVar(&opts.logger.level, "log-level", "debug", "Set the log level")
	flag.StringVar(&opts.configPath, "config", "./config/marnewatch.conf", "Path to the config file")
	flag.Parse()

	logLevel, ok := logLvels[opts.logger.level]
	if !ok {
		log.Fatalf("Invalid log level: %s", opts.logger.level)
	}
	var handler slog.Handler
	handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Load and validate the config
	conf := config.ConfigSettings{}
	if err := conf.SetConfig(opts.configPath); err != nil {
		log.Fatalln("Failed to load config:", err)
	}

	// The history store is optional. Without it the monitor still runs,
	// only the graph endpoint goes dark.
	if err := db.Connect(conf.HistorySettings.DBConnectURL); err != nil {
		slog.Error("history store unavailable, continuing without graphs", "error", err)
	}

	publisher, err := presence.NewDiscord(conf.RequiredSettings.DiscordToken)
	if err != nil {
		log.Fatalln("Failed to connect to Discord:", err)
	}
	defer publisher.Close()

	tracker := liveness.NewTracker()
	poller := marne.NewClient(conf.MonitorSettings.Game)
	renderer := render.NewRenderer(conf.RenderSettings.OutputDir)

	// start the monitor loop
	eng := engine.NewEngine(&conf, poller, renderer, publisher, tracker)
	go eng.Start()

	// start the probe server
	router := www.Router{Config: &conf, Tracker: tracker}
	router.Start()
}
