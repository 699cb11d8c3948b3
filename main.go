package main

import (
	"flag"

	"github.com/jaiswaranil8387/itsm-ticket-management/config"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"
	"github.com/jaiswaranil8387/itsm-ticket-management/initialize"
	"github.com/jaiswaranil8387/itsm-ticket-management/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (optional; env vars and defaults apply without it)")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}

	config.Watch(func(cfg *config.Config) {
		initialize.ApplyLogLevel(cfg.LogLevel)
		global.Logger.Info().Str("log_level", cfg.LogLevel).Msg("config reloaded")
	})

	global.Logger.Info().
		Str("host", app.Cfg.HTTP.Host).
		Int("port", app.Cfg.HTTP.Port).
		Msg("ticket management listening")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server")
	}
}
