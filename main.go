package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reputes/worktracker/pkg/auth"
	"github.com/reputes/worktracker/pkg/config"
	"github.com/reputes/worktracker/pkg/server"
	"github.com/reputes/worktracker/pkg/sheets"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := setupLogger(*debug)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	ctx := context.Background()
	store := buildStore(ctx, log, cfg)

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.New(log, store, cfg)

	log.WithFields(logrus.Fields{
		"port":                   cfg.Port,
		"spreadsheet_configured": cfg.SpreadsheetConfigured(),
		"sheet1":                 cfg.Sheet1Name,
		"sheet2":                 cfg.Sheet2Name,
	}).Info("work tracker API starting")

	if err := srv.Router().Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// buildStore wires the spreadsheet store. When credentials are missing or
// malformed the server still starts, serving health and the root page while
// every spreadsheet request reports the startup error.
func buildStore(ctx context.Context, log *logrus.Logger, cfg *config.Config) server.Store {
	httpClient, err := auth.NewClient(ctx, cfg.CredentialsJSON, cfg.CredentialsFile)
	if err != nil {
		log.WithError(err).Warn("Google credentials unavailable, spreadsheet requests will fail")
		return server.UnavailableStore{Err: err}
	}

	client, err := sheets.NewClient(ctx, httpClient, cfg.SpreadsheetID)
	if err != nil {
		log.WithError(err).Warn("Sheets client unavailable, spreadsheet requests will fail")
		return server.UnavailableStore{Err: err}
	}

	return sheets.NewStore(client, cfg.Sheet1Name, cfg.Sheet2Name)
}

func setupLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
