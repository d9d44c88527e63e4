package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/programme-lv/scoreboard/conf"
	"github.com/programme-lv/scoreboard/feed"
	"github.com/programme-lv/scoreboard/http"
	"github.com/programme-lv/scoreboard/s3feed"
)

func main() {
	// A missing .env is fine in deployed environments where the
	// variables are set directly.
	_ = godotenv.Load()

	cfg, err := conf.ReadServerConfigFromEnv()
	if err != nil {
		slog.Error("invalid server configuration", "error", err)
		os.Exit(1)
	}

	var source http.FeedSource
	if cfg.FeedDir != "" {
		source = feed.DirSource{Dir: cfg.FeedDir}
	} else {
		source, err = s3feed.NewSource(cfg.S3Region, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			slog.Error("failed to init s3 feed source", "error", err)
			os.Exit(1)
		}
	}

	server := http.NewHttpServer(source, []byte(cfg.JwtKey),
		cfg.AdminUsername, cfg.AdminBcryptHash)

	if _, err := server.Reload(context.Background()); err != nil {
		slog.Error("failed to load initial contest feed", "error", err)
		os.Exit(1)
	}

	log.Printf("Starting server on %s", cfg.ListenAddr)
	err = server.Start(cfg.ListenAddr)
	log.Printf("Server stopped with error: %v", err)
}
