// Command seed initializes a fresh database from a JSON bundle, or
// restores a raw dump taken with the export endpoint.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"tableside/backend/internal/config"
	"tableside/backend/internal/firebase"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	bundlePath := flag.String("bundle", "", "path to a seed bundle JSON file")
	dumpPath := flag.String("restore", "", "path to a raw dump JSON file (from /v1/admin/export)")
	force := flag.Bool("force", false, "seed even if the database is not empty")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if (*bundlePath == "") == (*dumpPath == "") {
		log.Fatal().Msg("exactly one of -bundle or -restore is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx := context.Background()
	clients := firebase.NewClients(ctx, cfg, log)
	defer clients.Close()
	if !clients.Enabled() {
		log.Fatal().Msg("backend is not configured, nothing to seed")
	}

	st := store.New(clients, log)

	if *dumpPath != "" {
		raw, err := os.ReadFile(*dumpPath)
		if err != nil {
			log.Fatal().Err(err).Msg("read dump file")
		}
		var dump map[string][]map[string]any
		if err := json.Unmarshal(raw, &dump); err != nil {
			log.Fatal().Err(err).Msg("parse dump file")
		}
		if err := st.ImportCollections(ctx, dump); err != nil {
			log.Fatal().Err(err).Msg("restore failed")
		}
		log.Info().Str("file", *dumpPath).Msg("restore complete")
		return
	}

	raw, err := os.ReadFile(*bundlePath)
	if err != nil {
		log.Fatal().Err(err).Msg("read bundle file")
	}
	var bundle models.SeedBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		log.Fatal().Err(err).Msg("parse bundle file")
	}

	if !*force {
		empty, err := st.IsDatabaseEmpty(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("emptiness check failed")
		}
		if !empty {
			log.Fatal().Msg("database already initialized, use -force to overwrite")
		}
	}

	if err := st.InitializeDatabase(ctx, bundle); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Str("file", *bundlePath).Msg("seed complete")
}
