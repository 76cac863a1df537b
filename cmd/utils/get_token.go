package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flight-tracker-service/internal/infrastructure/config"
	"flight-tracker-service/internal/infrastructure/oauth"
	"flight-tracker-service/pkg/logger"
)

// Prints an access token for the flight lookup API using the
// FLIGHT_LOOKUP_CLIENT_ID / _CLIENT_SECRET / _TOKEN_URL settings.
func main() {
	log := logger.NewLogger("info")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	if !oauth.Enabled(cfg.LookupClientID, cfg.LookupClientSecret, cfg.LookupTokenURL) {
		fmt.Fprintln(os.Stderr, "FLIGHT_LOOKUP_CLIENT_ID, FLIGHT_LOOKUP_CLIENT_SECRET and FLIGHT_LOOKUP_TOKEN_URL must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lookupOAuth := oauth.NewLookupOAuth(cfg.LookupClientID, cfg.LookupClientSecret, cfg.LookupTokenURL, log)
	token, err := lookupOAuth.FetchToken(ctx)
	if err != nil {
		log.Fatal("Failed to fetch token", "error", err)
	}

	tokenJSON, err := lookupOAuth.TokenToJSON(token)
	if err != nil {
		log.Fatal("Failed to encode token", "error", err)
	}

	fmt.Printf("\nAccess Token:\n%s\n\n", tokenJSON)
}
