// Command issue-token prints a bearer token for an organizer, signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"eventbooking/config"
	"eventbooking/internal/adapters/auth"
)

func main() {
	subject := flag.String("sub", "", "organizer ID to put in the token subject")
	name := flag.String("name", "", "organizer display name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: issue-token -sub <organizer-id> [-name <name>] [-ttl 24h]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	token, err := auth.NewJWT(cfg.JWTSecret).Issue(*subject, *name, *ttl)
	if err != nil {
		slog.Error("failed to issue token", "err", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
