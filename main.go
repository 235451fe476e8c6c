package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aviadshiber/threads/client"
	"github.com/aviadshiber/threads/cmd"
	"github.com/joho/godotenv"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitInvalidKey = 3
	ExitBadRequest = 4
	ExitServer     = 5
	ExitTransport  = 6
	ExitInterrupt  = 130
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(ctx); err != nil {
		cancel()
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	switch client.KindOf(err) {
	case client.KindPlug:
		return ExitUsage
	case client.KindInvalidKey:
		return ExitInvalidKey
	case client.KindBadRequest:
		return ExitBadRequest
	case client.KindServer:
		return ExitServer
	case client.KindTransport:
		return ExitTransport
	}
	return ExitGeneral
}
