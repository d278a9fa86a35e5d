package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}
