package main

import (
	"os"

	"github.com/wonny/swapreport/cmd/swapreport/commands"
)

// main is the entry point for the swapreport CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/swapreport [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
