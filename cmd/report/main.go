package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/itsutakahope/churching-sub001/internal/cli"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/config"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	flags := cli.ParseReportFlags()
	cfg := config.LoadOrEnv()

	if err := cli.RunReport(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
