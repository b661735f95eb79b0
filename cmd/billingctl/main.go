package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"fieldbill.app/internal/config"
	"fieldbill.app/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	a := &app{cfg: cfg, out: os.Stdout}
	defer a.close()

	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		l := logger.WithComponent("cmd")
		l.Error().Err(err).Msg("Command execution failed")
		a.close()
		os.Exit(1)
	}
}
