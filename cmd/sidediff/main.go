package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/aleister1102/sidediff/internal/config"
	"github.com/aleister1102/sidediff/internal/logger"
	"github.com/rs/zerolog"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "extract" {
		extractMain(os.Args[2:])
		return
	}

	flags, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		exitOnFlagError(err)
	}

	gCfg := loadConfig(flags.GlobalConfigFile)
	zLogger := newLogger(gCfg)

	if err := applyFlagOverrides(gCfg, flags); err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid command line arguments")
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}
	zLogger.Debug().Msg("Configuration validated successfully.")

	if err := runDiff(context.Background(), gCfg, flags, zLogger, os.Stdout); err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to generate diff")
	}
}

func extractMain(args []string) {
	flags, err := ParseExtractFlags(args, os.Stderr)
	if err != nil {
		exitOnFlagError(err)
	}

	gCfg := loadConfig(flags.GlobalConfigFile)
	zLogger := newLogger(gCfg)

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	if err := runExtract(gCfg, flags, zLogger, os.Stdout); err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to extract changes")
	}
}

// loadConfig loads the global configuration before a logger exists
func loadConfig(path string) *config.GlobalConfig {
	gCfg, err := config.LoadGlobalConfig(path, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", path, err)
	}
	return gCfg
}

func newLogger(gCfg *config.GlobalConfig) zerolog.Logger {
	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}
	return zLogger
}

func exitOnFlagError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	os.Exit(2)
}
