package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agent-demo/envcheck/pkg/checks"
	"github.com/agent-demo/envcheck/pkg/config"
	"github.com/agent-demo/envcheck/pkg/runner"
	"github.com/rs/zerolog"
)

func runChecks(configFile, output, timeout string) error {
	// Load profile from file or use defaults
	var profile *config.Profile
	var err error

	if configFile != "" {
		profile, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		if !quietMode {
			fmt.Printf("Using check profile from: %s\n", configFile)
		}
	} else {
		profile = config.DefaultProfile()
	}

	// Command-line flag overrides config file
	if timeout != "" {
		profile.Timeout = timeout
		if err := profile.Validate(); err != nil {
			return err
		}
	}

	level := zerolog.WarnLevel
	if verbosity > 0 {
		level = zerolog.DebugLevel
	}
	if quietMode {
		level = zerolog.Disabled
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)

	run := runner.New(profile.ProbeTimeout(), log)
	results := checks.Run(context.Background(), profile, run)

	switch output {
	case "text":
		checks.PrintText(results)
	case "table":
		checks.WriteTable(os.Stdout, results)
	case "json":
		if err := checks.WriteJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q, expected one of [text, table, json]", output)
	}

	if !checks.AllPassed(results) {
		return fmt.Errorf("some checks failed")
	}

	return nil
}
