package main

import (
	"fmt"
	"os"

	"ttb/internal/cli"
	"ttb/internal/config"
)

func main() {
	// Load configuration: defaults, then environment overrides
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create store factory based on environment
	env := GetEnvironment()
	factory := NewStoreFactory(env, cfg)

	// Create store with dependency injection
	store, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	root := cli.NewRootCommand(store, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
