package main

import (
	"os"

	"github.com/arthur-debert/dview/cmd/dview"
	"github.com/arthur-debert/dview/pkg/config"
	"github.com/arthur-debert/dview/pkg/core"
)

func main() {
	// Initialize core system (loads config, builds loaders, publishes entries)
	cwd, _ := os.Getwd()
	app := core.MustInitialize(config.Options{ProjectDir: cwd})

	rootCmd := dview.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		dview.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
