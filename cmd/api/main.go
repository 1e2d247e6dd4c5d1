package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/workreport/core/cmd/api/commands"
)

// @title WorkReport API
// @version 1.0
// @description Personal task tracking and daily/weekly work report generation

// @contact.name WorkReport Support
// @contact.url https://github.com/workreport/core

// @license.name MIT
// @license.url https://github.com/workreport/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

func main() {
	rootCmd := &cobra.Command{
		Use:   "workreport",
		Short: "WorkReport API Server",
		Long:  `WorkReport is a personal task tracker that turns hierarchical tasks into daily and weekly PDF work reports.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
