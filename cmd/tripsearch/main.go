package main

import (
	"fmt"
	"os"
	"travel/cmd/tripsearch/commands"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "tripsearch",
		Short: "Find the cheapest round trip inside a set of available dates",
		Long:  "Runs the trip search locally against the heuristic price source or a remote pricing service and prints the JSON response.",
	}

	root.PersistentFlags().String("env", "development", "Log environment: development or production")

	root.AddCommand(commands.SearchCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tripsearch version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tripsearch v0.1.0")
		},
	}
}
