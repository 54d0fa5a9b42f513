// Package main is the entry point for the tavernkeep bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tavernkeep",
	Short: "Tavernkeep chat bot",
	Long:  `Tavernkeep manages tabletop RPG characters through a chat conversation: roster, bag, spells, abilities, dice and the rest of the sheet.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
