// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staffdesk",
	Short: "StaffDesk is a web-based staff management tool for hotels",
	Long: `StaffDesk is a web-based staff management tool for hotels
that provides an easy-to-use interface for managing employees, roles,
and per-shift function assignments.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
