package app

import (
	"github.com/spf13/cobra"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(employeeCmd)
}

// employeeCmd groups the employee-facing console commands.
var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employee shift-function assignments",
}
