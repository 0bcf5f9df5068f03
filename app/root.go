// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bos",
	Short: "bos is the business-operations backend of the wodanio group",
	Long: `bos is the business-operations backend of the wodanio group.
It manages the persisted option records, business-ID counters and
quote totals that back the CRM.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
