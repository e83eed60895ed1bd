package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindflow",
	Short: "AI study companion backend",
	Long:  "MindFlow builds personalized study plans, adapts them to how you feel, and tracks your progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite path or Postgres DSN (overrides MINDFLOW_DB_DSN)")
	rootCmd.PersistentFlags().String("addr", "", "HTTP listen address (overrides MINDFLOW_ADDR)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
