package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindflow/internal/achievements"
	"github.com/abhisek/mindflow/internal/config"
	"github.com/abhisek/mindflow/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <username>",
	Short: "Show a user's progress from the command line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
			cfg.DB.DSN = dsn
		}

		st, err := store.Open(cfg.DB)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		user, err := st.UserByUsername(ctx, args[0])
		if err != nil {
			return err
		}
		stats, err := st.StatsByUser(ctx, user.ID)
		if err != nil {
			return err
		}

		fmt.Printf("%s  (level %d, %d XP)\n", user.Username, stats.Level, stats.XP)
		fmt.Printf("  tasks completed: %d\n", stats.TasksCompleted)
		fmt.Printf("  plans created:   %d\n", stats.PlansCreated)
		fmt.Printf("  study time:      %d min\n", stats.TotalStudyTime)
		fmt.Printf("  streak:          %d (best %d)\n", stats.CurrentStreak, stats.LongestStreak)

		unlocked := achievements.Unlocked(stats.State())
		if len(unlocked) > 0 {
			fmt.Println("  achievements:")
			for _, a := range unlocked {
				fmt.Printf("    %s (%s)\n", a.Title, a.Rarity)
			}
		}
		return nil
	},
}
