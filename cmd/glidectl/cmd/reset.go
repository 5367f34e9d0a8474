package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Mirrors the key layout used by the editor's one-time prompts.
func firstRunKey(control string) string {
	return fmt.Sprintf("glide.fastplay.%s.checked", control)
}

var resetCmd = &cobra.Command{
	Use:   "reset-prompts",
	Short: "Re-arm the editor's one-time prompts",
	Long: `Clears the persisted first-run markers so the editor offers its
one-time prompts again on next launch. Mainly useful when testing
toolbar layouts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		cleared := 0
		for _, key := range store.Keys() {
			if key == firstRunKey("fastplay") {
				store.Delete(key)
				cleared++
			}
		}
		if cleared == 0 {
			logger.Info("no prompt markers found")
			return nil
		}
		logger.Info("prompt markers cleared", "count", cleared)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
