package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/glide-engine/glide/internal/prefs"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func openStore() *prefs.Store {
	path := storePath
	if path == "" {
		path = prefs.DefaultPath
	}
	logger.Debug("opening preference store", "path", path)
	return prefs.Open(path)
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Read and write preference store entries",
}

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored preference keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		keys := store.Keys()
		if len(keys) == 0 {
			fmt.Println(dimStyle.Render("no preferences stored"))
			return nil
		}
		for _, key := range keys {
			value, _ := store.Get(key)
			fmt.Printf("%s %s\n", keyStyle.Render(key), valueStyle.Render(fmt.Sprintf("%v", value)))
		}
		return nil
	},
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a preference value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		value, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("key %q not set", args[0])
		}
		fmt.Printf("%v\n", value)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <true|false>",
	Short: "Set a boolean preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("value must be true or false: %w", err)
		}
		store := openStore()
		store.SetBool(args[0], value)
		logger.Info("preference set", "key", args[0], "value", value)
		return nil
	},
}

var prefsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a preference key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		store.Delete(args[0])
		logger.Info("preference deleted", "key", args[0])
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsListCmd, prefsGetCmd, prefsSetCmd, prefsDeleteCmd)
	rootCmd.AddCommand(prefsCmd)
}
