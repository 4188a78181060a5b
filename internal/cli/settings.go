package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// newSettingsCmd creates the "settings" command group for the open
// key/value settings map.
func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage user settings",
	}

	cmd.AddCommand(newSettingsSetCmd(), newSettingsShowCmd())

	return cmd
}

// newSettingsSetCmd creates "settings set": shallow-merges key=value pairs
// into the persisted settings.
func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set key=value [key=value ...]",
		Short:   "Set one or more settings values",
		Example: `  carbontrack settings set units=metric default_country=India`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partial := make(map[string]any, len(args))
			for _, arg := range args {
				key, value, found := strings.Cut(arg, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid setting %q, expected key=value", arg)
				}
				partial[key] = value
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			if !st.UpdateSettings(partial) {
				return fmt.Errorf("could not update settings at %s", st.FilePath())
			}

			cmd.Printf("Updated %d setting(s).\n", len(partial))
			return nil
		},
	}
}

// newSettingsShowCmd creates "settings show": prints the settings map.
func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}

			settings := st.Settings()
			if len(settings) == 0 {
				cmd.Println("No settings stored.")
				return nil
			}

			keys := make([]string, 0, len(settings))
			for k := range settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(out, "%s = %v\n", k, settings[k])
			}
			return nil
		},
	}
}
