package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	backupJSON bool
	backupYAML bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage copies of the hosts file",
	Long: `Every save first copies the hosts file into the backup directory
($XDG_STATE_HOME/hosts/backups unless configured otherwise).`,
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the current hosts file into the backup directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		path, err := repo.Backup()
		if err != nil {
			return fmt.Errorf("creating backup: %w", err)
		}
		if path == "" {
			return fmt.Errorf("nothing to back up: %s does not exist", repo.Path())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup created: %s\n", path)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if backupJSON && backupYAML {
			return fmt.Errorf("--json and --yaml are mutually exclusive")
		}

		repo, err := openRepository()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		backups, err := repo.ListBackups()
		if err != nil {
			return fmt.Errorf("listing backups: %w", err)
		}

		out := cmd.OutOrStdout()
		return render(out, backupJSON, backupYAML, backups, func() {
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, b := range backups {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", b.Name, b.Size, b.Modified.Format("2006-01-02 15:04:05"))
			}
			tw.Flush()
		})
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Overwrite the hosts file with a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		if err := repo.Restore(args[0]); err != nil {
			return fmt.Errorf("restoring backup: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", repo.Path(), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)
	backupListCmd.Flags().BoolVar(&backupJSON, "json", false, "Output in JSON format")
	backupListCmd.Flags().BoolVar(&backupYAML, "yaml", false, "Output in YAML format")
}
