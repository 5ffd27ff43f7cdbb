package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/hosts"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hosts",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hosts version %s\n", strings.TrimSpace(hosts.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
