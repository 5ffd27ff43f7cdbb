package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	getRegex bool
	getGlob  bool
	getJSON  bool
	getYAML  bool
)

var getCmd = &cobra.Command{
	Use:   "get [ip] [hostname]",
	Short: "Look up mappings",
	Long: `Get prints the mappings of ip, optionally narrowed by hostname.
Without an ip it prints the ip of every mapping in file order.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if getJSON && getYAML {
			return fmt.Errorf("--json and --yaml are mutually exclusive")
		}

		service, err := openService()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		out := cmd.OutOrStdout()

		if len(args) == 0 {
			ips, err := service.IPs(cmd.Context())
			if err != nil {
				return err
			}
			return render(out, getJSON, getYAML, ips, func() {
				for _, ip := range ips {
					fmt.Fprintln(out, ip)
				}
			})
		}

		filter, err := hostnameFilter(args[1:], getRegex, getGlob)
		if err != nil {
			return err
		}

		mappings, err := service.Get(cmd.Context(), args[0], filter)
		if err != nil {
			return err
		}
		return render(out, getJSON, getYAML, mappings, func() {
			for _, m := range mappings {
				fmt.Fprintln(out, m)
			}
		})
	},
}

// render writes v as JSON or YAML when requested, else calls plain.
func render(w io.Writer, asJSON, asYAML bool, v any, plain func()) error {
	switch {
	case asJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case asYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		plain()
		return nil
	}
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getRegex, "regex", false, "Treat hostname as a regular expression")
	getCmd.Flags().BoolVar(&getGlob, "glob", false, "Treat hostname as a glob pattern")
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	getCmd.Flags().BoolVar(&getYAML, "yaml", false, "Output in YAML format")
}
