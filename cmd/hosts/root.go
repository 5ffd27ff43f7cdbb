package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hosts"
	"github.com/aretw0/hosts/pkg/adapters/fs"
)

const defaultBackupLimit = 10

var (
	verbose    bool
	hostsFile  string
	configFile string
	readOnly   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Edit the system hosts file without losing its comments",
	Long: `hosts adds, removes and looks up ip/hostname mappings in the static
hostname file. Comments and blank lines survive every rewrite, and each save
is preceded by a backup copy.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&hostsFile, "file", "f", "", "Hosts file to edit (default: the system hosts file)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/hosts/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Refuse to write the hosts file")
}

// resolveOptions merges defaults, the config file and command line flags,
// in that order of precedence.
func resolveOptions() (string, []hosts.Option, error) {
	cfg, err := hosts.LoadConfig(configFile)
	if err != nil {
		return "", nil, err
	}

	opts := []hosts.Option{
		hosts.WithLogger(slog.Default()),
		hosts.WithBackupDir(hosts.DefaultBackupDir()),
		hosts.WithBackupLimit(defaultBackupLimit),
	}
	opts = append(opts, cfg.Options()...)
	if readOnly {
		opts = append(opts, hosts.WithReadOnly(true))
	}

	path := hostsFile
	if path == "" {
		path = cfg.Path
	}
	return path, opts, nil
}

func openService() (*hosts.Service, error) {
	path, opts, err := resolveOptions()
	if err != nil {
		return nil, err
	}
	return hosts.New(path, opts...)
}

func openRepository() (*fs.Repository, error) {
	path, opts, err := resolveOptions()
	if err != nil {
		return nil, err
	}
	repo, err := hosts.Init(path, opts...)
	if err != nil {
		return nil, err
	}
	fsRepo, ok := repo.(*fs.Repository)
	if !ok {
		return nil, fmt.Errorf("backups need a file repository, got %T", repo)
	}
	return fsRepo, nil
}
