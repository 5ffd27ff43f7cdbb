package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	lc "github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/hosts/pkg/adapters/lifecycle"
	"github.com/aretw0/hosts/pkg/core"
)

var watchTypes []string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes made to the hosts file by other programs",
	Long: `Watch prints one line per external change until interrupted.
Writes made by this tool are not reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := parseEventTypes(watchTypes)
		if err != nil {
			return err
		}

		service, err := openService()
		if err != nil {
			return fmt.Errorf("opening hosts file: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx)
		if err != nil {
			return err
		}

		source := lifecycle.NewSource(events, types...)
		if err := source.Start(ctx); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", service.Path())
		return printEvents(ctx, cmd.OutOrStdout(), source.Events())
	},
}

func printEvents(ctx context.Context, out io.Writer, events <-chan lc.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", time.Now().Format(time.TimeOnly), e.String())
		}
	}
}

func parseEventTypes(names []string) ([]core.EventType, error) {
	types := make([]core.EventType, 0, len(names))
	for _, name := range names {
		t := core.EventType(strings.ToUpper(name))
		switch t {
		case core.EventCreate, core.EventModify, core.EventDelete:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("unknown event type %q (want create, modify or delete)", name)
		}
	}
	return types, nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringSliceVar(&watchTypes, "type", nil, "Only report these event types (create, modify, delete)")
}
