package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/thimo234/ha-energy-chard/internal/data/snapshot"
	"github.com/thimo234/ha-energy-chard/internal/util"
)

var (
	refresh string

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-render the chart on every snapshot push",
		Long: `watch follows the snapshot file and re-renders the chart whenever the
host pushes a new state. Each push is an independent derivation from the
latest snapshot and the wall clock.`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().StringVar(&refresh, "refresh", "",
		"Polling fallback interval for filesystems without change notification (e.g., 30s, 5m, 1h30m)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	watcher, err := snapshot.NewWatcher(expandPath(snapshotPath), pollInterval())
	if err != nil {
		return fmt.Errorf("watch snapshot: %w", err)
	}
	defer watcher.Close()

	card := newCard()
	redraw := func() {
		card.Update(loadSnapshot())
		out, err := renderChart(card.Derive(currentTime()), "term")
		if err != nil {
			util.LogErrorf("Render failed: %v", err)
			return
		}
		fmt.Print("\x1b[2J\x1b[H" + out)
	}
	redraw()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event := <-watcher.Events():
			util.LogDebugf("Snapshot push: %s %s", event.Operation, event.Path)
			redraw()
		case <-interrupt:
			fmt.Println()
			return nil
		}
	}
}

func pollInterval() time.Duration {
	if refresh == "" {
		return 0
	}
	parsed, err := str2duration.ParseDuration(refresh)
	if err != nil {
		util.LogWarnf("Ignoring invalid --refresh value %q: %v", refresh, err)
		return 0
	}
	return parsed
}
