package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
	"github.com/thimo234/ha-energy-chard/internal/data/snapshot"
	"github.com/thimo234/ha-energy-chard/internal/presentation/render"
	"github.com/thimo234/ha-energy-chard/internal/util"
	"github.com/thimo234/ha-energy-chard/internal/widget"
)

const (
	appName = "ha-energy-chard"
	Version = "0.4.1"

	defaultSnapshot = "~/.ha-energy-chard/states.json"
	defaultLogFile  = "~/.ha-energy-chard/logs/app.log"
)

var (
	// Input data
	snapshotPath string
	entity       string
	title        string

	// Output
	outputFormat string
	timezone     string
	nowOverride  string

	// System and debugging
	debug bool

	registry = widget.NewRegistry()

	rootCmd = &cobra.Command{
		Use:     appName + " [flags]",
		Short:   "Energy price chart for Home Assistant state snapshots",
		Version: Version,
		Long: appName + ` renders a small energy-price bar chart from a Home Assistant
state snapshot: the current hour plus the next twelve, with Min/Now/Highest.

Examples:
  ha-energy-chard --entity sensor.energy_prices                  # Render once to the terminal
  ha-energy-chard --entity sensor.energy_prices --output html    # Emit the HTML fragment
  ha-energy-chard watch --entity sensor.energy_prices            # Re-render on every snapshot push
  ha-energy-chard serve --entity sensor.energy_prices --port 7381`,
		RunE: runRender,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", defaultSnapshot,
		"Path to the state snapshot file")
	rootCmd.PersistentFlags().StringVarP(&entity, "entity", "e", "",
		"Entity id carrying the price series")
	rootCmd.PersistentFlags().StringVar(&title, "title", "",
		"Display title (default \""+model.DefaultTitle+"\")")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone for hour bucketing (e.g., Europe/Amsterdam, UTC)")
	rootCmd.PersistentFlags().StringVar(&nowOverride, "now", "",
		"Override wall-clock time (RFC3339), mainly for testing")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "term",
		"Output format (term, html, json)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	card := newCard()
	card.Update(loadSnapshot())

	out, err := renderChart(card.Derive(currentTime()), outputFormat)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// setup initializes logging and the time provider and logs the one-time
// identification banner.
func setup() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile)

	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}

	util.LogInfof("%s v%s", appName, Version)
	return nil
}

// newCard builds and configures a card through the registry, the explicit
// registration the hosting side would otherwise do.
func newCard() *widget.Card {
	registry.Register(widget.TypeID, func() *widget.Card {
		return widget.New(util.GetTimeProvider().Location())
	})

	card, _ := registry.Create(widget.TypeID)
	cfg := widget.StubConfig()
	cfg.Entity = entity
	if title != "" {
		cfg.Title = title
	}
	card.Configure(cfg)
	return card
}

// loadSnapshot reads the snapshot file. A missing or malformed snapshot is
// a valid state that renders as a placeholder, not an error.
func loadSnapshot() model.Snapshot {
	snap, err := snapshot.Load(expandPath(snapshotPath))
	if err != nil {
		util.LogWarnf("Snapshot unavailable: %v", err)
		return nil
	}
	return snap
}

func currentTime() time.Time {
	if nowOverride != "" {
		if t, err := time.ParseInLocation(time.RFC3339, nowOverride, util.GetTimeProvider().Location()); err == nil {
			return t
		}
		util.LogWarnf("Ignoring unparseable --now value: %s", nowOverride)
	}
	return util.GetTimeProvider().Now()
}

func renderChart(chart render.Chart, format string) (string, error) {
	switch strings.ToLower(format) {
	case "term", "":
		return render.NewTerminalRenderer().Render(chart), nil
	case "html":
		return render.NewHTMLRenderer().Fragment(chart)
	case "json":
		return render.JSON(chart)
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
