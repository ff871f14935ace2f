package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iimuz/toggl-tools-go/internal/config"
	"github.com/iimuz/toggl-tools-go/internal/core/model"
	"github.com/iimuz/toggl-tools-go/internal/report"
	"github.com/iimuz/toggl-tools-go/internal/toggl"
	"github.com/iimuz/toggl-tools-go/internal/util"
)

var (
	// Logging related
	debug bool

	// Output related
	outputFormat string
	timezone     string

	// Filtering
	excludeTags []int64

	rootCmd = &cobra.Command{
		Use:   "toggl-tools",
		Short: "Daily log and summary reports from Toggl Track",
		Long: `toggl-tools retrieves time entries from the Toggl Track API and renders
them as a per-day activity log or an aggregated per-project/per-tag summary.

Configuration comes from the environment (or a .env file):
  TOGGL_API_KEY          API token (required, from your Toggl profile page)
  TOGGL_API_BASE_URL     API endpoint override
  TOGGL_TIMEZONE         Display timezone (e.g. Asia/Tokyo)
  TOGGL_EXCLUDE_TAG_IDS  Comma-separated tag ids to omit from summaries

Examples:
  toggl-tools daily                                # Today's log as markdown
  toggl-tools daily --date 2026-08-27 -o table     # One day as a table
  toggl-tools summary --days 7                     # Last week per project+tag
  toggl-tools summary --from 2026-08-01 --to 2026-08-31 --group-by project`,
		SilenceUsage: true,
	}
)

const defaultLogFile = "~/.toggl-tools/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "markdown",
		"Output format (markdown, table, csv, json)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Display timezone (e.g. Asia/Tokyo, UTC); overrides TOGGL_TIMEZONE")
	rootCmd.PersistentFlags().Int64SliceVar(&excludeTags, "exclude-tags", nil,
		"Tag ids to exclude from summaries; overrides TOGGL_EXCLUDE_TAG_IDS")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func Execute() error {
	return rootCmd.Execute()
}

// newReporter wires config, logging, time provider, API client and the
// report pipeline for one command invocation.
func newReporter(cmd *cobra.Command, groupBy string) (*report.Reporter, *util.TimeProvider, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	tz := cfg.Timezone
	if cmd.Flags().Changed("timezone") || timezone != "" {
		tz = timezone
	}
	if err := util.InitializeTimeProvider(tz); err != nil {
		return nil, nil, err
	}
	tp := util.GetTimeProvider()

	exclude := cfg.ExcludeTagIDs
	if cmd.Flags().Changed("exclude-tags") {
		exclude = excludeTags
	}

	gb, ok := model.ParseGroupBy(groupBy)
	if !ok {
		return nil, nil, fmt.Errorf("unknown group-by %q (project, tag, project-tag)", groupBy)
	}

	client := toggl.NewClient(cfg.BaseURL, cfg.APIKey)
	reporter, err := report.New(&report.Config{
		Timezone:    tz,
		Output:      outputFormat,
		GroupBy:     gb,
		ExcludeTags: exclude,
	}, client, os.Stdout)
	if err != nil {
		return nil, nil, err
	}

	return reporter, tp, nil
}

// parseDay parses a YYYY-MM-DD flag value in the display timezone.
func parseDay(value string, tp *util.TimeProvider) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, tp.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return day, nil
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
