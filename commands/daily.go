package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/iimuz/toggl-tools-go/internal/util"
)

var (
	dailyDate string
	dailyFrom string
	dailyTo   string

	dailyCmd = &cobra.Command{
		Use:   "daily",
		Short: "Show the per-day activity log",
		Long: `daily lists time entries grouped by calendar day in the display timezone,
ordered by start time. An entry that runs past midnight is listed on the day
it started.`,
		Args: cobra.NoArgs,
		RunE: runDaily,
	}
)

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "",
		"Day to report (YYYY-MM-DD, default today)")
	dailyCmd.Flags().StringVar(&dailyFrom, "from", "",
		"First day of a range (YYYY-MM-DD); requires --to")
	dailyCmd.Flags().StringVar(&dailyTo, "to", "",
		"Last day of a range (YYYY-MM-DD); requires --from")
	dailyCmd.MarkFlagsRequiredTogether("from", "to")
	dailyCmd.MarkFlagsMutuallyExclusive("date", "from")

	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	reporter, tp, err := newReporter(cmd, "project-tag")
	if err != nil {
		return err
	}

	var fromDay, toDay time.Time
	switch {
	case dailyFrom != "":
		if fromDay, err = parseDay(dailyFrom, tp); err != nil {
			return err
		}
		if toDay, err = parseDay(dailyTo, tp); err != nil {
			return err
		}
	case dailyDate != "":
		if fromDay, err = parseDay(dailyDate, tp); err != nil {
			return err
		}
		toDay = fromDay
	default:
		fromDay = util.StartOfDay(tp.Now())
		toDay = fromDay
	}

	return reporter.Daily(cmd.Context(), fromDay, toDay)
}
