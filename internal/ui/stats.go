package ui

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/Kryxzael/AnalogTimer/internal/readout"
	"github.com/Kryxzael/AnalogTimer/internal/storage"
)

const recentLimit = 10

type StatsView struct {
	container    *fyne.Container
	db           *storage.Database
	dateRange    *widget.Select
	sessionStats *widget.Label
	recent       *widget.Label
	refreshBtn   *widget.Button
}

func NewStatsView(db *storage.Database) *StatsView {
	sv := &StatsView{
		db:           db,
		sessionStats: widget.NewLabel(""),
		recent:       widget.NewLabel(""),
	}
	sv.setup()
	return sv
}

func (sv *StatsView) setup() {
	title := widget.NewLabelWithStyle("History", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	sv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), sv.Refresh)

	sv.dateRange = widget.NewSelect(
		[]string{"Today", "This Week", "This Month", "All Time"},
		func(selected string) {
			sv.updateStats(selected)
		},
	)

	toolbar := container.NewHBox(
		widget.NewLabel("Time Range:"),
		sv.dateRange,
		sv.refreshBtn,
	)

	sv.container = container.NewVBox(
		title,
		toolbar,
		sv.sessionStats,
		widget.NewLabelWithStyle("Recent countdowns", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sv.recent,
	)

	sv.dateRange.SetSelected("Today")
}

// Refresh reloads the stats for the selected range.
func (sv *StatsView) Refresh() {
	if selected := sv.dateRange.Selected; selected != "" {
		sv.updateStats(selected)
	}
}

// rangeStart returns where the named range begins, relative to now.
func rangeStart(timeRange string, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch timeRange {
	case "Today":
		return today
	case "This Week":
		return today.AddDate(0, 0, -int(now.Weekday()))
	case "This Month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

func (sv *StatsView) updateStats(timeRange string) {
	now := time.Now()
	stats, err := sv.db.GetSessionStats(rangeStart(timeRange, now), now)
	if err != nil {
		log.Error().Err(err).Str("range", timeRange).Msg("load session stats")
		return
	}

	sv.sessionStats.SetText(fmt.Sprintf(
		"Countdowns: %d\n"+
			"Reached: %d\n"+
			"Total Time: %.1f hours\n"+
			"Average Countdown: %.1f minutes",
		stats.TotalSessions,
		stats.ReachedSessions,
		float64(stats.TotalDuration)/3600,
		stats.AverageDuration/60,
	))

	sessions, err := sv.db.RecentSessions(recentLimit)
	if err != nil {
		log.Error().Err(err).Msg("load recent sessions")
		return
	}
	var b strings.Builder
	for _, s := range sessions {
		state := "running"
		if s.ReachedAt != nil {
			state = "reached"
		}
		fmt.Fprintf(&b, "%s  %s  (%s)\n",
			s.Target.Local().Format("2006-01-02 15:04:05"),
			readout.Clock(s.Duration()),
			state,
		)
	}
	sv.recent.SetText(strings.TrimRight(b.String(), "\n"))
}
