package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg/text"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Kryxzael/AnalogTimer/internal/clockface"
	"github.com/Kryxzael/AnalogTimer/internal/config"
	"github.com/Kryxzael/AnalogTimer/internal/countdown"
	"github.com/Kryxzael/AnalogTimer/internal/models"
	"github.com/Kryxzael/AnalogTimer/internal/render"
	"github.com/Kryxzael/AnalogTimer/internal/sound"
	"github.com/Kryxzael/AnalogTimer/internal/storage"
	"github.com/Kryxzael/AnalogTimer/internal/ui"
)

const appID = "io.github.kryxzael.analogtimer"

type App struct {
	cfg struct {
		configPath string
		target     string
		overtime   bool
		output     string
		size       int
		at         string
	}

	config *config.Config

	// entry point
	Execute func() error
}

func NewApp() *App {
	a := &App{}

	// root
	rootCmd := &cobra.Command{
		Use:               "analog-timer",
		Short:             "Analog countdown clock",
		SilenceUsage:      true,
		RunE:              a.runCmd,
		PersistentPreRunE: a.loadConfig,
	}
	rootCmd.PersistentFlags().StringVarP(&a.cfg.configPath, "config", "c", "", "Configuration file (default $"+config.EnvPath+" or ~/.analog-timer/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.cfg.target, "target", "t", "", "Target as \"2006-01-02 15:04:05\" or +duration")
	rootCmd.PersistentFlags().BoolVar(&a.cfg.overtime, "overtime", false, "Count up once the target has passed")
	a.Execute = rootCmd.Execute

	// run
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Open the countdown window",
		RunE:  a.runCmd,
	}
	rootCmd.AddCommand(runCmd)

	// snapshot
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the clock face to a PNG file",
		RunE:  a.snapshotCmd,
	}
	snapshotCmd.Flags().StringVarP(&a.cfg.output, "output", "o", "clock.png", "PNG file to write")
	snapshotCmd.Flags().IntVarP(&a.cfg.size, "size", "s", 480, "Width and height in pixels")
	snapshotCmd.Flags().StringVar(&a.cfg.at, "at", "", "Render as seen at this instant instead of now")
	rootCmd.AddCommand(snapshotCmd)

	// sessions
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recent countdowns",
		RunE:  a.sessionsCmd,
	}
	rootCmd.AddCommand(sessionsCmd)

	return a
}

func (a *App) loadConfig(cmd *cobra.Command, _ []string) error {
	var (
		m   *config.Manager
		err error
	)
	if a.cfg.configPath != "" {
		m, err = config.NewManagerAt(a.cfg.configPath)
	} else {
		m, err = config.NewManager()
	}
	if err != nil {
		log.Error().Err(err).Msg("load config")
		return err
	}
	a.config = m.GetConfig()

	level, err := zerolog.ParseLevel(a.config.Log.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Debug().Str("path", m.Path()).Msg("config loaded")

	if cmd.Flags().Changed("overtime") {
		a.config.Countdown.Overtime = a.cfg.overtime
	}
	return nil
}

// target resolves --target against now, falling back to the configured one.
func (a *App) target(now time.Time) (time.Time, error) {
	if a.cfg.target == "" {
		return a.config.TargetAt(now), nil
	}
	return ui.ParseTarget(a.cfg.target, now)
}

func (a *App) newFace() (*clockface.Face, *text.FontSource, error) {
	scheme, err := clockface.ParseScheme(a.config.Clock.Scheme)
	if err != nil {
		return nil, nil, err
	}
	font, err := render.DefaultFont()
	if a.config.Clock.Font != "" {
		font, err = render.LoadFont(a.config.Clock.Font)
	}
	if err != nil {
		return nil, nil, err
	}
	return clockface.NewFace(a.config.FaceOptions(), scheme, a.config.Rand()), font, nil
}

func (a *App) runCmd(_ *cobra.Command, _ []string) error {
	clock := clockwork.NewRealClock()
	target, err := a.target(clock.Now())
	if err != nil {
		return err
	}
	face, font, err := a.newFace()
	if err != nil {
		return err
	}

	db, err := storage.NewDatabase(a.config.Database.Path)
	if err != nil {
		log.Error().Err(err).Msg("open database")
		return err
	}
	defer db.Close()

	chime := sound.DefaultChime()
	chime.Frequency = a.config.Sound.Frequency
	chime.Volume = a.config.Sound.Volume
	chime.Muted = !a.config.Sound.Enabled
	chime.File = a.config.Sound.File

	ticker := countdown.New(clock, target, a.config.Countdown.Overtime, a.config.Countdown.TickInterval)

	fyneApp := app.NewWithID(appID)
	window := ui.NewMainWindow(fyneApp, a.config, ui.Deps{
		DB:     db,
		Ticker: ticker,
		Face:   face,
		Font:   font,
		Chime:  chime,
	})
	window.SetTarget(target, a.config.Countdown.Overtime)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := ticker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("countdown ticker")
		}
	}()

	log.Info().Time("target", target).Bool("overtime", a.config.Countdown.Overtime).Msg("countdown started")
	window.Show()
	return nil
}

func (a *App) snapshotCmd(_ *cobra.Command, _ []string) error {
	now := time.Now()
	if a.cfg.at != "" {
		at, err := ui.ParseTarget(a.cfg.at, now)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		now = at
	}
	target, err := a.target(now)
	if err != nil {
		return err
	}
	if a.cfg.size <= 0 {
		return fmt.Errorf("--size must be positive, got %d", a.cfg.size)
	}
	face, font, err := a.newFace()
	if err != nil {
		return err
	}

	state := models.Countdown{
		Target:   target,
		Now:      now,
		Overtime: a.config.Countdown.Overtime,
	}
	dc := render.Frame(face, font, state, a.cfg.size, a.cfg.size, config.Color(a.config.Theme.Background))
	defer dc.Close()
	if err := dc.SavePNG(a.cfg.output); err != nil {
		return fmt.Errorf("save %s: %w", a.cfg.output, err)
	}
	log.Info().Str("file", a.cfg.output).Dur("left", state.TimeLeft()).Msg("snapshot written")
	return nil
}

func (a *App) sessionsCmd(cmd *cobra.Command, _ []string) error {
	db, err := storage.NewDatabase(a.config.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.RecentSessions(20)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range sessions {
		reached := "-"
		if s.ReachedAt != nil {
			reached = s.ReachedAt.Local().Format(time.DateTime)
		}
		fmt.Fprintf(out, "%s  %s  %s\n", s.ID, s.Target.Local().Format(time.DateTime), reached)
	}
	return nil
}
