package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg/text"
	"github.com/rs/zerolog/log"

	"github.com/Kryxzael/AnalogTimer/internal/clockface"
	"github.com/Kryxzael/AnalogTimer/internal/config"
	"github.com/Kryxzael/AnalogTimer/internal/countdown"
	"github.com/Kryxzael/AnalogTimer/internal/models"
	"github.com/Kryxzael/AnalogTimer/internal/readout"
	"github.com/Kryxzael/AnalogTimer/internal/sound"
	"github.com/Kryxzael/AnalogTimer/internal/storage"
)

// Deps are the services the main window drives.
type Deps struct {
	DB     *storage.Database
	Ticker *countdown.Ticker
	Face   *clockface.Face
	Font   *text.FontSource
	Chime  *sound.Chime
}

type MainWindow struct {
	window fyne.Window
	app    fyne.App
	cfg    *config.Config
	deps   Deps

	clock     *ClockWidget
	digital   *DigitalView
	stats     *StatsView
	timeLeft  *widget.Label
	targetBtn *widget.Button

	mu        sync.Mutex
	sessionID string
}

func NewMainWindow(app fyne.App, cfg *config.Config, deps Deps) *MainWindow {
	w := &MainWindow{
		window: app.NewWindow(cfg.App.Name),
		app:    app,
		cfg:    cfg,
		deps:   deps,
	}
	w.setup()
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setup() {
	w.clock = NewClockWidget(w.deps.Face, w.deps.Font)
	w.digital = NewDigitalView(
		config.Color(w.cfg.Theme.Foreground),
		config.Color(w.cfg.Theme.Grayed),
		float32(w.cfg.Theme.FontSize),
	)
	w.stats = NewStatsView(w.deps.DB)

	w.timeLeft = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	w.targetBtn = widget.NewButtonWithIcon("Set target", theme.HistoryIcon(), w.askTarget)

	clockTab := container.NewBorder(
		nil,
		container.NewVBox(w.timeLeft, container.NewCenter(w.targetBtn)),
		nil, nil,
		w.clock,
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Clock", clockTab),
		container.NewTabItem("Full", w.digital.container),
		container.NewTabItem("History", w.stats.container),
	)
	tabs.OnSelected = func(item *container.TabItem) {
		if item.Text == "History" {
			w.stats.Refresh()
		}
	}

	w.deps.Ticker.OnTick(func(tick countdown.Tick) {
		fyne.Do(func() { w.update(tick) })
	})
	w.deps.Ticker.OnReached(func(state models.Countdown) {
		fyne.Do(func() { w.reached(state) })
	})

	w.window.SetContent(tabs)
	w.window.Resize(fyne.NewSize(float32(w.cfg.App.WindowWidth), float32(w.cfg.App.WindowHeight)))
}

func (w *MainWindow) update(tick countdown.Tick) {
	w.clock.SetState(tick.State)
	w.digital.Update(tick)

	prefix := ""
	if tick.Overtime {
		prefix = "+"
	}
	w.timeLeft.SetText(prefix + readout.Clock(tick.Span))
}

func (w *MainWindow) reached(state models.Countdown) {
	w.mu.Lock()
	id := w.sessionID
	w.mu.Unlock()
	if id != "" {
		if err := w.deps.DB.MarkReached(id, state.Now); err != nil {
			log.Error().Err(err).Str("session", id).Msg("mark session reached")
		}
	}

	w.app.SendNotification(fyne.NewNotification(
		w.cfg.App.Name,
		"Countdown to "+state.Target.Format(targetLayout)+" reached",
	))
	if w.deps.Chime != nil {
		go func() {
			if err := w.deps.Chime.Play(); err != nil {
				log.Warn().Err(err).Msg("play chime")
			}
		}()
	}
	w.stats.Refresh()
}

func (w *MainWindow) askTarget() {
	current := w.deps.Ticker.Snapshot()
	showTargetDialog(w.window, current.Target, current.Overtime, w.SetTarget)
}

// SetTarget restarts the countdown and records a new session for it.
func (w *MainWindow) SetTarget(target time.Time, overtime bool) {
	session := &models.Session{
		Target:    target,
		StartedAt: time.Now(),
		Overtime:  overtime,
	}
	id := ""
	if err := w.deps.DB.StartSession(session); err != nil {
		log.Error().Err(err).Msg("record session")
		dialog.ShowError(err, w.window)
	} else {
		id = session.ID
	}

	w.mu.Lock()
	w.sessionID = id
	w.mu.Unlock()

	w.deps.Ticker.SetTarget(target, overtime)
	w.stats.Refresh()
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
