package tty

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"boatescape/internal/config"
	"boatescape/internal/sim"
	"boatescape/internal/telemetry"
)

// FrameInterval paces the terminal frontend.
const FrameInterval = 33 * time.Millisecond

// Options configures a terminal run.
type Options struct {
	Config    config.Config
	Logger    zerolog.Logger
	Telemetry *telemetry.Recorder // optional
	Seed      uint64
	Screen    tcell.Screen // nil opens the controlling terminal
	Mute      bool
}

// App is the terminal frontend: one session, its screen and its speaker.
type App struct {
	screen  tcell.Screen
	session *sim.Session
	keys    *Keys
	render  *Renderer
	sound   *Sound
	tel     *telemetry.Recorder
	log     zerolog.Logger
	start   time.Time
}

func NewApp(opts Options) (*App, error) {
	log := opts.Logger.With().Str("component", "tty").Logger()

	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	session := sim.NewSession(opts.Config.Sim, opts.Seed)
	session.Settings = opts.Config.Settings
	session.Difficulty = opts.Config.Difficulty
	session.DifficultyItem = int(opts.Config.Difficulty)
	session.SetLogger(opts.Logger)
	if opts.Telemetry != nil {
		opts.Telemetry.Attach(session.Events)
	}

	a := &App{
		screen:  screen,
		session: session,
		keys:    NewKeys(),
		render:  NewRenderer(screen),
		sound:   NewSound(session, opts.Config.Audio.SfxVolume, log),
		tel:     opts.Telemetry,
		log:     log,
		start:   time.Now(),
	}
	if !opts.Mute {
		if err := a.sound.Init(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Warn().Err(err).Msg("speaker init failed")
		}
	}
	a.sound.Attach(session.Events)

	w, h := screen.Size()
	log.Info().Int("cols", w).Int("rows", h).Uint64("seed", opts.Seed).Msg("terminal ready")
	return a, nil
}

// Session exposes the running game.
func (a *App) Session() *sim.Session { return a.session }

// HandleEvent applies one terminal event. It returns false once the player quits.
func (a *App) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			a.log.Info().Msg("interrupt")
			return false
		}
		if a.session.State == sim.StatePlaying {
			a.keys.Press(ev, now)
			return true
		}
		a.session.HandleMenu(MenuIntent(ev))
		return !a.session.QuitRequested

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Step advances the game by dt seconds and draws a frame. It returns false
// once the session asks to quit.
func (a *App) Step(now time.Time, dt float64) bool {
	if a.session.State == sim.StatePlaying {
		a.session.Tick(a.keys.Intents(now), dt)
	} else {
		a.keys.Reset()
	}
	if a.session.QuitRequested {
		return false
	}

	a.render.Draw(a.session, now.Sub(a.start).Seconds())
	if a.tel != nil {
		a.tel.Sample(a.session)
	}
	return true
}

// Run drives the event and frame loop until the player quits.
func (a *App) Run() error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !a.HandleEvent(ev, time.Now()) {
				return nil
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), 0.1)
			last = now
			if !a.Step(now, dt) {
				return nil
			}
		}
	}
}

// Close restores the terminal and releases the speaker.
func (a *App) Close() {
	a.sound.Close()
	a.screen.Fini()
	a.log.Info().Int("score", a.session.Score).Int("kills", a.session.Kills).Msg("terminal closed")
}

// Run plays Boat Escape in the terminal.
func Run(opts Options) error {
	a, err := NewApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run()
}
