//go:build !android

package game

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"boatescape/internal/config"
	"boatescape/internal/sim"
	"boatescape/internal/telemetry"
)

// Options configures a desktop run.
type Options struct {
	Config    config.Config
	Logger    zerolog.Logger
	Telemetry *telemetry.Recorder // optional
	Seed      uint64
}

func RunDesktop(opts Options) error {
	runtime.LockOSThread()
	log := opts.Logger.With().Str("component", "desktop").Logger()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Uint64("seed", opts.Seed).Msg("window ready")

	SetMusicVolume(opts.Config.Audio.MusicVolume)
	SetSFXVolume(opts.Config.Audio.SfxVolume)
	if err := InitAudio(); err != nil {
		log.Warn().Err(err).Msg("audio init failed, continuing without sound")
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartMenuMusic()
		}()
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	session := sim.NewSession(opts.Config.Sim, opts.Seed)
	session.Settings = opts.Config.Settings
	session.Difficulty = opts.Config.Difficulty
	session.DifficultyItem = int(opts.Config.Difficulty)
	session.SetLogger(opts.Logger)
	if opts.Telemetry != nil {
		opts.Telemetry.Attach(session.Events)
	}

	cam := Camera{Zoom: DefaultZoom}
	particles := NewParticleSystem(MaxParticles, opts.Seed^0xBEAD)
	NewEffects(session, particles, &cam, opts.Logger.With().Str("component", "effects").Logger()).Attach(session.Events)
	input := NewInput()

	var world WorldSprites
	var glowBuf, normBuf []float32
	cursorLocked := false

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if session.State == sim.StatePlaying {
			session.Tick(input.Intents(window), dt)
		} else {
			session.HandleMenu(input.MenuIntents(window))
		}
		if session.QuitRequested {
			window.SetShouldClose(true)
			continue
		}

		// Mouse look needs a captured cursor.
		wantLock := session.State == sim.StatePlaying && session.FirstPerson
		if wantLock != cursorLocked {
			mode := glfw.CursorNormal
			if wantLock {
				mode = glfw.CursorDisabled
			}
			window.SetInputMode(glfw.CursorMode, mode)
			cursorLocked = wantLock
		}

		player := session.Player
		view := NewView(player.Position, player.Front, session.FirstPerson)
		if session.State != sim.StatePaused {
			particles.Update(dt, player.Position.X(), player.Position.Z())
		}

		cam.UpdateShake(dt, opts.Seed^uint64(now*1000))
		zoom := DefaultZoom
		if session.FirstPerson {
			zoom = BowZoom
		}
		ahead := player.Position.Add(player.Front.Mul(CameraLookAhead))
		tx, ty := view.ProjectVec(ahead)
		cam.Follow(float64(tx), float64(ty), zoom, dt)

		// Render with shake applied.
		renderCam := cam
		renderCam.X, renderCam.Y = cam.EffectivePos()

		style := SeaStyle{
			RainbowWater: session.Settings.RainbowWater,
			PartyMode:    session.Settings.PartyMode,
			Debug:        session.DebugMountains,
		}
		viewRadius := math.Hypot(float64(fbW), float64(fbH)) / (2 * renderCam.Zoom)
		world.Build(session, view, viewRadius+RippleSpacing, now, style)

		rend.BeginFrame(SeaColor(now, style), fbW, fbH)
		if style.PartyMode {
			tr, tg, tb := lerpRGB(RGB{R: 255, G: 255, B: 255}, Hue(now*0.25), 0.35).floats()
			rend.SetTint(tr, tg, tb)
		} else {
			rend.SetTint(1, 1, 1)
		}
		rend.DrawDiscs(world.Water, renderCam, fbW, fbH)
		rend.DrawDiscs(world.Terrain, renderCam, fbW, fbH)
		rend.DrawDiscs(world.Trails, renderCam, fbW, fbH)
		rend.DrawHulls(world.Hulls, renderCam, fbW, fbH)
		rend.DrawDiscs(world.Decks, renderCam, fbW, fbH)

		// Particles: two passes (normal + glow).
		glowBuf, normBuf = particles.ParticleRenderData(glowBuf, normBuf, view)
		rend.DrawSprites(normBuf, renderCam, fbW, fbH, false)
		rend.DrawSprites(glowBuf, renderCam, fbW, fbH, true)
		rend.DrawGlowSprites(world.Glow, renderCam, fbW, fbH)
		rend.DrawDiscs(world.Debug, renderCam, fbW, fbH)

		// HUD uses stable camera (no shake).
		RenderHUD(rend, session, fbW, fbH)

		window.SwapBuffers()

		if opts.Telemetry != nil {
			opts.Telemetry.Sample(session)
		}
	}

	StopMusic()
	log.Info().Int("score", session.Score).Int("kills", session.Kills).Msg("window closed")
	return nil
}
