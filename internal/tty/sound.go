package tty

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"boatescape/internal/sim"
)

const (
	sampleRate = beep.SampleRate(44100)

	// HearingRange is the distance at which enemy guns fade to their quietest.
	HearingRange = 80.0
)

// Sound plays short synthesized cues for session events through the speaker.
// Without an audio device every method is a no-op.
type Sound struct {
	session *sim.Session
	log     zerolog.Logger
	mixer   *beep.Mixer
	volume  float64
	ready   bool
}

func NewSound(s *sim.Session, volume float64, log zerolog.Logger) *Sound {
	return &Sound{session: s, log: log, mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. Failure leaves the game silent.
func (snd *Sound) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(snd.mixer)
	snd.ready = true
	return nil
}

// Close stops every cue and releases the speaker.
func (snd *Sound) Close() {
	if !snd.ready {
		return
	}
	speaker.Lock()
	snd.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	snd.ready = false
}

// Attach subscribes the cues to the session's event bus.
func (snd *Sound) Attach(bus *sim.EventBus) {
	bus.Subscribe(sim.EventShotFired, snd.onShot)
	bus.Subscribe(sim.EventEnemyDestroyed, func(e sim.Event) {
		snd.play(boom(1.2, 70, 0.9), snd.gainAt(e.Pos))
	})
	bus.Subscribe(sim.EventPlayerHit, func(sim.Event) {
		snd.tones(0.8, 0.18, 160, 120)
	})
	bus.Subscribe(sim.EventShotImpact, func(e sim.Event) {
		snd.play(hiss(0.25), 0.5*snd.gainAt(e.Pos))
	})
	bus.Subscribe(sim.EventGameOver, func(sim.Event) {
		snd.tones(0.7, 0.22, 392, 330, 262)
	})
	bus.Subscribe(sim.EventMenuSelect, func(sim.Event) {
		snd.tones(0.4, 0.05, 660)
	})
	bus.Subscribe(sim.EventPaused, func(sim.Event) {
		snd.tones(0.4, 0.08, 440, 330)
	})
}

func (snd *Sound) onShot(e sim.Event) {
	if e.PlayerOwned {
		snd.play(boom(0.35, 110, 0.6), 1)
		return
	}
	snd.play(boom(0.3, 90, 0.5), snd.gainAt(e.Pos))
}

// gainAt falls off linearly with distance from the player.
func (snd *Sound) gainAt(pos mgl64.Vec3) float64 {
	d := sim.PlanarDist(pos, snd.session.Player.Position)
	return max(0.15, min(1, 1-d/HearingRange))
}

// tones plays a sequence of sine beeps, each step seconds long.
func (snd *Sound) tones(gain, step float64, freqs ...float64) {
	if !snd.ready {
		return
	}
	seq := make([]beep.Streamer, 0, len(freqs))
	n := sampleRate.N(time.Duration(step * float64(time.Second)))
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			snd.log.Debug().Err(err).Float64("freq", f).Msg("tone rejected")
			return
		}
		seq = append(seq, beep.Take(n, sine))
	}
	snd.play(beep.Seq(seq...), gain)
}

func (snd *Sound) play(s beep.Streamer, gain float64) {
	if !snd.ready {
		return
	}
	speaker.Lock()
	snd.mixer.Add(withVolume(s, gain*snd.volume))
	speaker.Unlock()
}

// withVolume scales a streamer by a linear gain.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// boom is a decaying low sine under filtered noise, seconds long.
func boom(seconds, pitch, noise float64) beep.Streamer {
	total := sampleRate.N(time.Duration(seconds * float64(time.Second)))
	pos := 0
	seed := uint32(0x9E3779B9)
	var lp float64
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sampleRate)
			env := math.Exp(-t * 6 / seconds)
			seed = seed*1664525 + 1013904223
			white := float64(seed>>8)/float64(1<<24)*2 - 1
			lp += (white - lp) * 0.08
			v := env * (0.6*math.Sin(2*math.Pi*pitch*t*(1-0.3*t/seconds)) + noise*lp*2)
			samples[i][0], samples[i][1] = v*0.5, v*0.5
			pos++
		}
		return len(samples), true
	}))
}

// hiss is a short burst of bright noise for splashes.
func hiss(seconds float64) beep.Streamer {
	total := sampleRate.N(time.Duration(seconds * float64(time.Second)))
	pos := 0
	seed := uint32(0x2545F491)
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sampleRate)
			seed = seed*1664525 + 1013904223
			white := float64(seed>>8)/float64(1<<24)*2 - 1
			v := white * math.Exp(-t*10/seconds) * 0.3
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}
