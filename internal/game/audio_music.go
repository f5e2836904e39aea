package game

import (
	"math"
	"time"

	"boatescape/internal/sim"
)

type musicReader struct {
	t        float64
	seed     uint64
	measure  int
	chordIdx int
	menuMode bool
	storm    bool
	section  int
}

var musicVolume float64 = 0.08
var sfxVolume float64 = 0.58
var musicGain float64 = 1

// Relative gains of the two tracks, scaled by musicVolume.
const (
	menuMusicGain = 3.0
	gameMusicGain = 1.75
)

func StartMenuMusic() { startMusic(true, false, menuMusicGain) }

// StartGameMusic starts the sailing track; Hard plays the stormier arrangement.
func StartGameMusic(d sim.Difficulty) { startMusic(false, d == sim.Hard, gameMusicGain) }

func SetMusicVolume(vol float64) {
	musicVolume = clampF(vol, 0, 1)
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.SetVolume(clampF(musicVolume*musicGain, 0, 1))
	}
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// StopMusic closes the current track, if any.
func StopMusic() {
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
		globalAudio.musicPlayer = nil
	}
}

func startMusic(menuMode, storm bool, gain float64) {
	if !audioReady() {
		return
	}
	StopMusic()
	musicGain = gain
	reader := &musicReader{
		seed:     uint64(time.Now().UnixNano()),
		menuMode: menuMode,
		storm:    storm,
	}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(clampF(musicVolume*musicGain, 0, 1))
	globalAudio.musicPlayer = player
	player.Play()
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	if m.menuMode {
		return m.readMenuMusic(p, samples)
	}
	return m.readGameMusic(p, samples)
}

// ---- Instruments (stateless per-sample, driven by m.t) ------------------

// kick returns a kick drum sample given time-since-trigger (trig) in seconds.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

// snare returns a snare sample given time-since-trigger.
func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	n1 := lcg(seed)
	n2 := lcg(seed)
	bandNoise := (n1 - n2*0.55) * env * (0.55 + 0.25*math.Exp(-trig*8.0))
	return softSat(body + bandNoise)
}

// hihat returns a closed hi-hat sample. open=true for longer decay.
func hihat(trig float64, open bool, seed *uint64) float64 {
	decay := 42.0
	limit := 0.06
	if open {
		decay = 15.0
		limit = 0.18
	}
	if trig > limit {
		return 0
	}
	n := lcg(seed)
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	s := (n*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07
	return softSat(s)
}

// fmBass returns a warm FM bass sample.
func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	return softSat(b)
}

// fmPad returns a pad sample from a chord, detuned FM oscillators per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

// fmLead returns a squeezebox-like lead sample.
func fmLead(t, freq, env float64) float64 {
	vib := 1 + 0.012*math.Sin(2*math.Pi*5.8*t)
	s := fm(t, freq*vib, 1.0, 1.9*env) * env * 0.24
	s += math.Sin(2*math.Pi*freq*1.006*t) * env * 0.08
	return softSat(s)
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func softSquareWave(phase float64) float64 {
	return math.Tanh(math.Sin(phase) * 3.4)
}

// ---- Menu music ---------------------------------------------------------

// readMenuMusic plays a slow shanty in 6/8: one bar is six eighth notes.
func (m *musicReader) readMenuMusic(p []byte, samples int) (int, error) {
	chords := [][]float64{
		{146.8, 174.6, 220.0}, // Dm
		{130.8, 164.8, 196.0}, // C
		{116.5, 146.8, 174.6}, // Bb
		{110.0, 138.6, 164.8}, // A
		{146.8, 174.6, 220.0}, // Dm
		{174.6, 220.0, 261.6}, // F
		{130.8, 164.8, 196.0}, // C
		{110.0, 138.6, 164.8}, // A
	}
	const eighth = 6.6 // eighth notes per second
	const bar = 6

	// Hook over two bars, 0 is a rest.
	hookA := [12]float64{
		293.66, 0, 349.23, 440.00, 0, 392.00,
		349.23, 0, 329.63, 293.66, 0, 0,
	}
	hookB := [12]float64{
		440.00, 0, 466.16, 440.00, 0, 392.00,
		349.23, 0, 392.00, 440.00, 0, 0,
	}

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		stepF := m.t * eighth
		step := int(stepF)
		stepPos := stepF - float64(step)
		stepTrig := stepPos / eighth
		inBar := step % bar
		m.measure = step / bar
		m.section = (m.measure / 8) % 2

		chord := chords[m.measure%len(chords)]
		s := fmPad(m.t, chord, 0.6) * 0.55

		// Oom-pah bass on the two strong beats of the bar.
		if inBar == 0 || inBar == 3 {
			bassFreq := chord[0] / 2
			if inBar == 3 {
				bassFreq = chord[2] / 2
			}
			bPh := 2 * math.Pi * bassFreq * m.t
			bass := triWave(bPh)*0.6 + softSquareWave(bPh*0.5)*0.2
			s += bass * adsr(stepPos, 0.02, 0.5, 0.3, 0.2) * 0.5
			s += kick(stepTrig) * 0.35
		}
		if inBar == 2 || inBar == 5 {
			s += hihat(stepTrig, false, &m.seed) * 0.8
		}

		// Plucked chord on the off beats.
		if inBar == 1 || inBar == 4 {
			arp := chord[inBar%len(chord)] * 2
			s += fmArp(m.t, arp, adsr(stepPos, 0.01, 0.4, 0.1, 0.3)) * 0.6
		}

		hook := hookA
		if m.section == 1 {
			hook = hookB
		}
		if note := hook[step%len(hook)]; note > 0 {
			env := adsr(stepPos, 0.04, 0.4, 0.6, 0.15)
			s += fmLead(m.t, note, env) * 0.9
		}

		sway := 1.0 - 0.1*math.Exp(-stepTrig*14.0)*boolF(inBar == 0)
		s = softSat(s * sway * 0.9)
		pan := 0.12 * math.Sin(2*math.Pi*0.08*m.t)
		putStereoF32LR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return len(p), nil
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ---- Game music ---------------------------------------------------------

var calmChords = [][]float64{
	{146.8, 174.6, 220.0}, // Dm
	{130.8, 164.8, 196.0}, // C
	{116.5, 146.8, 174.6}, // Bb
	{110.0, 138.6, 164.8}, // A
	{146.8, 185.0, 220.0}, // D
	{130.8, 164.8, 207.7}, // C6
	{123.5, 155.6, 185.0}, // Bdim
	{110.0, 130.8, 164.8}, // Am
}

var stormChords = [][]float64{
	{110.0, 130.8, 164.8}, // Am
	{98.0, 123.5, 146.8},  // G
	{87.3, 110.0, 130.8},  // F
	{82.4, 103.8, 123.5},  // E
	{110.0, 130.8, 164.8}, // Am
	{116.5, 146.8, 174.6}, // Bb
	{87.3, 110.0, 130.8},  // F
	{82.4, 103.8, 123.5},  // E
}

func (m *musicReader) readGameMusic(p []byte, samples int) (int, error) {
	chords, tempo := calmChords, 2.0
	if m.storm {
		chords, tempo = stormChords, 2.6
	}

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate

		beatLen := 1.0 / tempo
		trig := math.Mod(m.t, beatLen)
		beatPos := trig / beatLen
		currentBeat := int(m.t * tempo)

		if currentBeat/2 != m.measure {
			m.measure = currentBeat / 2
			m.chordIdx = (m.chordIdx + 1) % len(chords)
		}
		m.section = (currentBeat / 32) % 4
		chord := chords[m.chordIdx]

		var s float64
		if m.storm {
			s = m.mixStorm(chord, tempo, trig, beatPos, currentBeat)
		} else {
			s = m.mixCalm(chord, tempo, trig, beatPos, currentBeat)
		}

		energy := [4]float64{0.80, 0.92, 1.00, 0.88}[m.section]
		duck := 1.0 - 0.16*math.Exp(-trig*20.0)
		s = softSat(s * energy * duck)
		pan := 0.09*math.Sin(2*math.Pi*0.09*m.t) + 0.015*math.Sin(2*math.Pi*0.31*m.t)
		putStereoF32LR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return len(p), nil
}

func (m *musicReader) mixCalm(chord []float64, tempo, trig, beatPos float64, beat int) float64 {
	s := fmPad(m.t, chord, 0.65) * 0.7

	bassFreq := chord[0] / 2
	if beat%4 == 0 || beat%4 == 3 || (beat%4 == 1 && beatPos > 0.5) {
		s += fmBass(m.t, bassFreq, math.Exp(-trig*14))
	}

	arpIdx := int(m.t*tempo*4) % len(chord)
	arpEnv := math.Exp(-math.Mod(m.t*tempo*4, 1.0) / tempo * 4 * 12)
	s += fmArp(m.t, chord[arpIdx], arpEnv) * 0.5

	if beat%2 == 0 {
		s += kick(trig) * 0.9
	} else {
		s += snare(trig, &m.seed) * 0.7
	}
	hhStep := math.Mod(m.t*tempo*2, 1.0)
	s += hihat(hhStep/(tempo*2), beat%4 == 3 && hhStep > 0.5, &m.seed)
	return s
}

func (m *musicReader) mixStorm(chord []float64, tempo, trig, beatPos float64, beat int) float64 {
	s := fmPad(m.t, chord, 1.0) * 0.75

	pumpEnv := math.Min(1.0, beatPos*4)
	s += fmBass(m.t, chord[0]/2, pumpEnv) * 0.9

	s += kick(trig) * 1.1
	if beat%2 == 1 {
		s += snare(trig, &m.seed)
	}
	hhTrig := math.Mod(m.t*tempo*4, 1.0) / (tempo * 4)
	s += hihat(hhTrig, false, &m.seed) * 1.2

	arpIdx := int(m.t*tempo*2) % len(chord)
	arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.005, 0.3, 0.1, 0.15)
	s += fmArp(m.t, chord[arpIdx]*2, arpEnv) * 0.75

	leadNotes := [4]float64{1.0, 1.2, 1.5, 1.2}
	leadEnv := adsr(beatPos, 0.005, 0.35, 0.15, 0.15)
	s += fmLead(m.t, chord[1]*2*leadNotes[int(m.t*tempo)%4], leadEnv) * 0.65
	return s
}
