package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

type GameState int

const (
	StateMainMenu GameState = iota
	StateDifficultyMenu
	StateSettingsMenu
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "main-menu"
	case StateDifficultyMenu:
		return "difficulty-menu"
	case StateSettingsMenu:
		return "settings-menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Menu sizes.
const (
	MainMenuItems       = 3 // Start, Settings, Quit
	DifficultyMenuItems = 2 // Easy, Hard
	SettingsMenuItems   = 4 // Rainbow Water, Crazy Physics, Party Mode, Boat Skin
	PauseMenuItems      = 3 // Resume, Settings, Main Menu
)

// MenuIntents are edge-triggered menu commands.
type MenuIntents struct {
	Up, Down, Left, Right bool
	Confirm, Back         bool
}

// Settings are the player-facing toggles from the settings menu.
type Settings struct {
	RainbowWater bool
	CrazyPhysics bool
	PartyMode    bool
	BoatSkin     int
}

// Session drives the menus and the per-frame simulation order.
type Session struct {
	State      GameState
	Difficulty Difficulty
	Settings   Settings

	Player      *Player
	Enemies     *EnemyFleet
	Projectiles *ProjectileSet
	Mountains   *MountainField
	Events      *EventBus

	GameTime   float64
	WaveTime   float64
	Score      int
	Kills      int
	FinalScore int

	DebugMountains bool
	FirstPerson    bool
	QuitRequested  bool

	MenuItem       int
	DifficultyItem int
	SettingsItem   int
	PauseItem      int

	cfg            Config
	log            zerolog.Logger
	shots          firingSink
	settingsReturn GameState
}

func NewSession(cfg Config, seed uint64) *Session {
	s := &Session{
		State:       StateMainMenu,
		Player:      NewPlayer(cfg.Player),
		Enemies:     NewEnemyFleet(cfg.Enemies, NewRand(seed^0xE4E1B0A7)),
		Projectiles: NewProjectileSet(cfg.Projectiles),
		Mountains:   NewMountainField(cfg.Mountains, NewRand(seed^0x3071A1F5)),
		Events:      NewEventBus(),
		cfg:         cfg,
		log:         zerolog.Nop(),
	}
	s.shots = firingSink{set: s.Projectiles, bus: s.Events}
	return s
}

// SetLogger hands a component-tagged child logger to every part of the session.
func (s *Session) SetLogger(l zerolog.Logger) {
	s.log = l.With().Str("component", "session").Logger()
	s.Player.SetLogger(l.With().Str("component", "player").Logger())
	s.Enemies.SetLogger(l.With().Str("component", "enemies").Logger())
	s.Mountains.SetLogger(l.With().Str("component", "mountains").Logger())
}

func (s *Session) Config() Config { return s.cfg }

// StartNewGame resets every component and enters play.
func (s *Session) StartNewGame() {
	s.State = StatePlaying
	s.Player.Reset()
	s.Enemies.Initialize(s.Difficulty)
	s.Projectiles.Clear()
	s.Mountains.Initialize()
	s.GameTime = 0
	s.WaveTime = 0
	s.Score = 0
	s.Kills = 0
	s.FinalScore = 0
	s.FirstPerson = false
	s.log.Info().Stringer("difficulty", s.Difficulty).Str("boat", BoatSkinNames[s.boatSkin()]).Msg("new game")
	s.Events.Emit(Event{Type: EventGameStarted, Pos: s.Player.Position})
}

func (s *Session) boatSkin() int {
	return ((s.Settings.BoatSkin % BoatSkinCount) + BoatSkinCount) % BoatSkinCount
}

// ProcessInput applies one frame of player commands while playing.
func (s *Session) ProcessInput(in Intents, dt float64) {
	if s.State != StatePlaying {
		return
	}
	if in.FirstPerson {
		s.FirstPerson = true
	}
	if in.ThirdPerson {
		s.FirstPerson = false
	}
	if in.ToggleDebug {
		s.DebugMountains = !s.DebugMountains
	}
	if s.FirstPerson && in.LookYaw != 0 {
		s.Player.AdjustRotation(in.LookYaw)
	}

	s.Player.SetPhysicsMode(s.Settings.CrazyPhysics)
	s.Player.SetBoatSkin(s.boatSkin())
	s.Player.ProcessIntents(in, dt, s.shots, s.Mountains)
	s.Player.AlignToWater(s.cfg.Session.WaterLevel)

	if in.Pause {
		s.State = StatePaused
		s.PauseItem = 0
		s.Events.Emit(Event{Type: EventPaused})
	}
}

// Update advances the world one frame. The order is fixed: player, projectiles,
// enemies, mountains, then the cross-collision pass and the game-over check.
func (s *Session) Update(dt float64) {
	if s.State != StatePlaying {
		return
	}
	s.GameTime += dt
	s.WaveTime += dt

	pos := s.Player.Position
	s.Player.Update(dt)
	s.Projectiles.Advance(dt, s.Mountains)
	s.Projectiles.DrainImpacts(func(p mgl64.Vec3) {
		s.Events.Emit(Event{Type: EventShotImpact, Pos: p})
	})
	s.Enemies.Advance(dt, pos, s.shots, s.Mountains)
	s.Mountains.Advance(dt, pos)

	s.ResolveCollisions()

	if s.Player.HP.IsDead() {
		s.gameOver()
	}
}

// Tick is ProcessInput followed by Update.
func (s *Session) Tick(in Intents, dt float64) {
	s.ProcessInput(in, dt)
	s.Update(dt)
}

// ResolveCollisions matches player shots against enemies and enemy shots
// against the player. A player shot sinks the first active enemy in range,
// not the closest. Hit projectiles are marked and compacted after the scan.
func (s *Session) ResolveCollisions() {
	cfg := s.cfg.Session
	projs := s.Projectiles.Projectiles()
	enemies := s.Enemies.Enemies()
	hitEnemy2 := cfg.EnemyHitRadius * cfg.EnemyHitRadius
	hitPlayer2 := cfg.PlayerHitRadius * cfg.PlayerHitRadius

	for i := range projs {
		p := &projs[i]
		if !p.Active {
			continue
		}
		if p.PlayerOwned {
			for j := range enemies {
				e := &enemies[j]
				if !e.Active || planarDist2(p.Position, e.Position) >= hitEnemy2 {
					continue
				}
				e.Active = false
				s.Score += cfg.ScorePerKill
				s.Kills++
				p.Active = false
				s.Events.Emit(Event{Type: EventEnemyDestroyed, Pos: e.Position, PlayerOwned: true, Value: s.Score})
				break
			}
			continue
		}
		if planarDist2(p.Position, s.Player.Position) < hitPlayer2 {
			if s.Player.TakeDamage(cfg.Damage) {
				s.Events.Emit(Event{Type: EventPlayerHit, Pos: s.Player.Position, Value: int(s.Player.HP.Current)})
			}
			p.Active = false
		}
	}
	s.Projectiles.RemoveInactive()
}

func (s *Session) gameOver() {
	s.State = StateGameOver
	s.FinalScore = s.Score
	s.log.Info().Int("score", s.Score).Int("kills", s.Kills).Float64("time", s.GameTime).Msg("game over")
	s.Events.Emit(Event{Type: EventGameOver, Pos: s.Player.Position, Value: s.Score})
}

// HandleMenu applies menu navigation for every non-playing state.
func (s *Session) HandleMenu(in MenuIntents) {
	switch s.State {
	case StateMainMenu:
		s.MenuItem = cycle(s.MenuItem, MainMenuItems, in)
		if in.Confirm {
			s.selected()
			switch s.MenuItem {
			case 0:
				s.State = StateDifficultyMenu
			case 1:
				s.openSettings(StateMainMenu)
			case 2:
				s.QuitRequested = true
			}
		}

	case StateDifficultyMenu:
		s.DifficultyItem = cycle(s.DifficultyItem, DifficultyMenuItems, in)
		if in.Confirm {
			s.selected()
			s.Difficulty = Easy
			if s.DifficultyItem == 1 {
				s.Difficulty = Hard
			}
			s.StartNewGame()
			return
		}
		if in.Back {
			s.State = StateMainMenu
		}

	case StateSettingsMenu:
		s.SettingsItem = cycle(s.SettingsItem, SettingsMenuItems, in)
		if in.Left || in.Right {
			step := 1
			if in.Left {
				step = -1
			}
			switch s.SettingsItem {
			case 0:
				s.Settings.RainbowWater = !s.Settings.RainbowWater
			case 1:
				s.Settings.CrazyPhysics = !s.Settings.CrazyPhysics
			case 2:
				s.Settings.PartyMode = !s.Settings.PartyMode
			case 3:
				s.Settings.BoatSkin = (s.boatSkin() + step + BoatSkinCount) % BoatSkinCount
			}
		}
		if in.Back {
			s.State = s.settingsReturn
		}

	case StatePaused:
		s.PauseItem = cycle(s.PauseItem, PauseMenuItems, in)
		if in.Confirm {
			s.selected()
			switch s.PauseItem {
			case 0:
				s.State = StatePlaying
			case 1:
				s.openSettings(StatePaused)
			case 2:
				s.State = StateMainMenu
			}
			return
		}
		if in.Back {
			s.State = StatePlaying
		}

	case StateGameOver:
		if in.Confirm {
			s.selected()
			s.State = StateMainMenu
		}
	}
}

func (s *Session) openSettings(from GameState) {
	s.settingsReturn = from
	s.State = StateSettingsMenu
}

func (s *Session) selected() {
	s.Events.Emit(Event{Type: EventMenuSelect})
}

// cycle moves a menu cursor up or down with wraparound.
func cycle(item, n int, in MenuIntents) int {
	if in.Up {
		item = (item - 1 + n) % n
	}
	if in.Down {
		item = (item + 1) % n
	}
	return item
}
