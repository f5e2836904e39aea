package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"boatescape/internal/sim"
)

const instrumentationName = "boatescape/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

var (
	ownerPlayer = metric.WithAttributes(attribute.String("owner", "player"))
	ownerEnemy  = metric.WithAttributes(attribute.String("owner", "enemy"))
)

// Recorder turns session events into OTel instruments. Counts are also kept
// locally so the HUD and tests can read them without a metrics backend.
type Recorder struct {
	destroyed metric.Int64Counter
	hits      metric.Int64Counter
	shots     metric.Int64Counter
	games     metric.Int64Counter
	live      metric.Int64ObservableGauge

	kills       atomic.Int64
	playerHits  atomic.Int64
	playerShots atomic.Int64
	enemyShots  atomic.Int64

	mountains   atomic.Int64
	enemies     atomic.Int64
	projectiles atomic.Int64
}

// New creates the instruments on the global meter, which is a no-op unless a
// provider has been installed.
func New() (*Recorder, error) {
	return NewWithMeter(meter())
}

func NewWithMeter(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.destroyed, err = m.Int64Counter(
		"boatescape.enemies.destroyed",
		metric.WithDescription("Enemy boats sunk by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}

	r.hits, err = m.Int64Counter(
		"boatescape.player.hits",
		metric.WithDescription("Enemy shots that damaged the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}

	r.shots, err = m.Int64Counter(
		"boatescape.shots.fired",
		metric.WithDescription("Projectiles fired, by owner"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	r.games, err = m.Int64Counter(
		"boatescape.games.finished",
		metric.WithDescription("Sessions that reached game over"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating games counter: %w", err)
	}

	r.live, err = m.Int64ObservableGauge(
		"boatescape.entities.live",
		metric.WithDescription("Entities currently in the world, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating live gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(r.live, r.mountains.Load(), metric.WithAttributes(attribute.String("kind", "mountain")))
			o.ObserveInt64(r.live, r.enemies.Load(), metric.WithAttributes(attribute.String("kind", "enemy")))
			o.ObserveInt64(r.live, r.projectiles.Load(), metric.WithAttributes(attribute.String("kind", "projectile")))
			return nil
		},
		r.live,
	)
	if err != nil {
		return nil, fmt.Errorf("registering live callback: %w", err)
	}

	return r, nil
}

// Attach subscribes the recorder to a session's event bus.
func (r *Recorder) Attach(bus *sim.EventBus) {
	bus.Subscribe(sim.EventShotFired, r.onShot)
	bus.Subscribe(sim.EventEnemyDestroyed, r.onKill)
	bus.Subscribe(sim.EventPlayerHit, r.onHit)
	bus.Subscribe(sim.EventGameOver, r.onGameOver)
}

func (r *Recorder) onShot(e sim.Event) {
	if e.PlayerOwned {
		r.playerShots.Add(1)
		r.shots.Add(context.Background(), 1, ownerPlayer)
		return
	}
	r.enemyShots.Add(1)
	r.shots.Add(context.Background(), 1, ownerEnemy)
}

func (r *Recorder) onKill(sim.Event) {
	r.kills.Add(1)
	r.destroyed.Add(context.Background(), 1)
}

func (r *Recorder) onHit(sim.Event) {
	r.playerHits.Add(1)
	r.hits.Add(context.Background(), 1)
}

func (r *Recorder) onGameOver(sim.Event) {
	r.games.Add(context.Background(), 1)
}

// Sample records the current world population for the live gauge. The game
// loop calls it once per frame; the gauge callback may run on another goroutine.
func (r *Recorder) Sample(s *sim.Session) {
	r.mountains.Store(int64(s.Mountains.Len()))
	r.enemies.Store(int64(s.Enemies.ActiveCount()))
	r.projectiles.Store(int64(s.Projectiles.Len()))
}

// Totals is a point-in-time copy of the recorder's counters.
type Totals struct {
	Kills       int64
	PlayerHits  int64
	PlayerShots int64
	EnemyShots  int64
	Mountains   int64
	Enemies     int64
	Projectiles int64
}

func (r *Recorder) Totals() Totals {
	return Totals{
		Kills:       r.kills.Load(),
		PlayerHits:  r.playerHits.Load(),
		PlayerShots: r.playerShots.Load(),
		EnemyShots:  r.enemyShots.Load(),
		Mountains:   r.mountains.Load(),
		Enemies:     r.enemies.Load(),
		Projectiles: r.projectiles.Load(),
	}
}
