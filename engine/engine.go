// Package engine owns a match and advances it one tick at a time.
package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
	"github.com/milk9111/arenaduel/prefabs"
	"github.com/milk9111/arenaduel/system"
)

var (
	ErrUnknownArchetype = errors.New("engine: unknown archetype")
	ErrMissingProfile   = errors.New("engine: missing class profile")
)

// Config selects the fighters and the data a match runs on.
type Config struct {
	Player   component.Archetype
	Opponent component.Archetype
	Profiles component.ProfileTable
	Tuning   component.Tuning
	// Seed feeds the opponent heuristic's randomness.
	Seed int64
	// OpponentScript, when set, replaces the heuristic with a scripted
	// controller loaded from prefabs/scripts.
	OpponentScript string
}

// DefaultConfig loads profiles and tuning from prefabs.
func DefaultConfig(player, opponent component.Archetype) (Config, error) {
	profiles, err := prefabs.LoadProfiles()
	if err != nil {
		return Config{}, err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Player:   player,
		Opponent: opponent,
		Profiles: profiles,
		Tuning:   tuning,
		Seed:     1,
	}, nil
}

// Engine runs one match on a single goroutine.
type Engine struct {
	cfg      Config
	player   *component.ClassProfile
	opponent *component.ClassProfile

	match     *arena.Match
	scheduler *arena.Scheduler
	control   system.Controller
	emitter   component.CombatEventEmitter
	koLogged  bool
}

// New validates cfg and sets up the first match.
func New(cfg Config) (*Engine, error) {
	for _, a := range []component.Archetype{cfg.Player, cfg.Opponent} {
		if !a.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownArchetype, int(a))
		}
	}
	player := cfg.Profiles.Get(cfg.Player)
	if player == nil {
		return nil, fmt.Errorf("%w: player %s", ErrMissingProfile, cfg.Player)
	}
	opponent := cfg.Profiles.Get(cfg.Opponent)
	if opponent == nil {
		return nil, fmt.Errorf("%w: opponent %s", ErrMissingProfile, cfg.Opponent)
	}

	e := &Engine{cfg: cfg, player: player, opponent: opponent}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset starts a fresh match with the same configuration.
func (e *Engine) Reset() error {
	m := arena.NewMatch(e.cfg.Tuning, e.player, e.opponent)

	physics := system.NewPhysicsSystem()
	var opponentStep arena.System
	if e.cfg.OpponentScript != "" {
		s, err := system.LoadScriptedIntent(e.cfg.OpponentScript)
		if err != nil {
			return fmt.Errorf("engine: opponent script: %w", err)
		}
		e.control = s
		opponentStep = system.NewIntentSystem(arena.SlotOpponent)
	} else {
		ai := system.NewAI(arena.SlotOpponent, e.cfg.Seed)
		e.control = ai
		opponentStep = ai
		physics.DrainFactor[arena.SlotOpponent] = e.cfg.Tuning.AIStaminaFactor
	}

	e.scheduler = arena.NewScheduler(
		system.NewTrailSystem(),
		physics,
		system.NewIntentSystem(arena.SlotPlayer),
		opponentStep,
		system.NewStateSystem(),
		system.NewComboSystem(),
		system.NewHurtboxSystem(),
		system.NewHitboxSystem(),
		system.NewCombatSystem(),
		system.NewProjectileSystem(),
		system.NewMatchOverSystem(),
	)
	e.match = m
	e.koLogged = false
	log.Printf("engine: match start %s vs %s", e.player.Archetype, e.opponent.Archetype)
	return nil
}

// Subscribe registers a handler that receives every combat event as the
// tick that produced it completes.
func (e *Engine) Subscribe(h component.CombatEventHandler) {
	e.emitter.Handlers = append(e.emitter.Handlers, h)
}

// Step advances the match by one tick. dt is clamped to [0, MaxDelta].
// After a KO the match keeps ticking but intents are ignored.
func (e *Engine) Step(in component.Intent, dt float64) *arena.Match {
	m := e.match
	m.Dt = clampDelta(dt, m.Tuning.MaxDelta)

	if m.Over {
		m.Intents = [2]component.Intent{}
	} else {
		m.Intents[arena.SlotPlayer] = in
		m.Intents[arena.SlotOpponent] = e.control.Decide(m, arena.SlotOpponent)
	}

	e.scheduler.Update(m)

	for _, evt := range m.Events() {
		e.emitter.Emit(evt)
	}
	if m.Over && !e.koLogged {
		e.koLogged = true
		if m.Draw {
			log.Printf("engine: double KO at tick %d", m.Tick)
		} else {
			log.Printf("engine: %s wins at tick %d", m.Winner, m.Tick)
		}
	}
	return m
}

// Match returns the current match state.
func (e *Engine) Match() *arena.Match {
	return e.match
}

func clampDelta(dt, maxDelta float64) float64 {
	if dt < 0 {
		return 0
	}
	if maxDelta > 0 && dt > maxDelta {
		return maxDelta
	}
	return dt
}
