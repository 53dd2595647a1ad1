package arena

import (
	"github.com/milk9111/arenaduel/common"
	"github.com/milk9111/arenaduel/component"
)

// Slot indexes a fighter inside a match. Slots are also the evaluation
// order whenever both fighters are processed in one step.
type Slot int

const (
	SlotPlayer   Slot = 0
	SlotOpponent Slot = 1
)

// Slots lists the fighters in evaluation order.
var Slots = [2]Slot{SlotPlayer, SlotOpponent}

// Other returns the opposing slot.
func (s Slot) Other() Slot {
	return 1 - s
}

func (s Slot) String() string {
	if s == SlotOpponent {
		return "opponent"
	}
	return "player"
}

// SpawnInset is the distance of each spawn point from its arena wall.
const SpawnInset = 150

// Match is the complete state of one fight. It is mutated only by the
// systems of a single tick.
type Match struct {
	Fighters    [2]*component.Fighter
	Projectiles []*component.Projectile
	Tuning      component.Tuning
	Bounds      common.Rect

	// Intents are the pending controller snapshots for this tick.
	Intents [2]component.Intent
	Dt      float64

	Tick    int
	Elapsed float64

	Over   bool
	Draw   bool
	Winner Slot

	// hurtboxes is the per-tick projection of each fighter's body, kept in
	// sync with positions by the hurtbox step and by anything that moves a
	// fighter later in the tick.
	hurtboxes [2]common.Rect
	events    EventQueue
}

// NewMatch places both fighters on the ground at their spawn points with
// full resources, facing each other.
func NewMatch(t component.Tuning, player, opponent *component.ClassProfile) *Match {
	floor := t.FloorY()
	m := &Match{
		Tuning: t,
		Bounds: t.Bounds(),
	}
	m.Fighters[SlotPlayer] = component.NewFighter(player, t.EnergyMax,
		SpawnInset, floor-player.Height, component.FacingRight)
	m.Fighters[SlotOpponent] = component.NewFighter(opponent, t.EnergyMax,
		t.ArenaWidth-SpawnInset-opponent.Width, floor-opponent.Height, component.FacingLeft)
	for _, s := range Slots {
		m.SyncHurtbox(s)
	}
	return m
}

// Fighter returns the fighter in slot s.
func (m *Match) Fighter(s Slot) *component.Fighter {
	return m.Fighters[s]
}

// Player returns the player-controlled fighter.
func (m *Match) Player() *component.Fighter {
	return m.Fighters[SlotPlayer]
}

// Opponent returns the AI-controlled fighter.
func (m *Match) Opponent() *component.Fighter {
	return m.Fighters[SlotOpponent]
}

// SyncHurtbox recomputes the hurtbox of slot s from its position.
func (m *Match) SyncHurtbox(s Slot) {
	m.hurtboxes[s] = m.Fighters[s].Hurtbox()
}

// Hurtbox returns the synced hurtbox of slot s.
func (m *Match) Hurtbox(s Slot) *common.Rect {
	r := m.hurtboxes[s]
	return &r
}

// Emit records a combat event for this tick.
func (m *Match) Emit(evt component.CombatEvent) {
	evt.Tick = m.Tick
	m.events.Push(evt)
}

// Events returns the combat events produced by the latest tick.
func (m *Match) Events() []component.CombatEvent {
	return m.events.Items()
}

// ResetEvents clears the previous tick's events.
func (m *Match) ResetEvents() {
	m.events.flush()
}
