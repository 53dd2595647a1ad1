package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

func TestDispatchIntentPriority(t *testing.T) {
	cases := []struct {
		name         string
		energy       float64
		cooldown     int
		in           component.Intent
		wantBlock    bool
		wantAttack   bool
		wantCharging bool
		wantEnergy   float64
	}{
		{
			name:      "block_wins",
			energy:    10,
			in:        component.Intent{Block: true, Skill: true, Attack: true},
			wantBlock: true, wantEnergy: 10,
		},
		{
			name:       "skill_before_attack",
			energy:     10,
			in:         component.Intent{Skill: true, Attack: true},
			wantEnergy: 6,
		},
		{
			name:       "blocked_block_falls_through",
			cooldown:   5,
			in:         component.Intent{Block: true, Attack: true},
			wantAttack: true,
		},
		{
			name:       "skill_without_energy_falls_through",
			energy:     1,
			in:         component.Intent{Skill: true, Attack: true, Charge: true},
			wantAttack: true, wantEnergy: 1,
		},
		{
			name:         "charge_alone",
			energy:       1,
			in:           component.Intent{Charge: true},
			wantCharging: true, wantEnergy: 1.05,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestMatch(knight(), knight())
			f := m.Player()
			f.Energy = c.energy
			f.BlockCooldown = c.cooldown
			m.Intents[arena.SlotPlayer] = c.in

			NewIntentSystem(arena.SlotPlayer).Update(m)

			assert.Equal(t, c.wantBlock, f.Blocking)
			assert.Equal(t, c.wantAttack, f.Attacking())
			assert.Equal(t, c.wantCharging, f.Charging)
			assert.InDelta(t, c.wantEnergy, f.Energy, 1e-9)
		})
	}
}

func TestIntentsDroppedAfterMatchOver(t *testing.T) {
	m := newTestMatch(knight(), knight())
	m.Over = true
	m.Intents[arena.SlotPlayer] = component.Intent{Right: true, Attack: true}

	tickPipeline().Update(m)

	assert.Equal(t, 150.0, m.Player().Pos.X)
	assert.False(t, m.Player().Attacking())
	assert.Equal(t, 1, m.Tick)
}

func TestBlockDurationAndCooldown(t *testing.T) {
	m := newTestMatch(ninja(), knight())
	sched := tickPipeline()

	blocking := 0
	for i := 0; i < 30; i++ {
		m.Intents[arena.SlotPlayer] = component.Intent{Block: i == 0}
		sched.Update(m)
		if m.Player().Blocking {
			blocking++
		}
	}
	assert.Equal(t, 30, blocking)

	m.Intents[arena.SlotPlayer] = component.Intent{}
	sched.Update(m)
	f := m.Player()
	assert.False(t, f.Blocking)
	assert.Equal(t, 30, f.BlockCooldown)

	for i := 0; i < 30; i++ {
		m.Intents[arena.SlotPlayer] = component.Intent{Block: true}
		sched.Update(m)
		assert.False(t, f.Blocking, "cooldown tick %d", i)
	}
	sched.Update(m)
	assert.True(t, f.Blocking)
}

func TestPhysicsMovement(t *testing.T) {
	t.Run("stamina_drain", func(t *testing.T) {
		m := newTestMatch(knight(), knight())
		m.Intents[arena.SlotPlayer] = component.Intent{Right: true}
		NewPhysicsSystem().Update(m)

		f := m.Player()
		assert.InDelta(t, 150+250*testDt, f.Pos.X, 1e-9)
		assert.InDelta(t, 100-25*testDt, f.Stamina, 1e-9)
		assert.Equal(t, component.FacingRight, f.Facing)
	})

	t.Run("exhausted_cannot_move", func(t *testing.T) {
		m := newTestMatch(knight(), knight())
		m.Player().Stamina = 0
		m.Intents[arena.SlotPlayer] = component.Intent{Left: true}
		NewPhysicsSystem().Update(m)

		assert.Equal(t, 150.0, m.Player().Pos.X)
		assert.Equal(t, component.FacingLeft, m.Player().Facing)
	})

	t.Run("flight_ignores_stamina", func(t *testing.T) {
		m := newTestMatch(mage(), knight())
		m.Player().Stamina = 0
		m.Intents[arena.SlotPlayer] = component.Intent{Right: true}
		NewPhysicsSystem().Update(m)

		assert.InDelta(t, 150+200*testDt, m.Player().Pos.X, 1e-9)
	})

	t.Run("drain_factor", func(t *testing.T) {
		m := newTestMatch(knight(), knight())
		m.Intents[arena.SlotOpponent] = component.Intent{Left: true}
		sys := NewPhysicsSystem()
		sys.DrainFactor[arena.SlotOpponent] = 0.5
		sys.Update(m)

		assert.InDelta(t, 100-12.5*testDt, m.Opponent().Stamina, 1e-9)
	})

	t.Run("clamped_to_arena", func(t *testing.T) {
		m := newTestMatch(knight(), knight())
		place(m, arena.SlotPlayer, 1, component.FacingLeft)
		m.Intents[arena.SlotPlayer] = component.Intent{Left: true}
		NewPhysicsSystem().Update(m)

		assert.Zero(t, m.Player().Pos.X)
	})
}

func TestDoubleJump(t *testing.T) {
	m := newTestMatch(ninja(), knight())
	sched := tickPipeline()
	f := m.Player()

	press := func(up bool) {
		m.Intents[arena.SlotPlayer] = component.Intent{Up: up}
		sched.Update(m)
	}

	press(true)
	assert.Equal(t, 1, f.JumpCount)
	assert.False(t, f.Grounded)

	press(true)
	assert.Equal(t, 1, f.JumpCount)

	press(false)
	press(true)
	assert.Equal(t, 2, f.JumpCount)
	stamina := f.Stamina

	press(false)
	press(true)
	assert.Equal(t, 2, f.JumpCount)
	assert.InDelta(t, stamina+2*20*testDt, f.Stamina, 1e-9)

	for i := 0; i < 200 && !f.Grounded; i++ {
		press(false)
	}
	assert.True(t, f.Grounded)
	assert.Zero(t, f.JumpCount)
}

func TestKnightHasNoDoubleJump(t *testing.T) {
	m := newTestMatch(knight(), knight())
	sched := tickPipeline()
	f := m.Player()

	for _, up := range []bool{true, false, true} {
		m.Intents[arena.SlotPlayer] = component.Intent{Up: up}
		sched.Update(m)
	}
	assert.Equal(t, 1, f.JumpCount)
	assert.InDelta(t, 85+2*20*testDt, f.Stamina, 1e-9)
}
