package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

const dt = 1.0 / 60

func newEngine(t *testing.T, player, opponent component.Archetype) *Engine {
	t.Helper()
	cfg, err := DefaultConfig(player, opponent)
	require.NoError(t, err)
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestNewRejectsMissingProfile(t *testing.T) {
	cfg, err := DefaultConfig(component.ArchetypeKnight, component.ArchetypeMage)
	require.NoError(t, err)
	delete(cfg.Profiles, component.ArchetypeMage)

	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrMissingProfile)
}

func TestNewRejectsUnknownArchetype(t *testing.T) {
	cfg, err := DefaultConfig(component.ArchetypeKnight, component.ArchetypeMage)
	require.NoError(t, err)

	for _, bad := range []component.Archetype{-1, component.Archetype(len(component.Archetypes()))} {
		c := cfg
		c.Opponent = bad
		_, err = New(c)
		assert.ErrorIs(t, err, ErrUnknownArchetype)

		c = cfg
		c.Player = bad
		_, err = New(c)
		assert.ErrorIs(t, err, ErrUnknownArchetype)
	}
}

func TestNewRejectsUnknownScript(t *testing.T) {
	cfg, err := DefaultConfig(component.ArchetypeKnight, component.ArchetypeMage)
	require.NoError(t, err)
	cfg.OpponentScript = "does_not_exist"

	_, err = New(cfg)
	assert.Error(t, err)
}

func TestStepClampsDelta(t *testing.T) {
	e := newEngine(t, component.ArchetypeKnight, component.ArchetypeNinja)
	maxDelta := e.Match().Tuning.MaxDelta

	m := e.Step(component.Intent{}, 5)
	assert.Equal(t, maxDelta, m.Dt)
	assert.Equal(t, 1, m.Tick)

	m = e.Step(component.Intent{}, -1)
	assert.Zero(t, m.Dt)
	assert.Equal(t, 2, m.Tick)
	assert.InDelta(t, maxDelta, m.Elapsed, 1e-12)
}

func TestFightersStartWithFullResources(t *testing.T) {
	e := newEngine(t, component.ArchetypeMage, component.ArchetypeKnight)
	m := e.Match()

	for _, slot := range arena.Slots {
		f := m.Fighter(slot)
		assert.Equal(t, f.MaxHP, f.HP, slot.String())
		assert.Equal(t, f.MaxStamina, f.Stamina, slot.String())
		assert.Equal(t, f.MaxEnergy, f.Energy, slot.String())
	}

	var attacks int
	e.Subscribe(func(evt component.CombatEvent) {
		if evt.Type == component.EventAttack && evt.AttackerID == int(arena.SlotPlayer) {
			attacks++
		}
	})

	cost := m.Player().Profile.Attack.EnergyCost
	require.Positive(t, cost)

	e.Step(component.Intent{Attack: true}, dt)
	assert.True(t, m.Player().Attacking())
	assert.Equal(t, 1, attacks)
	assert.InDelta(t, m.Player().MaxEnergy-cost, m.Player().Energy, 1e-9)
}

func TestResourcesStayInBounds(t *testing.T) {
	for _, pair := range [][2]component.Archetype{
		{component.ArchetypeKnight, component.ArchetypeNinja},
		{component.ArchetypeNinja, component.ArchetypeMage},
		{component.ArchetypeMage, component.ArchetypeKnight},
	} {
		t.Run(pair[0].String()+"_vs_"+pair[1].String(), func(t *testing.T) {
			e := newEngine(t, pair[0], pair[1])
			rng := rand.New(rand.NewSource(7))

			for i := 0; i < 3000; i++ {
				in := component.Intent{
					Left:   rng.Intn(3) == 0,
					Right:  rng.Intn(2) == 0,
					Up:     rng.Intn(4) == 0,
					Down:   rng.Intn(6) == 0,
					Attack: rng.Intn(5) == 0,
					Block:  rng.Intn(12) == 0,
					Skill:  rng.Intn(20) == 0,
					Charge: rng.Intn(3) == 0,
				}
				m := e.Step(in, dt)

				for _, slot := range arena.Slots {
					f := m.Fighter(slot)
					require.GreaterOrEqual(t, f.HP, 0.0)
					require.LessOrEqual(t, f.HP, f.MaxHP)
					require.GreaterOrEqual(t, f.Energy, 0.0)
					require.LessOrEqual(t, f.Energy, 10.0)
					require.GreaterOrEqual(t, f.Stamina, 0.0)
					require.LessOrEqual(t, f.Stamina, f.MaxStamina)
					require.GreaterOrEqual(t, f.Pos.X, 0.0)
					require.LessOrEqual(t, f.Pos.X, m.Tuning.ArenaWidth-f.Size.X)
					require.LessOrEqual(t, f.Pos.Y, m.Tuning.FloorY()-f.Size.Y)
					require.Equal(t, f.Phase == component.PhaseActive, f.Hitbox() != nil, "tick %d slot %s", m.Tick, slot)
					require.GreaterOrEqual(t, f.BlockCooldown, 0)
				}
			}
		})
	}
}

func TestKnockoutEndsMatchOnce(t *testing.T) {
	cfg, err := DefaultConfig(component.ArchetypeKnight, component.ArchetypeKnight)
	require.NoError(t, err)
	cfg.Tuning.AISkillChance = 0
	e, err := New(cfg)
	require.NoError(t, err)

	var kos int
	e.Subscribe(func(evt component.CombatEvent) {
		if evt.Type == component.EventKO {
			kos++
		}
	})

	m := e.Match()
	m.Opponent().HP = 1

	for i := 0; i < 600 && !m.Over; i++ {
		e.Step(component.Intent{Right: true, Attack: true}, dt)
	}
	require.True(t, m.Over)
	assert.False(t, m.Draw)
	assert.Equal(t, arena.SlotPlayer, m.Winner)

	tick := m.Tick
	for i := 0; i < 60; i++ {
		e.Step(component.Intent{Attack: true, Skill: true}, dt)
	}
	assert.Equal(t, tick+60, m.Tick)
	assert.False(t, m.Player().Attacking())
	assert.False(t, m.Opponent().Attacking())
	assert.Equal(t, 1, kos)
}

func TestResetStartsFreshMatch(t *testing.T) {
	e := newEngine(t, component.ArchetypeMage, component.ArchetypeKnight)
	for i := 0; i < 30; i++ {
		e.Step(component.Intent{Right: true}, dt)
	}
	old := e.Match()
	require.NoError(t, e.Reset())

	m := e.Match()
	assert.NotSame(t, old, m)
	assert.Zero(t, m.Tick)
	assert.Equal(t, float64(arena.SpawnInset), m.Player().Pos.X)
}

func TestScriptedOpponent(t *testing.T) {
	cfg, err := DefaultConfig(component.ArchetypeKnight, component.ArchetypeNinja)
	require.NoError(t, err)
	cfg.OpponentScript = "rush"
	e, err := New(cfg)
	require.NoError(t, err)

	start := e.Match().Opponent().Pos.X
	for i := 0; i < 10; i++ {
		e.Step(component.Intent{}, dt)
	}
	assert.Less(t, e.Match().Opponent().Pos.X, start)
}
