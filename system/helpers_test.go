package system

import (
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

const testDt = 1.0 / 60

func testTuning() component.Tuning {
	return component.Tuning{
		ArenaWidth:           960,
		ArenaHeight:          540,
		GroundHeight:         100,
		Gravity:              1800,
		JumpImpulse:          720,
		JumpStaminaCost:      15,
		StaminaRegen:         20,
		StaminaDrain:         25,
		EnergyMax:            10,
		ChargeRate:           0.05,
		BlockCooldownTicks:   30,
		ComboWindowTicks:     30,
		ComboMax:             3,
		ComboDamageStep:      0.1,
		SkillBlockMultiplier: 1.5,
		ProjectileMargin:     50,
		FlightLift:           260,
		FlightFallAccel:      300,
		FlightMaxFall:        180,
		RepositionGap:        8,
		MaxDelta:             0.1,
		AIApproachDistance:   70,
		AIAttackDistance:     90,
		AIStaminaFactor:      0.5,
		AISkillChance:        0.01,
		AIEnergyRegen:        0.5,
	}
}

func knight() *component.ClassProfile {
	return &component.ClassProfile{
		Archetype:  component.ArchetypeKnight,
		MoveSpeed:  250,
		BaseHP:     120,
		MaxStamina: 100,
		Width:      64,
		Height:     64,
		Block:      component.BlockStats{DurationTicks: 45, Mitigation: 0.6},
		Attack: component.AttackStats{
			Range: 45, Damage: 10,
			StartupTicks: 6, ActiveTicks: 4, RecoveryTicks: 10,
			Knockback: 20, SmashVelocity: 900, EnergyOnHit: 1,
		},
		Skill:    component.SkillStats{Effect: component.SkillDash, EnergyCost: 4, DashDistance: 140},
		Movement: component.MovementStats{Style: component.MovementGround, StaminaMovement: true},
	}
}

func ninja() *component.ClassProfile {
	return &component.ClassProfile{
		Archetype:  component.ArchetypeNinja,
		MoveSpeed:  300,
		BaseHP:     100,
		MaxStamina: 100,
		Width:      64,
		Height:     64,
		Block:      component.BlockStats{DurationTicks: 30, Mitigation: 0.5},
		Attack: component.AttackStats{
			Range: 40, Damage: 8,
			StartupTicks: 4, ActiveTicks: 3, RecoveryTicks: 8,
			Knockback: 10, EnergyOnHit: 0.5,
		},
		Skill:    component.SkillStats{Effect: component.SkillReposition, EnergyCost: 5},
		Movement: component.MovementStats{Style: component.MovementGround, DoubleJump: true, StaminaMovement: true},
	}
}

func mage() *component.ClassProfile {
	return &component.ClassProfile{
		Archetype:  component.ArchetypeMage,
		MoveSpeed:  200,
		BaseHP:     90,
		MaxStamina: 100,
		Width:      64,
		Height:     64,
		Block:      component.BlockStats{DurationTicks: 40, Mitigation: 0.4},
		Attack: component.AttackStats{
			Range: 50, Damage: 7,
			StartupTicks: 8, ActiveTicks: 4, RecoveryTicks: 12,
			EnergyCost: 0.5, EnergyOnHit: 0.5,
		},
		Skill: component.SkillStats{
			Effect: component.SkillProjectile, EnergyCost: 3,
			ProjectileSpeed: 480, ProjectileDamage: 12,
			ProjectileWidth: 20, ProjectileHeight: 12,
		},
		Movement: component.MovementStats{Style: component.MovementFlight},
	}
}

func newTestMatch(player, opponent *component.ClassProfile) *arena.Match {
	m := arena.NewMatch(testTuning(), player, opponent)
	m.Dt = testDt
	return m
}

// tickPipeline mirrors the engine's fixed system order with both slots
// driven straight from m.Intents.
func tickPipeline() *arena.Scheduler {
	return arena.NewScheduler(
		NewTrailSystem(),
		NewPhysicsSystem(),
		NewIntentSystem(arena.SlotPlayer),
		NewIntentSystem(arena.SlotOpponent),
		NewStateSystem(),
		NewComboSystem(),
		NewHurtboxSystem(),
		NewHitboxSystem(),
		NewCombatSystem(),
		NewProjectileSystem(),
		NewMatchOverSystem(),
	)
}

// place moves a fighter and refreshes its hurtbox.
func place(m *arena.Match, slot arena.Slot, x float64, facing component.Facing) {
	f := m.Fighter(slot)
	f.Pos.X = x
	f.PrevPos = f.Pos
	f.Facing = facing
	m.SyncHurtbox(slot)
}

func countEvents(evts []component.CombatEvent, typ component.CombatEventType) int {
	n := 0
	for _, e := range evts {
		if e.Type == typ {
			n++
		}
	}
	return n
}
