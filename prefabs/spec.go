package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/arenaduel/component"
)

const (
	TuningFile  = "arena.yaml"
	ClassesFile = "classes.yaml"
)

var (
	ErrUnknownArchetype   = errors.New("prefabs: unknown archetype")
	ErrDuplicateArchetype = errors.New("prefabs: duplicate archetype")
	ErrMissingArchetype   = errors.New("prefabs: missing archetype")
	ErrInvalidProfile     = errors.New("prefabs: invalid profile")
	ErrInvalidTuning      = errors.New("prefabs: invalid tuning")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TuningSpec struct {
	Arena struct {
		Width        float64 `yaml:"width"`
		Height       float64 `yaml:"height"`
		GroundHeight float64 `yaml:"ground_height"`
	} `yaml:"arena"`
	Physics struct {
		Gravity         float64 `yaml:"gravity"`
		JumpImpulse     float64 `yaml:"jump_impulse"`
		JumpStaminaCost float64 `yaml:"jump_stamina_cost"`
		FlightLift      float64 `yaml:"flight_lift"`
		FlightFallAccel float64 `yaml:"flight_fall_accel"`
		FlightMaxFall   float64 `yaml:"flight_max_fall"`
	} `yaml:"physics"`
	Resources struct {
		EnergyMax    float64 `yaml:"energy_max"`
		ChargeRate   float64 `yaml:"charge_rate"`
		StaminaRegen float64 `yaml:"stamina_regen"`
		StaminaDrain float64 `yaml:"stamina_drain"`
	} `yaml:"resources"`
	Combat struct {
		BlockCooldownTicks   int     `yaml:"block_cooldown_ticks"`
		ComboWindowTicks     int     `yaml:"combo_window_ticks"`
		ComboMax             int     `yaml:"combo_max"`
		ComboDamageStep      float64 `yaml:"combo_damage_step"`
		SkillBlockMultiplier float64 `yaml:"skill_block_multiplier"`
		ProjectileMargin     float64 `yaml:"projectile_margin"`
		RepositionGap        float64 `yaml:"reposition_gap"`
		MaxDelta             float64 `yaml:"max_delta"`
	} `yaml:"combat"`
	AI struct {
		ApproachDistance float64 `yaml:"approach_distance"`
		AttackDistance   float64 `yaml:"attack_distance"`
		StaminaFactor    float64 `yaml:"stamina_factor"`
		SkillChance      float64 `yaml:"skill_chance"`
		EnergyRegen      float64 `yaml:"energy_regen"`
	} `yaml:"ai"`
}

// Tuning converts the spec into validated match tuning.
func (s TuningSpec) Tuning() (component.Tuning, error) {
	t := component.Tuning{
		ArenaWidth:           s.Arena.Width,
		ArenaHeight:          s.Arena.Height,
		GroundHeight:         s.Arena.GroundHeight,
		Gravity:              s.Physics.Gravity,
		JumpImpulse:          s.Physics.JumpImpulse,
		JumpStaminaCost:      s.Physics.JumpStaminaCost,
		FlightLift:           s.Physics.FlightLift,
		FlightFallAccel:      s.Physics.FlightFallAccel,
		FlightMaxFall:        s.Physics.FlightMaxFall,
		EnergyMax:            s.Resources.EnergyMax,
		ChargeRate:           s.Resources.ChargeRate,
		StaminaRegen:         s.Resources.StaminaRegen,
		StaminaDrain:         s.Resources.StaminaDrain,
		BlockCooldownTicks:   s.Combat.BlockCooldownTicks,
		ComboWindowTicks:     s.Combat.ComboWindowTicks,
		ComboMax:             s.Combat.ComboMax,
		ComboDamageStep:      s.Combat.ComboDamageStep,
		SkillBlockMultiplier: s.Combat.SkillBlockMultiplier,
		ProjectileMargin:     s.Combat.ProjectileMargin,
		RepositionGap:        s.Combat.RepositionGap,
		MaxDelta:             s.Combat.MaxDelta,
		AIApproachDistance:   s.AI.ApproachDistance,
		AIAttackDistance:     s.AI.AttackDistance,
		AIStaminaFactor:      s.AI.StaminaFactor,
		AISkillChance:        s.AI.SkillChance,
		AIEnergyRegen:        s.AI.EnergyRegen,
	}

	switch {
	case t.ArenaWidth <= 0 || t.ArenaHeight <= 0:
		return t, fmt.Errorf("%w: arena size must be positive", ErrInvalidTuning)
	case t.GroundHeight < 0 || t.GroundHeight >= t.ArenaHeight:
		return t, fmt.Errorf("%w: ground_height %v outside arena", ErrInvalidTuning, t.GroundHeight)
	case t.EnergyMax <= 0:
		return t, fmt.Errorf("%w: energy_max must be positive", ErrInvalidTuning)
	case t.SkillBlockMultiplier <= 0:
		return t, fmt.Errorf("%w: skill_block_multiplier must be positive", ErrInvalidTuning)
	case t.BlockCooldownTicks < 0 || t.ComboWindowTicks < 0 || t.ComboMax < 0:
		return t, fmt.Errorf("%w: tick counts must not be negative", ErrInvalidTuning)
	case t.AISkillChance < 0 || t.AISkillChance > 1:
		return t, fmt.Errorf("%w: skill_chance %v outside [0,1]", ErrInvalidTuning, t.AISkillChance)
	}
	return t, nil
}

// ArchetypeName decodes an archetype scalar.
type ArchetypeName struct {
	component.Archetype
}

func (a *ArchetypeName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("archetype must be a string")
	}
	v, ok := component.ParseArchetype(value.Value)
	if !ok {
		return fmt.Errorf("%w: %q (line %d)", ErrUnknownArchetype, value.Value, value.Line)
	}
	a.Archetype = v
	return nil
}

// SkillEffectName decodes a skill effect scalar.
type SkillEffectName struct {
	component.SkillEffect
}

func (s *SkillEffectName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("skill effect must be a string")
	}
	v, ok := component.ParseSkillEffect(value.Value)
	if !ok {
		return fmt.Errorf("%w: unknown skill effect %q (line %d)", ErrInvalidProfile, value.Value, value.Line)
	}
	s.SkillEffect = v
	return nil
}

// MovementStyleName decodes a movement style scalar.
type MovementStyleName struct {
	component.MovementStyle
}

func (m *MovementStyleName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("movement style must be a string")
	}
	v, ok := component.ParseMovementStyle(value.Value)
	if !ok {
		return fmt.Errorf("%w: unknown movement style %q (line %d)", ErrInvalidProfile, value.Value, value.Line)
	}
	m.MovementStyle = v
	return nil
}

type ClassTableSpec struct {
	Classes []ClassSpec `yaml:"classes"`
}

type ClassSpec struct {
	Archetype ArchetypeName `yaml:"archetype"`
	MoveSpeed float64       `yaml:"move_speed"`
	HP        float64       `yaml:"hp"`
	Stamina   float64       `yaml:"stamina"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Movement  MovementSpec  `yaml:"movement"`
	Block     BlockSpec     `yaml:"block"`
	Attack    AttackSpec    `yaml:"attack"`
	Skill     SkillSpec     `yaml:"skill"`
}

type MovementSpec struct {
	Style           MovementStyleName `yaml:"style"`
	DoubleJump      bool              `yaml:"double_jump"`
	StaminaMovement bool              `yaml:"stamina_movement"`
}

type BlockSpec struct {
	DurationTicks int     `yaml:"duration_ticks"`
	Mitigation    float64 `yaml:"mitigation"`
}

type AttackSpec struct {
	Range         float64 `yaml:"range"`
	Damage        float64 `yaml:"damage"`
	StartupTicks  int     `yaml:"startup_ticks"`
	ActiveTicks   int     `yaml:"active_ticks"`
	RecoveryTicks int     `yaml:"recovery_ticks"`
	Knockback     float64 `yaml:"knockback"`
	SmashVelocity float64 `yaml:"smash_velocity"`
	EnergyCost    float64 `yaml:"energy_cost"`
	EnergyOnHit   float64 `yaml:"energy_on_hit"`
}

type SkillSpec struct {
	Effect           SkillEffectName `yaml:"effect"`
	EnergyCost       float64         `yaml:"energy_cost"`
	DashDistance     float64         `yaml:"dash_distance"`
	ProjectileSpeed  float64         `yaml:"projectile_speed"`
	ProjectileDamage float64         `yaml:"projectile_damage"`
	ProjectileWidth  float64         `yaml:"projectile_width"`
	ProjectileHeight float64         `yaml:"projectile_height"`
}

// Profile converts one class spec into a validated profile.
func (c ClassSpec) Profile() (*component.ClassProfile, error) {
	p := &component.ClassProfile{
		Archetype:  c.Archetype.Archetype,
		MoveSpeed:  c.MoveSpeed,
		BaseHP:     c.HP,
		MaxStamina: c.Stamina,
		Width:      c.Width,
		Height:     c.Height,
		Movement: component.MovementStats{
			Style:           c.Movement.Style.MovementStyle,
			DoubleJump:      c.Movement.DoubleJump,
			StaminaMovement: c.Movement.StaminaMovement,
		},
		Block: component.BlockStats{
			DurationTicks: c.Block.DurationTicks,
			Mitigation:    c.Block.Mitigation,
		},
		Attack: component.AttackStats{
			Range:         c.Attack.Range,
			Damage:        c.Attack.Damage,
			StartupTicks:  c.Attack.StartupTicks,
			ActiveTicks:   c.Attack.ActiveTicks,
			RecoveryTicks: c.Attack.RecoveryTicks,
			Knockback:     c.Attack.Knockback,
			SmashVelocity: c.Attack.SmashVelocity,
			EnergyCost:    c.Attack.EnergyCost,
			EnergyOnHit:   c.Attack.EnergyOnHit,
		},
		Skill: component.SkillStats{
			Effect:           c.Skill.Effect.SkillEffect,
			EnergyCost:       c.Skill.EnergyCost,
			DashDistance:     c.Skill.DashDistance,
			ProjectileSpeed:  c.Skill.ProjectileSpeed,
			ProjectileDamage: c.Skill.ProjectileDamage,
			ProjectileWidth:  c.Skill.ProjectileWidth,
			ProjectileHeight: c.Skill.ProjectileHeight,
		},
	}

	name := p.Archetype.String()
	switch {
	case p.BaseHP <= 0:
		return nil, fmt.Errorf("%w: %s: hp must be positive", ErrInvalidProfile, name)
	case p.Width <= 0 || p.Height <= 0:
		return nil, fmt.Errorf("%w: %s: body size must be positive", ErrInvalidProfile, name)
	case p.MoveSpeed < 0 || p.MaxStamina < 0:
		return nil, fmt.Errorf("%w: %s: speed and stamina must not be negative", ErrInvalidProfile, name)
	case p.Block.DurationTicks < 0 || p.Block.Mitigation < 0 || p.Block.Mitigation > 1:
		return nil, fmt.Errorf("%w: %s: block mitigation must be in [0,1]", ErrInvalidProfile, name)
	case p.Attack.StartupTicks < 0 || p.Attack.ActiveTicks < 0 || p.Attack.RecoveryTicks < 0:
		return nil, fmt.Errorf("%w: %s: attack phases must not be negative", ErrInvalidProfile, name)
	case p.Attack.Range <= 0:
		return nil, fmt.Errorf("%w: %s: attack range must be positive", ErrInvalidProfile, name)
	case p.Attack.Damage < 0:
		return nil, fmt.Errorf("%w: %s: attack damage must not be negative", ErrInvalidProfile, name)
	case p.Attack.EnergyCost < 0 || p.Attack.EnergyOnHit < 0:
		return nil, fmt.Errorf("%w: %s: attack energy must not be negative", ErrInvalidProfile, name)
	case p.Skill.Effect == component.SkillNone:
		return nil, fmt.Errorf("%w: %s: skill effect is required", ErrInvalidProfile, name)
	case p.Skill.EnergyCost < 0:
		return nil, fmt.Errorf("%w: %s: skill cost must not be negative", ErrInvalidProfile, name)
	case p.Skill.Effect == component.SkillDash && p.Skill.DashDistance <= 0:
		return nil, fmt.Errorf("%w: %s: dash_distance must be positive", ErrInvalidProfile, name)
	case p.Skill.Effect == component.SkillProjectile &&
		(p.Skill.ProjectileSpeed <= 0 || p.Skill.ProjectileWidth <= 0 || p.Skill.ProjectileHeight <= 0):
		return nil, fmt.Errorf("%w: %s: projectile speed and size must be positive", ErrInvalidProfile, name)
	}
	return p, nil
}

// Profiles builds the full table, requiring every archetype exactly once.
func (s ClassTableSpec) Profiles() (component.ProfileTable, error) {
	table := make(component.ProfileTable, len(s.Classes))
	for _, c := range s.Classes {
		if _, dup := table[c.Archetype.Archetype]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArchetype, c.Archetype.Archetype)
		}
		p, err := c.Profile()
		if err != nil {
			return nil, err
		}
		table[p.Archetype] = p
	}
	for _, a := range component.Archetypes() {
		if table[a] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingArchetype, a)
		}
	}
	return table, nil
}

// LoadTuning reads and validates arena.yaml.
func LoadTuning() (component.Tuning, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return component.Tuning{}, err
	}
	return spec.Tuning()
}

// LoadProfiles reads and validates classes.yaml.
func LoadProfiles() (component.ProfileTable, error) {
	spec, err := LoadSpec[ClassTableSpec](ClassesFile)
	if err != nil {
		return nil, err
	}
	table, err := spec.Profiles()
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", ClassesFile, err)
	}
	return table, nil
}

// ParseProfiles decodes a class table from raw YAML.
func ParseProfiles(data []byte) (component.ProfileTable, error) {
	var spec ClassTableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal classes: %w", err)
	}
	return spec.Profiles()
}
