package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
	"github.com/milk9111/arenaduel/prefabs"
)

// ScriptedIntent drives a fighter from a tengo script. The script defines
//
//	decide := func(me, foe, state) { ... }
//
// returning a map with any of left, right, up, down, attack, block, skill
// and charge set to true. state persists between ticks.
type ScriptedIntent struct {
	Name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

const scriptDispatch = `
__intent = decide(__me, __foe, __state)
`

// NewScriptedIntent compiles src. name is only used in errors and logs.
func NewScriptedIntent(name, src string) (*ScriptedIntent, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("script %q: empty source", name)
	}
	script := tengo.NewScript([]byte(src + "\n" + scriptDispatch))
	_ = script.Add("__me", map[string]any{})
	_ = script.Add("__foe", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__intent", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", name, err)
	}
	return &ScriptedIntent{
		Name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// LoadScriptedIntent compiles a script from prefabs/scripts.
func LoadScriptedIntent(name string) (*ScriptedIntent, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return NewScriptedIntent(name, string(src))
}

// Decide runs the script for slot. A failing script yields an empty
// intent for the tick.
func (s *ScriptedIntent) Decide(m *arena.Match, slot arena.Slot) component.Intent {
	if s == nil || s.compiled == nil || m == nil || m.Over {
		return component.Intent{}
	}
	me, foe := m.Fighter(slot), m.Fighter(slot.Other())
	if me == nil || foe == nil {
		return component.Intent{}
	}

	if err := s.run(fighterView(me, m.Tick), fighterView(foe, m.Tick)); err != nil {
		log.Printf("script: %s slot=%s tick=%d: %v", s.Name, slot, m.Tick, err)
		return component.Intent{}
	}
	return intentFromMap(s.compiled.Get("__intent").Map())
}

func (s *ScriptedIntent) run(me, foe map[string]any) error {
	if err := s.compiled.Set("__me", me); err != nil {
		return err
	}
	if err := s.compiled.Set("__foe", foe); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	return s.compiled.Run()
}

func fighterView(f *component.Fighter, tick int) map[string]any {
	return map[string]any{
		"x":          f.Pos.X,
		"y":          f.Pos.Y,
		"width":      f.Size.X,
		"height":     f.Size.Y,
		"vel_y":      f.VelY,
		"hp":         f.HP,
		"max_hp":     f.MaxHP,
		"energy":     f.Energy,
		"stamina":    f.Stamina,
		"facing":     int(f.Facing),
		"grounded":   f.Grounded,
		"blocking":   f.Blocking,
		"attacking":  f.Attacking(),
		"phase":      f.Phase.String(),
		"combo":      f.ComboIndex,
		"skill_cost": f.Profile.Skill.EnergyCost,
		"archetype":  f.Profile.Archetype.String(),
		"flight":     f.Profile.Movement.Style == component.MovementFlight,
		"tick":       tick,
	}
}

func intentFromMap(v map[string]any) component.Intent {
	flag := func(k string) bool {
		b, _ := v[k].(bool)
		return b
	}
	return component.Intent{
		Left:   flag("left"),
		Right:  flag("right"),
		Up:     flag("up"),
		Down:   flag("down"),
		Attack: flag("attack"),
		Block:  flag("block"),
		Skill:  flag("skill"),
		Charge: flag("charge"),
	}
}
