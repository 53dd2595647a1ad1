package system

import (
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

// Controller produces the intent of one fighter before a tick runs.
type Controller interface {
	Decide(m *arena.Match, slot arena.Slot) component.Intent
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func(m *arena.Match, slot arena.Slot) component.Intent

func (f ControllerFunc) Decide(m *arena.Match, slot arena.Slot) component.Intent {
	return f(m, slot)
}

// Idle never asks for anything.
var Idle Controller = ControllerFunc(func(*arena.Match, arena.Slot) component.Intent {
	return component.Intent{}
})
