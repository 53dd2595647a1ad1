package system

import (
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
)

// ComboSystem counts combo windows down.
type ComboSystem struct{}

func NewComboSystem() *ComboSystem { return &ComboSystem{} }

func (s *ComboSystem) Update(m *arena.Match) {
	if m == nil {
		return
	}
	for _, f := range m.Fighters {
		if f != nil {
			f.AdvanceCombo()
		}
	}
}

// ComboMultiplier scales swing damage by the fighter's combo position.
func ComboMultiplier(f *component.Fighter, t component.Tuning) float64 {
	idx := f.ComboIndex
	if idx > t.ComboMax {
		idx = t.ComboMax
	}
	if idx < 0 {
		idx = 0
	}
	return 1 + float64(idx)*t.ComboDamageStep
}
