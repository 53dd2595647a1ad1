package system

import "github.com/milk9111/arenaduel/arena"

// TrailSystem opens a tick: it clears the previous tick's events and
// snapshots each fighter's position for interpolation and motion trails.
type TrailSystem struct{}

func NewTrailSystem() *TrailSystem { return &TrailSystem{} }

func (s *TrailSystem) Update(m *arena.Match) {
	if m == nil {
		return
	}
	m.ResetEvents()
	for _, f := range m.Fighters {
		if f != nil {
			f.PrevPos = f.Pos
		}
	}
}
