package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arenaduel/common"
)

// Projectile is an independent hit volume launched by a skill.
type Projectile struct {
	Pos            cp.Vector
	Size           cp.Vector
	VelX           float64
	Damage         float64
	Owner          int
	OwnerArchetype Archetype
}

// Box returns the projectile's collision rectangle.
func (p *Projectile) Box() common.Rect {
	return common.Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.Size.X, Height: p.Size.Y}
}

// Advance moves the projectile horizontally for dt seconds.
func (p *Projectile) Advance(dt float64) {
	p.Pos.X += p.VelX * dt
}

// OutOf reports whether the projectile has left bounds by more than margin.
func (p *Projectile) OutOf(bounds common.Rect, margin float64) bool {
	return p.Pos.X+p.Size.X < bounds.X-margin || p.Pos.X > bounds.Right()+margin
}
