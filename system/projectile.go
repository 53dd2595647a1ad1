package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/common"
	"github.com/milk9111/arenaduel/component"
)

// ProjectileSystem advances projectiles, lands hits on the non-owner and
// drops projectiles that leave the arena.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(m *arena.Match) {
	if m == nil || len(m.Projectiles) == 0 {
		return
	}

	kept := m.Projectiles[:0]
	for _, p := range m.Projectiles {
		if p == nil {
			continue
		}
		p.Advance(m.Dt)

		owner := arena.Slot(p.Owner)
		box := p.Box()
		if common.Overlaps(&box, m.Hurtbox(owner.Other())) {
			ApplyDamage(m, owner.Other(), owner, p.Damage, true)
			continue
		}
		if p.OutOf(m.Bounds, m.Tuning.ProjectileMargin) {
			m.Emit(component.CombatEvent{
				Type:       component.EventProjectileExpired,
				AttackerID: p.Owner,
				TargetID:   -1,
				Skill:      component.SkillProjectile,
				PosX:       p.Pos.X,
				PosY:       p.Pos.Y,
			})
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(m.Projectiles); i++ {
		m.Projectiles[i] = nil
	}
	m.Projectiles = kept
}

// spawnProjectile launches one projectile from the front edge of slot's
// fighter, travelling the way it faces.
func spawnProjectile(m *arena.Match, slot arena.Slot) {
	f := m.Fighter(slot)
	sk := f.Profile.Skill
	size := cp.Vector{X: sk.ProjectileWidth, Y: sk.ProjectileHeight}

	x := f.Pos.X + f.Size.X
	if f.Facing == component.FacingLeft {
		x = f.Pos.X - size.X
	}
	p := &component.Projectile{
		Pos:            cp.Vector{X: x, Y: f.Pos.Y + f.Size.Y/2 - size.Y/2},
		Size:           size,
		VelX:           f.Facing.Sign() * sk.ProjectileSpeed,
		Damage:         sk.ProjectileDamage,
		Owner:          int(slot),
		OwnerArchetype: f.Profile.Archetype,
	}
	m.Projectiles = append(m.Projectiles, p)
	m.Emit(component.CombatEvent{
		Type:       component.EventProjectileSpawn,
		AttackerID: int(slot),
		TargetID:   int(slot.Other()),
		Skill:      component.SkillProjectile,
		PosX:       p.Pos.X,
		PosY:       p.Pos.Y,
	})
}
