package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arenaduel/common"
)

// Facing is the horizontal direction a fighter looks at.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 for left and +1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// AttackPhase is the position of a fighter inside its attack timeline.
type AttackPhase int

const (
	PhaseNone AttackPhase = iota
	PhaseStartup
	PhaseActive
	PhaseRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhaseActive:
		return "active"
	case PhaseRecovery:
		return "recovery"
	}
	return "none"
}

// Fighter is one combatant's complete transient state.
//
// The hitbox is private so that it can only exist while Phase is
// PhaseActive; SetHitbox refuses it in any other phase and leaving Active
// clears it. The hurtbox is never stored here, it is derived from Pos and
// Size on demand.
type Fighter struct {
	Profile *ClassProfile

	Pos     cp.Vector
	PrevPos cp.Vector
	Size    cp.Vector
	VelY    float64
	Facing  Facing

	Grounded  bool
	JumpCount int

	HP         float64
	MaxHP      float64
	Energy     float64
	MaxEnergy  float64
	Stamina    float64
	MaxStamina float64

	Phase      AttackPhase
	PhaseTimer int
	// HasHit is set by the first connecting hit of the current swing.
	HasHit bool

	Blocking      bool
	BlockTimer    int
	BlockCooldown int

	ComboIndex  int
	ComboWindow int

	Charging bool

	swing       AttackStats
	hitbox      *common.Rect
	attackArmed bool
	blockArmed  bool
	jumpHeld    bool
	staminaUsed bool
	justHit     bool
	justBlocked bool
}

// NewFighter creates a fighter with full resources standing at (x, y).
func NewFighter(p *ClassProfile, maxEnergy, x, y float64, facing Facing) *Fighter {
	f := &Fighter{
		Profile:    p,
		Pos:        cp.Vector{X: x, Y: y},
		Size:       cp.Vector{X: p.Width, Y: p.Height},
		Facing:     facing,
		Grounded:   true,
		HP:         p.BaseHP,
		MaxHP:      p.BaseHP,
		Energy:     maxEnergy,
		MaxEnergy:  maxEnergy,
		Stamina:    p.MaxStamina,
		MaxStamina: p.MaxStamina,
	}
	f.PrevPos = f.Pos
	return f
}

// Hurtbox is the full body box at the current position.
func (f *Fighter) Hurtbox() common.Rect {
	return common.Rect{X: f.Pos.X, Y: f.Pos.Y, Width: f.Size.X, Height: f.Size.Y}
}

// Hitbox returns a copy of the active hitbox, or nil outside PhaseActive.
func (f *Fighter) Hitbox() *common.Rect {
	if f.hitbox == nil {
		return nil
	}
	r := *f.hitbox
	return &r
}

// SetHitbox installs the hitbox for the active swing. It is refused in any
// phase other than PhaseActive.
func (f *Fighter) SetHitbox(r common.Rect) bool {
	if f.Phase != PhaseActive {
		return false
	}
	f.hitbox = &r
	return true
}

// Swing returns the attack stats captured when the current swing started.
func (f *Fighter) Swing() AttackStats {
	return f.swing
}

// Attacking reports whether a swing is in progress.
func (f *Fighter) Attacking() bool {
	return f.Phase != PhaseNone
}

// Alive reports whether the fighter has hit points left.
func (f *Fighter) Alive() bool {
	return f.HP > 0
}

// CenterX returns the horizontal midpoint of the body.
func (f *Fighter) CenterX() float64 {
	return f.Hurtbox().CenterX()
}

// FaceTowards turns the fighter to look at x.
func (f *Fighter) FaceTowards(x float64) {
	switch {
	case x > f.CenterX():
		f.Facing = FacingRight
	case x < f.CenterX():
		f.Facing = FacingLeft
	}
}

// ConsumeJustHit reports whether the fighter was struck since the last call
// and clears the flag.
func (f *Fighter) ConsumeJustHit() bool {
	v := f.justHit
	f.justHit = false
	return v
}

// ConsumeJustBlocked reports whether a hit was absorbed by the guard since
// the last call and clears the flag.
func (f *Fighter) ConsumeJustBlocked() bool {
	v := f.justBlocked
	f.justBlocked = false
	return v
}

// TakeDamage removes hp, clamped at zero, and raises the hit flag.
// It returns the hp actually removed.
func (f *Fighter) TakeDamage(amount float64, blocked bool) float64 {
	if amount < 0 {
		amount = 0
	}
	before := f.HP
	f.HP = cp.Clamp(f.HP-amount, 0, f.MaxHP)
	f.justHit = true
	if blocked {
		f.justBlocked = true
	}
	return before - f.HP
}

// BreakGuard cancels an active block.
func (f *Fighter) BreakGuard(cooldownTicks int) {
	f.Blocking = false
	f.BlockTimer = 0
	f.blockArmed = false
	f.BlockCooldown = cooldownTicks
}

// GainEnergy adds energy up to MaxEnergy.
func (f *Fighter) GainEnergy(amount float64) {
	if amount <= 0 {
		return
	}
	f.Energy = cp.Clamp(f.Energy+amount, 0, f.MaxEnergy)
}

// SpendEnergy removes cost if enough energy is available.
func (f *Fighter) SpendEnergy(cost float64) bool {
	if cost < 0 || f.Energy < cost {
		return false
	}
	f.Energy = cp.Clamp(f.Energy-cost, 0, f.MaxEnergy)
	return true
}

// ShiftX moves the fighter horizontally, kept inside [0, width-Size.X].
func (f *Fighter) ShiftX(dx, arenaWidth float64) {
	f.SetX(f.Pos.X+dx, arenaWidth)
}

// SetX places the fighter horizontally, kept inside [0, width-Size.X].
func (f *Fighter) SetX(x, arenaWidth float64) {
	f.Pos.X = cp.Clamp(x, 0, arenaWidth-f.Size.X)
}
