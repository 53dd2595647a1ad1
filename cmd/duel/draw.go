package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/common"
	"github.com/milk9111/arenaduel/component"
)

const (
	barWidth  = 300
	barHeight = 12
	barMargin = 20
)

var archetypeColors = map[component.Archetype]color.Color{
	component.ArchetypeKnight: colornames.Steelblue,
	component.ArchetypeNinja:  colornames.Darkslategray,
	component.ArchetypeMage:   colornames.Mediumpurple,
}

func fillRect(dst *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func strokeRect(dst *ebiten.Image, r common.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, c, false)
}

func drawArena(screen *ebiten.Image, m *arena.Match) {
	screen.Fill(colornames.Midnightblue)
	floor := m.Tuning.FloorY()
	fillRect(screen, common.Rect{X: 0, Y: floor, Width: m.Tuning.ArenaWidth, Height: m.Tuning.ArenaHeight - floor}, colornames.Darkolivegreen)
}

func drawFighter(screen *ebiten.Image, f *component.Fighter, flash, guard, debug bool) {
	if f == nil {
		return
	}
	var c color.Color = colornames.Gray
	if ac, ok := archetypeColors[f.Profile.Archetype]; ok {
		c = ac
	}
	if flash {
		c = colornames.White
	}
	body := f.Hurtbox()
	if f.PrevPos != f.Pos {
		ghost := body
		ghost.X, ghost.Y = f.PrevPos.X, f.PrevPos.Y
		fillRect(screen, ghost, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x20})
	}
	fillRect(screen, body, c)

	// eye on the facing side
	eyeX := body.X + body.Width*0.7
	if f.Facing == component.FacingLeft {
		eyeX = body.X + body.Width*0.3
	}
	vector.FillCircle(screen, float32(eyeX), float32(body.Y+body.Height*0.3), 4, colornames.Gold, true)

	if f.Blocking {
		strokeRect(screen, common.Rect{X: body.X - 4, Y: body.Y - 4, Width: body.Width + 8, Height: body.Height + 8}, 3, colornames.Lightskyblue)
	}
	// absorbed hit
	if guard {
		strokeRect(screen, common.Rect{X: body.X - 8, Y: body.Y - 8, Width: body.Width + 16, Height: body.Height + 16}, 2, colornames.White)
	}
	if f.Charging {
		strokeRect(screen, common.Rect{X: body.X - 2, Y: body.Y - 2, Width: body.Width + 4, Height: body.Height + 4}, 2, colornames.Yellow)
	}
	if hb := f.Hitbox(); hb != nil && !debug {
		fillRect(screen, *hb, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60})
	}
}

func drawProjectiles(screen *ebiten.Image, ps []*component.Projectile, debug bool) {
	for _, p := range ps {
		box := p.Box()
		fillRect(screen, box, colornames.Orange)
		if debug {
			strokeRect(screen, box, 1, colornames.Red)
		}
	}
}

func drawSparks(screen *ebiten.Image, sparks []spark) {
	for _, sp := range sparks {
		label := fmt.Sprintf("%.0f", sp.value)
		switch sp.kind {
		case component.EventBlocked:
			label = "block " + label
		case component.EventBlockBreak:
			label = "BREAK " + label
		case component.EventKO:
			label = "K.O."
		}
		ebitenutil.DebugPrintAt(screen, label, int(sp.x)-12, int(sp.y)-20)
	}
}

func drawBar(screen *ebiten.Image, x, y, frac float64, fill color.Color, rightToLeft bool) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	fillRect(screen, common.Rect{X: x, Y: y, Width: barWidth, Height: barHeight}, colornames.Dimgray)
	w := barWidth * frac
	fx := x
	if rightToLeft {
		fx = x + barWidth - w
	}
	fillRect(screen, common.Rect{X: fx, Y: y, Width: w, Height: barHeight}, fill)
	strokeRect(screen, common.Rect{X: x, Y: y, Width: barWidth, Height: barHeight}, 1, colornames.Black)
}

func drawHUD(screen *ebiten.Image, m *arena.Match, hpShown [2]float64) {
	for _, s := range arena.Slots {
		f := m.Fighter(s)
		x := float64(barMargin)
		rtl := false
		if s == arena.SlotOpponent {
			x = m.Tuning.ArenaWidth - barMargin - barWidth
			rtl = true
		}
		drawBar(screen, x, barMargin, hpShown[s]/f.MaxHP, colornames.Crimson, rtl)
		drawBar(screen, x, barMargin+barHeight+4, f.Energy/f.MaxEnergy, colornames.Deepskyblue, rtl)
		if f.Profile.Movement.StaminaMovement {
			drawBar(screen, x, barMargin+2*(barHeight+4), f.Stamina/f.MaxStamina, colornames.Limegreen, rtl)
		}
		label := fmt.Sprintf("%s  %.0f/%.0f", f.Profile.Archetype, f.HP, f.MaxHP)
		if f.ComboIndex > 0 {
			label += fmt.Sprintf("  combo x%d", f.ComboIndex+1)
		}
		ebitenutil.DebugPrintAt(screen, label, int(x), barMargin+3*(barHeight+4))
	}

	if m.Over {
		msg := fmt.Sprintf("%s wins - press R for a rematch", m.Winner)
		if m.Draw {
			msg = "double K.O. - press R for a rematch"
		}
		ebitenutil.DebugPrintAt(screen, msg, int(m.Tuning.ArenaWidth/2)-120, int(m.Tuning.ArenaHeight/2)-40)
	}
}

func drawDebug(screen *ebiten.Image, m *arena.Match) {
	for _, s := range arena.Slots {
		strokeRect(screen, *m.Hurtbox(s), 1, colornames.Lime)
		if hb := m.Fighter(s).Hitbox(); hb != nil {
			fillRect(screen, *hb, color.NRGBA{R: 0xff, A: 0x40})
			strokeRect(screen, *hb, 1, colornames.Red)
		}
	}
	p := m.Player()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  fps %.1f  phase %s/%d  block %d cd %d  proj %d",
		m.Tick, ebiten.ActualFPS(), p.Phase, p.PhaseTimer, p.BlockTimer, p.BlockCooldown, len(m.Projectiles)),
		barMargin, int(m.Tuning.ArenaHeight)-20)
}
