package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/common"
	"github.com/milk9111/arenaduel/component"
	"github.com/milk9111/arenaduel/engine"
	"github.com/milk9111/arenaduel/prefabs"
)

const (
	flashTicks = 8
	sparkTicks = 14
	hpEase     = 0.15
)

type spark struct {
	x, y  float64
	ttl   int
	kind  component.CombatEventType
	value float64
}

type Game struct {
	cfg   engine.Config
	eng   *engine.Engine
	input *Input
	debug bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher      *prefabs.Watcher
	reloadQueued bool

	hpShown [2]float64
	flash   [2]int
	guard   [2]int
	sparks  []spark
}

func NewGame(cfg engine.Config, debug bool) (*Game, error) {
	g := &Game{cfg: cfg, input: NewInput(), debug: debug}
	if err := g.startMatch(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) startMatch() error {
	eng, err := engine.New(g.cfg)
	if err != nil {
		return err
	}
	eng.Subscribe(g.onCombatEvent)
	g.eng = eng

	m := eng.Match()
	for _, s := range arena.Slots {
		g.hpShown[s] = m.Fighter(s).HP
		g.flash[s] = 0
		g.guard[s] = 0
	}
	g.sparks = g.sparks[:0]
	return nil
}

// rematch applies queued prefab reloads, then starts a new match.
func (g *Game) rematch() {
	if g.reloadQueued {
		g.reloadQueued = false
		if err := g.reload(); err != nil {
			log.Printf("prefab reload failed, keeping previous data: %v", err)
		}
	}
	if err := g.startMatch(); err != nil {
		log.Printf("rematch failed: %v", err)
		return
	}
	g.paused = false
}

func (g *Game) reload() error {
	profiles, err := prefabs.LoadProfiles()
	if err != nil {
		return err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	g.cfg.Profiles = profiles
	g.cfg.Tuning = tuning
	log.Printf("prefabs reloaded")
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", c.Name)
			g.reloadQueued = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) onCombatEvent(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventHit, component.EventBlocked, component.EventBlockBreak, component.EventKO:
		g.sparks = append(g.sparks, spark{x: evt.PosX, y: evt.PosY, ttl: sparkTicks, kind: evt.Type, value: evt.Damage})
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	m := g.eng.Match()
	if m.Over && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rematch()
		m = g.eng.Match()
	}

	g.eng.Step(g.input.Intent(), 1/float64(ebiten.TPS()))

	for _, s := range arena.Slots {
		f := m.Fighter(s)
		if f.ConsumeJustHit() {
			g.flash[s] = flashTicks
		}
		if f.ConsumeJustBlocked() {
			g.guard[s] = flashTicks
		}
		if g.flash[s] > 0 {
			g.flash[s]--
		}
		if g.guard[s] > 0 {
			g.guard[s]--
		}
		g.hpShown[s] = common.Lerp(g.hpShown[s], f.HP, hpEase)
	}

	kept := g.sparks[:0]
	for _, sp := range g.sparks {
		sp.ttl--
		sp.y -= 0.8
		if sp.ttl > 0 {
			kept = append(kept, sp)
		}
	}
	g.sparks = kept
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	m := g.eng.Match()
	drawArena(screen, m)
	for _, s := range arena.Slots {
		drawFighter(screen, m.Fighter(s), g.flash[s] > 0, g.guard[s] > 0, g.debug)
	}
	drawProjectiles(screen, m.Projectiles, g.debug)
	drawSparks(screen, g.sparks)
	drawHUD(screen, m, g.hpShown)
	if g.debug {
		drawDebug(screen, m)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
