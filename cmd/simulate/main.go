// Command simulate runs a headless match with the player driven by a
// script and reports the outcome.
package main

import (
	"flag"
	"log"

	"github.com/milk9111/arenaduel/arena"
	"github.com/milk9111/arenaduel/component"
	"github.com/milk9111/arenaduel/engine"
	"github.com/milk9111/arenaduel/prefabs"
	"github.com/milk9111/arenaduel/system"
)

func main() {
	playerName := flag.String("player", "knight", "player archetype (knight, ninja, mage)")
	opponentName := flag.String("opponent", "ninja", "opponent archetype (knight, ninja, mage)")
	script := flag.String("script", "rush", "player script in prefabs/scripts")
	opponentScript := flag.String("opponent-script", "", "opponent script; empty uses the built-in AI")
	ticks := flag.Int("ticks", 60*90, "maximum ticks to simulate")
	seed := flag.Int64("seed", 1, "seed for the opponent AI")
	fps := flag.Float64("fps", 60, "simulated frames per second")
	verbose := flag.Bool("v", false, "log every combat event")
	dir := flag.String("prefabs", prefabs.Dir, "directory whose prefab files override the embedded ones")
	flag.Parse()

	prefabs.Dir = *dir
	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %v", *fps)
	}

	player, ok := component.ParseArchetype(*playerName)
	if !ok {
		log.Fatalf("unknown player archetype %q", *playerName)
	}
	opponent, ok := component.ParseArchetype(*opponentName)
	if !ok {
		log.Fatalf("unknown opponent archetype %q", *opponentName)
	}

	cfg, err := engine.DefaultConfig(player, opponent)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Seed = *seed
	cfg.OpponentScript = *opponentScript

	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	driver, err := system.LoadScriptedIntent(*script)
	if err != nil {
		log.Fatal(err)
	}

	stats := map[component.CombatEventType]int{}
	eng.Subscribe(func(evt component.CombatEvent) {
		stats[evt.Type]++
		if *verbose {
			log.Printf("simulate: tick=%d %s attacker=%d target=%d damage=%.2f", evt.Tick, evt.Type, evt.AttackerID, evt.TargetID, evt.Damage)
		}
	})

	dt := 1 / *fps
	m := eng.Match()
	for i := 0; i < *ticks && !m.Over; i++ {
		m = eng.Step(driver.Decide(m, arena.SlotPlayer), dt)
	}

	switch {
	case !m.Over:
		log.Printf("simulate: time out after %d ticks (%.1fs)", m.Tick, m.Elapsed)
	case m.Draw:
		log.Printf("simulate: double KO at tick %d (%.1fs)", m.Tick, m.Elapsed)
	default:
		log.Printf("simulate: %s (%s) wins at tick %d (%.1fs)", m.Winner, m.Fighter(m.Winner).Profile.Archetype, m.Tick, m.Elapsed)
	}
	for _, s := range arena.Slots {
		f := m.Fighter(s)
		log.Printf("simulate: %s %s hp=%.1f/%.0f energy=%.2f stamina=%.1f", s, f.Profile.Archetype, f.HP, f.MaxHP, f.Energy, f.Stamina)
	}
	log.Printf("simulate: attacks=%d hits=%d blocked=%d breaks=%d skills=%d projectiles=%d",
		stats[component.EventAttack], stats[component.EventHit], stats[component.EventBlocked],
		stats[component.EventBlockBreak], stats[component.EventSkill], stats[component.EventProjectileSpawn])
}
