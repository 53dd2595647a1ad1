package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/arenaduel/common"
	"github.com/milk9111/arenaduel/component"
	"github.com/milk9111/arenaduel/engine"
	"github.com/milk9111/arenaduel/prefabs"
)

func main() {
	playerName := flag.String("player", "knight", "player archetype (knight, ninja, mage)")
	opponentName := flag.String("opponent", "mage", "opponent archetype (knight, ninja, mage)")
	script := flag.String("script", "", "drive the opponent with a script from prefabs/scripts instead of the built-in AI")
	seed := flag.Int64("seed", 1, "seed for the opponent AI")
	watch := flag.Bool("watch", false, "reload prefabs on change, applied at the next rematch")
	debug := flag.Bool("debug", false, "draw hitboxes and hurtboxes")
	dir := flag.String("prefabs", prefabs.Dir, "directory whose prefab files override the embedded ones")
	flag.Parse()

	prefabs.Dir = *dir

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
	cfg.OpponentScript = *script

	game, err := NewGame(cfg, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			game.watcher = w
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("arenaduel")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
