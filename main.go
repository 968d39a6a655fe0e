package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/climb/ecs/entity"
	"github.com/milk9111/climb/save"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	scale := flag.Float64("scale", 0, "window scale (default from tuning)")
	levelName := flag.String("level", entity.DefaultLevel, "embedded level layout")
	name := flag.String("name", "", "player name used in the story copy")
	skipTutorial := flag.Bool("skip-tutorial", false, "do not show the tutorial")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	muted := flag.Bool("mute", false, "disable sound cues")
	saveDir := flag.String("save-dir", "", "directory for persisted flags (default: user config dir)")
	noSave := flag.Bool("no-save", false, "do not read or write persisted flags")
	flag.Parse()

	dir := *saveDir
	if dir == "" && !*noSave {
		d, err := save.DefaultDir()
		if err != nil {
			log.Printf("save: %v", err)
		}
		dir = d
	}
	if *noSave {
		dir = ""
	}

	game, err := NewGame(GameOptions{
		Options: entity.Options{
			Level:   *levelName,
			SaveDir: dir,
			Name:    *name,
			Debug:   *debug,
			Muted:   *muted,
		},
		SkipTutorial: *skipTutorial,
		Scale:        *scale,
		Watch:        *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("climb")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
