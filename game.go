package main

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/ecs/entity"
	"github.com/milk9111/climb/ecs/system"
	"github.com/milk9111/climb/prefabs"
)

type GameOptions struct {
	entity.Options
	SkipTutorial bool
	// Scale overrides the tuning scale when positive.
	Scale float64
	// Watch reloads prefabs from disk while running.
	Watch bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	watcher   *prefabs.Watcher
	tuning    *component.Tuning
}

func NewGame(opts GameOptions) (*Game, error) {
	w := ecs.NewWorld()
	session, err := entity.NewSession(w, opts.Options)
	if err != nil {
		return nil, err
	}

	lines, err := system.NewCopyRuntime(session.Story.Lines, session.Flags.Name)
	if err != nil {
		return nil, err
	}
	story := system.NewStorySystem(lines, session.Story)
	if st := storyOf(w); st != nil {
		story.StartTutorial(st, opts.SkipTutorial || session.Flags.TutorialSeen)
	}

	if opts.Scale > 0 {
		session.Tuning.Scale = opts.Scale
	}

	g := &Game{
		world:     w,
		scheduler: ecs.NewScheduler(),
		render:    system.NewRenderSystem(),
		tuning:    session.Tuning,
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = watcher
			g.scheduler.Add(system.NewReloadSystem(watcher, story))
		}
	}

	for _, s := range []ecs.System{
		system.NewInputSystem(nil),
		system.NewSessionSystem(),
		system.NewDebugSystem(),
		system.NewGrappleSystem(),
		system.NewProgressionSystem(),
		system.NewPhysicsSystem(),
		system.NewCameraSystem(),
		story,
		system.NewAudioSystem(),
	} {
		g.scheduler.Add(s)
	}
	return g, nil
}

func storyOf(w *ecs.World) *component.Story {
	_, st, ok := ecs.Single(w, component.StoryComponent.Kind())
	if !ok {
		return nil
	}
	return st
}

func (g *Game) Update() error {
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenSize()
}

func (g *Game) screenSize() (int, int) {
	return int(math.Round(g.tuning.ViewW * g.tuning.Scale)), int(math.Round(g.tuning.ViewH * g.tuning.Scale))
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	if err := g.watcher.Close(); err != nil {
		return fmt.Errorf("watch: close: %w", err)
	}
	return nil
}
