package main

import (
	"errors"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-quadgen/config"
	"ebiten-quadgen/ecs"
	"ebiten-quadgen/generation"
	"ebiten-quadgen/screens"
	"ebiten-quadgen/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	opts        config.Generation
	screenStack *screens.ScreenStack
	startScreen *screens.StartScreen
	mapScreen   *screens.MapScreen
	events      *ecs.EventManager
	passSub     ecs.SubscriptionID
	width       int
	height      int
}

// NewGame creates a new game instance
func NewGame(opts config.Generation, sound bool) (*Game, error) {
	seed := opts.SeedOrNow()
	systems.GetMessageLog().Addf("Seed %d", seed)

	gen, err := generation.NewGenerator(opts, rand.New(rand.NewSource(seed)), systems.GetMessageLog().Add)
	if err != nil {
		return nil, err
	}

	drawSystem := systems.NewDrawSystem(opts.WorldWidth, opts.WorldHeight)
	painters := []systems.Painter{drawSystem}

	var audioSystem *systems.AudioSystem
	if sound {
		audioSystem = systems.NewAudioSystem()
		painters = append(painters, audioSystem)
	}

	stepper := systems.NewStepperSystem(gen, systems.DefaultStepInterval, painters...)

	width, height := config.GetScreenDimensions(generation.BackgroundSize(opts.WorldWidth, opts.WorldHeight))
	game := &Game{
		opts:        opts,
		screenStack: screens.NewScreenStack(),
		startScreen: screens.NewStartScreen(opts),
		mapScreen:   screens.NewMapScreen(stepper, drawSystem, audioSystem, width, height),
		events:      stepper.Events(),
		passSub:     logPassCompletion(stepper.Events(), systems.GetMessageLog()),
		width:       width,
		height:      height,
	}
	game.screenStack.Push(game.startScreen)

	return game, nil
}

// logPassCompletion writes a summary line to ml whenever a pass finishes
func logPassCompletion(events *ecs.EventManager, ml *systems.MessageLog) ecs.SubscriptionID {
	return events.Subscribe(systems.EventPassFinished, func(e ecs.Event) {
		finished := e.(systems.PassFinishedEvent)
		ml.Addf("Pass complete: %d rooms drawn", finished.Drawn)
	})
}

// Close detaches the game's event handlers
func (g *Game) Close() {
	g.events.Unsubscribe(systems.EventPassFinished, g.passSub)
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch {
	case err == nil:
	case errors.Is(err, screens.ErrStart):
		g.screenStack.Push(g.mapScreen)
		// Errors are shown on the map screen status bar
		_ = g.mapScreen.Regenerate()
	case errors.Is(err, screens.ErrQuit):
		g.Close()
		return ebiten.Termination
	default:
		return err
	}

	if g.screenStack.Len() == 0 {
		g.screenStack.Push(g.startScreen)
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
