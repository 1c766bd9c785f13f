package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-quadgen/config"
	"ebiten-quadgen/generation"
	"ebiten-quadgen/stream"
	"ebiten-quadgen/systems"
)

type options struct {
	gen      config.Generation
	serve    bool
	addr     string
	interval time.Duration
	dump     bool
	mute     bool
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("quadgen", flag.ContinueOnError)

	configPath := fs.String("config", "", "JSON file with generation options")
	width := fs.Int("width", 0, "World width in cells")
	height := fs.Int("height", 0, "World height in cells")
	minDim := fs.Int("min", 0, "Smallest room side")
	maxDim := fs.Int("max", 0, "Largest room side")
	rooms := fs.Int("rooms", 0, "Rooms per pass")
	aspect := fs.Float64("aspect", -1, "Longest/shortest room side, 0 = unlimited")
	seed := fs.Int64("seed", 0, "Random seed, 0 = time based")

	var opts options
	fs.BoolVar(&opts.serve, "serve", false, "Stream maps to browsers instead of opening a window")
	fs.StringVar(&opts.addr, "addr", ":8080", "Listen address for -serve")
	fs.DurationVar(&opts.interval, "interval", 400*time.Millisecond, "Delay between streamed rooms")
	fs.BoolVar(&opts.dump, "dump", false, "Print one pass as JSON lines and exit")
	fs.BoolVar(&opts.mute, "mute", false, "Disable room sounds")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.gen = config.DefaultGeneration()
	if *configPath != "" {
		loaded, err := config.LoadGeneration(*configPath)
		if err != nil {
			return opts, err
		}
		opts.gen = loaded
	}

	// Flags override the file
	override := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	override(&opts.gen.WorldWidth, *width)
	override(&opts.gen.WorldHeight, *height)
	override(&opts.gen.MinRoomDim, *minDim)
	override(&opts.gen.MaxRoomDim, *maxDim)
	override(&opts.gen.TargetRoomCount, *rooms)
	if *aspect >= 0 {
		opts.gen.MaxAspectRatio = *aspect
	}
	if *seed != 0 {
		opts.gen.Seed = *seed
	}

	if err := opts.gen.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// dumpPass writes the background, every room and the end marker as JSON lines
func dumpPass(w io.Writer, opts config.Generation) error {
	seed := opts.SeedOrNow()
	gen, err := generation.NewGenerator(opts, rand.New(rand.NewSource(seed)), systems.GetMessageLog().Add)
	if err != nil {
		return err
	}

	bg, err := gen.Initialize()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(bg); err != nil {
		return err
	}
	for {
		d := gen.NextDraw()
		if err := enc.Encode(d); err != nil {
			return err
		}
		if d.IsEnd() {
			return nil
		}
	}
}

func serve(opts options) error {
	systems.GetMessageLog().SetEcho(os.Stderr)

	srv := stream.NewServer(opts.gen, opts.interval, systems.GetMessageLog().Add)
	httpServer := &http.Server{
		Addr:    opts.addr,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		systems.GetMessageLog().Add(fmt.Sprintf("Streaming maps on http://localhost%s", opts.addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	systems.GetMessageLog().Add("Shutting down")
	srv.Hub().CloseAll("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	if opts.dump {
		systems.GetMessageLog().SetEcho(os.Stderr)
		if err := dumpPass(os.Stdout, opts.gen); err != nil {
			log.Fatal(err)
		}
		return
	}

	if opts.serve {
		if err := serve(opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := NewGame(opts.gen, !opts.mute)
	if err != nil {
		log.Fatal(err)
	}

	// Get window size from config
	windowWidth, windowHeight := config.GetWindowSize(generation.BackgroundSize(opts.gen.WorldWidth, opts.gen.WorldHeight))
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Quadrant Dungeon")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
