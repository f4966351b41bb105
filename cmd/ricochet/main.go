package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/ricochet/audio"
	"github.com/lixenwraith/ricochet/constant"
	"github.com/lixenwraith/ricochet/core"
	"github.com/lixenwraith/ricochet/engine"
	"github.com/lixenwraith/ricochet/render"
	"github.com/lixenwraith/ricochet/scene"
	"github.com/lixenwraith/ricochet/simulation"
	"github.com/lixenwraith/ricochet/system"
)

var (
	sceneFlag    = flag.String("scene", "", "Scene file (YAML); overrides -preset")
	presetFlag   = flag.String("preset", "box", "Built-in scene: box, window")
	tickFlag     = flag.Duration("tick", constant.TickInterval, "Delay between ticks")
	ticksFlag    = flag.Uint64("ticks", 0, "Stop after N ticks, 0 runs until interrupted")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+constant.LogDir+"/"+constant.LogFileName)
	headlessFlag = flag.Bool("headless", false, "Run without the terminal viewer")
	levelFlag    = flag.String("level", "info", "Log level: debug, info, warn, error")
	muteFlag     = flag.Bool("mute", false, "Disable the bounce click")
	dumpFlag     = flag.Bool("dump-scene", false, "Print the resolved scene as YAML and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ricochet: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sc, err := resolveScene(*sceneFlag, *presetFlag)
	if err != nil {
		return err
	}
	if *dumpFlag {
		return sc.Encode(os.Stdout)
	}
	if *tickFlag <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", *tickFlag)
	}

	headless := *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd()))

	logger, logFile, err := setupLogging(constant.LogDir, *debugFlag, headless, *levelFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	sinks := system.MultiSink{system.NewLogSink(logger)}
	if !headless && !*muteFlag {
		bounce := audio.NewBounceSink(audio.LoadConfig())
		if err := bounce.Initialize(); err != nil {
			// Non-fatal, runs silent
			logger.Warn("audio initialization failed", "err", err)
		}
		defer bounce.Cleanup()
		sinks = append(sinks, bounce)
	}

	sim, err := simulation.New(sc, simulation.WithSink(sinks), simulation.WithLogger(logger))
	if err != nil {
		return err
	}

	scheduler, updates := engine.NewClockScheduler(sim, *tickFlag)
	scheduler.SetTickLimit(*ticksFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	start := time.Now()
	g.Go(core.Guard(func() error {
		defer cancel()
		return scheduler.Run(runCtx)
	}))

	if headless {
		g.Go(core.Guard(func() error {
			return report(runCtx, sim, updates, logger)
		}))
	} else {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("screen init: %w", err)
		}
		core.SetCrashReset(screen.Fini)
		defer screen.Fini()

		viewer := render.NewViewer(screen, sim, scheduler, logger, sc.Name)
		g.Go(core.Guard(func() error {
			return viewer.Run(runCtx, updates)
		}))
	}

	err = g.Wait()
	if errors.Is(err, render.ErrQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}

	body := sim.Body()
	logger.Info("simulation finished",
		"scene", sim.Name(),
		"ticks", sim.Ticks(),
		"hits", sim.Hits(),
		"x", body.Position.X,
		"y", body.Position.Y,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	if headless {
		fmt.Printf("%s: %d ticks, %d hits, position (%.4f, %.4f), velocity (%.4f, %.4f)\n",
			sim.Name(), sim.Ticks(), sim.Hits(),
			body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y)
	}
	return err
}

// resolveScene loads the scene file if given, else the named preset
func resolveScene(path, preset string) (scene.Scene, error) {
	if path != "" {
		return scene.Load(path)
	}
	switch preset {
	case "box", "":
		return scene.Default(), nil
	case "window":
		return scene.Window(), nil
	default:
		return scene.Scene{}, fmt.Errorf("unknown preset %q", preset)
	}
}

// report logs body state after each tick until ctx ends
func report(ctx context.Context, sim *simulation.Simulation, updates <-chan struct{}, logger *log.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
			body := sim.Body()
			logger.Debug("tick",
				"tick", sim.Ticks(),
				"x", body.Position.X,
				"y", body.Position.Y,
				"vx", body.Velocity.X,
				"vy", body.Velocity.Y,
			)
		}
	}
}
