// Command orbitsim runs orbit controls headless: it applies a scripted rotate and
// cursor-anchored dolly (or zoom, for orthographic cameras), advances frames until every
// view has settled, and logs each lifecycle event and the final pose.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/rig"
)

var errUsage = errors.New("orbitsim: invalid usage")

type options struct {
	configPath string
	watch      bool
	projection string
	fps        float64
	maxFrames  int
	views      int
	cursorX    float32
	cursorY    float32
	debug      bool
	profile    bool
	uniformOut string
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var o options
	var cx, cy float64
	fs := flag.NewFlagSet("orbitsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "controls config file (.toml, .yaml or .yml)")
	fs.BoolVar(&o.watch, "watch", false, "reload the config file when it changes")
	fs.StringVar(&o.projection, "projection", "perspective", "camera projection: perspective or orthographic")
	fs.Float64Var(&o.fps, "fps", 60, "tick rate in frames per second")
	fs.IntVar(&o.maxFrames, "max-frames", 0, "stop after this many frames (0 runs until every view sleeps)")
	fs.IntVar(&o.views, "views", 1, "number of independent views to advance")
	fs.Float64Var(&cx, "cursor-x", 0.3, "cursor x in normalized device coordinates")
	fs.Float64Var(&cy, "cursor-y", 0.2, "cursor y in normalized device coordinates")
	fs.BoolVar(&o.debug, "debug", false, "log at debug level")
	fs.BoolVar(&o.profile, "profile", false, "log frame statistics every second")
	fs.StringVar(&o.uniformOut, "uniform-out", "", "write each view's final camera uniform to this file")
	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%w: %w", errUsage, err)
	}
	o.cursorX, o.cursorY = float32(cx), float32(cy)

	switch {
	case o.projection != "perspective" && o.projection != "orthographic":
		return o, fmt.Errorf("%w: unknown projection %q", errUsage, o.projection)
	case o.views < 1:
		return o, fmt.Errorf("%w: views must be at least 1, got %d", errUsage, o.views)
	case o.watch && o.configPath == "":
		return o, fmt.Errorf("%w: -watch needs -config", errUsage)
	}
	return o, nil
}

func run(args []string, stderr io.Writer) error {
	o, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// ── Config ──────────────────────────────────────────────────────────
	cfg := controls.DefaultConfig()
	if o.configPath != "" {
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	cfg.DollyToCursor = true

	var configs <-chan controls.Config
	var reloadErrs <-chan error
	if o.watch {
		w, err := config.NewWatcher(o.configPath, config.WithWatchLogger(logger))
		if err != nil {
			return err
		}
		defer w.Close()
		configs, reloadErrs = w.Configs, w.Errors
	}

	// ── Views ───────────────────────────────────────────────────────────
	sleeping := newSleepTracker(o.views)
	views := make([]controls.OrbitControls, 0, o.views)
	for i := range o.views {
		oc, err := buildView(i, o, cfg, logger, sleeping)
		if err != nil {
			return err
		}
		views = append(views, oc)
	}

	// ── Engine ──────────────────────────────────────────────────────────
	frames := 0
	var eng engine.Engine
	eng = engine.NewEngine(
		engine.WithTickRate(o.fps),
		engine.WithProfiling(o.profile),
		engine.WithLogger(logger),
		engine.WithRig(rig.NewRig(rig.WithControls(views...), rig.WithLogger(logger))),
		engine.WithTickCallback(func(dt float32) {
			select {
			case c := <-configs:
				c.DollyToCursor = true
				for i, oc := range views {
					if err := oc.SetConfig(c); err != nil {
						logger.Warn("config rejected", "view", i, "err", err)
					}
				}
				logger.Info("config reloaded")
			case <-reloadErrs:
			default:
			}
			if frames == 0 {
				for _, oc := range views {
					script(oc, o)
				}
			}
		}),
		engine.WithFrameCallback(func(dt float32, changed []int) {
			frames++
			if sleeping.all() || (o.maxFrames > 0 && frames >= o.maxFrames) {
				eng.Quit()
			}
		}),
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	done := make(chan struct{})
	go func() {
		select {
		case <-sig:
			eng.Quit()
		case <-done:
		}
	}()

	eng.Run()
	close(done)

	var uniforms []byte
	for i, oc := range views {
		uniforms = camera.NewUniform(oc.Camera()).AppendTo(uniforms)
		p := oc.Pose()
		logger.Info("final pose",
			"view", i,
			"frames", frames,
			"position", p.Position,
			"target", p.Target,
			"up", p.Up,
			"zoom", p.Zoom,
		)
	}
	if o.uniformOut != "" {
		if err := os.WriteFile(o.uniformOut, uniforms, 0o644); err != nil {
			return fmt.Errorf("orbitsim: write uniforms: %w", err)
		}
	}
	return nil
}

// buildView creates the camera and controls for view i. Views are spread along z so each
// settles at a different radius.
func buildView(i int, o options, cfg controls.Config, logger *slog.Logger, sleeping *sleepTracker) (controls.OrbitControls, error) {
	camOpts := []camera.CameraBuilderOption{
		camera.WithNear(0.1),
		camera.WithFar(1000),
		camera.WithPosition(0, 2, 10+2*float32(i)),
		camera.WithLookAt(0, 0, 0),
	}
	if o.projection == "orthographic" {
		camOpts = append(camOpts, camera.WithOrthographic(-8, 8, 4.5, -4.5))
	} else {
		camOpts = append(camOpts, camera.WithFov(mgl32.DegToRad(50)), camera.WithAspect(16.0/9.0))
	}
	cam := camera.NewCamera(camOpts...)

	viewLog := logger.With("view", i)
	return controls.NewOrbitControls(cam,
		controls.WithConfig(cfg),
		controls.WithBoundary(controls.NewBoxBoundary(mgl32.Vec3{-20, -20, -20}, mgl32.Vec3{20, 20, 20}), 1, false),
		controls.WithLogger(viewLog),
		controls.WithListener(controls.ListenerFuncs{
			Wake: func() {
				viewLog.Info("wake")
				sleeping.set(i, false)
			},
			Rest: func() { viewLog.Info("rest") },
			Sleep: func() {
				viewLog.Info("sleep")
				sleeping.set(i, true)
			},
		}),
	)
}

// sleepTracker records which views are asleep right now. Listeners run on rig workers,
// so each flag is atomic.
type sleepTracker struct {
	asleep []atomic.Bool
}

func newSleepTracker(n int) *sleepTracker {
	return &sleepTracker{asleep: make([]atomic.Bool, n)}
}

func (s *sleepTracker) set(view int, asleep bool) {
	s.asleep[view].Store(asleep)
}

// all reports whether every view is asleep.
func (s *sleepTracker) all() bool {
	for i := range s.asleep {
		if !s.asleep[i].Load() {
			return false
		}
	}
	return true
}

// script applies the one-off gesture: an orbit of an eighth turn with a slight tilt, then
// a dolly (or zoom) toward the cursor.
func script(oc controls.OrbitControls, o options) {
	oc.Rotate(math.Pi/4, -math.Pi/12)
	if o.projection == "orthographic" {
		oc.ZoomAt(-4, o.cursorX, o.cursorY)
		return
	}
	oc.DollyAt(-4, o.cursorX, o.cursorY)
}
