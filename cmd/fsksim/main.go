// Command fsksim runs headless FSK / M-FSK simulation sessions and reports the
// retained window of each one.
//
// Sessions tick either at a fixed simulated rate (default) or against the wall
// clock (--realtime), where each measured interval is clamped to max_delta
// before it reaches the simulator.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/fsklab/analysis"
	"github.com/katalvlaran/fsklab/config"
	"github.com/katalvlaran/fsklab/fsk"
	"github.com/katalvlaran/fsklab/session"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "fsksim: %v\n", err)
	}
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps the result of run to a process status: 0 for success or a
// help request, 2 otherwise.
func exitCode(err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return 0
	}

	return 2
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("fsksim", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var configFile = fs.StringP("config", "c", "", "YAML configuration file.")
	var duration = fs.Float64P("duration", "d", 0, "Simulated seconds per session.")
	var rate = fs.Float64P("rate", "r", 0, "Ticks per second.")
	var seed = fs.Int64P("seed", "S", 0, "Random seed. Unset seeds from the clock.")
	var order = fs.IntP("order", "M", 0, "Alphabet size M. 2 is binary FSK.")
	var baud = fs.Float64P("baud", "b", 0, "Symbol rate in baud.")
	var noise = fs.Float64P("noise", "n", 0, "Noise level (standard deviation of added Gaussian noise).")
	var discontinuous = fs.Bool("discontinuous", false, "Recompute phase from absolute time instead of CPFSK.")
	var sessions = fs.IntP("sessions", "s", 0, "Number of independent sessions.")
	var output = fs.StringP("output", "o", "", "Write the final window of every session as CSV.")
	var describe = fs.BoolP("describe", "D", false, "Print a description of the modulation and exit.")
	var logLevel = fs.StringP("log-level", "l", "", "debug, info, warn or error.")
	var realtime = fs.Bool("realtime", false, "Tick against the wall clock.")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "fsksim - Simulate FSK / M-FSK signals.\n")
		fmt.Fprintf(stderr, "\n")
		fmt.Fprintf(stderr, "Usage: fsksim [options]\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\n")
		fmt.Fprintf(stderr, "Flags override values from the configuration file.\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}

	if fs.Changed("duration") {
		cfg.Simulation.Duration = *duration
	}
	if fs.Changed("rate") {
		cfg.Simulation.TickRate = *rate
	}
	if fs.Changed("seed") {
		cfg.Simulation.Seed = seed
	}
	if fs.Changed("order") {
		cfg.Params.Order = *order
	}
	if fs.Changed("baud") {
		cfg.Params.BaudRate = *baud
	}
	if fs.Changed("noise") {
		cfg.Params.NoiseLevel = *noise
	}
	if fs.Changed("discontinuous") {
		cfg.Params.ContinuousPhase = !*discontinuous
	}
	if fs.Changed("sessions") {
		cfg.Simulation.Sessions = *sessions
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = *logLevel
	}

	if *describe {
		fmt.Fprint(stdout, fsk.Describe(cfg.ModulationParams()))
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.Logging.Level)
	logger := log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "fsksim",
	})

	mgr := session.NewManager(
		session.WithLogger(logger),
		session.WithSimulatorOptions(cfg.SimulatorOptions()...),
	)
	for i := 0; i < cfg.Simulation.Sessions; i++ {
		// Session i is seeded with seed+i.
		var opts []fsk.Option
		if cfg.Simulation.Seed != nil {
			opts = append(opts, fsk.WithSeed(*cfg.Simulation.Seed+int64(i)))
		}
		if _, err := mgr.Create(opts...); err != nil {
			return err
		}
	}

	logger.Info("starting",
		"sessions", cfg.Simulation.Sessions,
		"duration", cfg.Simulation.Duration,
		"rate", cfg.Simulation.TickRate,
		"order", cfg.Params.Order,
		"realtime", *realtime)

	drive := driveFixed
	if *realtime {
		drive = driveRealtime
	}

	p := cfg.ModulationParams()
	var wg sync.WaitGroup
	errs := make([]error, mgr.Len())
	for i, id := range mgr.IDs() {
		s, err := mgr.Get(id)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func(i int, s *session.Session) {
			defer wg.Done()
			errs[i] = drive(ctx, s, p, cfg.Simulation)
		}(i, s)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for _, id := range mgr.IDs() {
		s, _ := mgr.Get(id)
		report(logger, s)
	}

	if *output != "" {
		if err := writeCSV(*output, mgr); err != nil {
			return err
		}
		logger.Info("window written", "path", *output)
	}

	return nil
}

// driveFixed ticks with dt = 1/rate until the simulated duration is reached.
func driveFixed(ctx context.Context, s *session.Session, p fsk.ModulationParams, sc config.SimulationConfig) error {
	dt := 1 / sc.TickRate
	ticks := int(sc.Duration*sc.TickRate + 0.5)
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := s.Tick(dt, p); err != nil {
			return err
		}
	}

	return nil
}

// driveRealtime ticks on a wall-clock ticker, feeding the clamped elapsed time.
func driveRealtime(ctx context.Context, s *session.Session, p fsk.ModulationParams, sc config.SimulationConfig) error {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / sc.TickRate))
	defer ticker.Stop()

	last := time.Now()
	for s.State().Time < sc.Duration {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := fsk.ClampDelta(now.Sub(last).Seconds(), sc.MaxDelta)
			last = now
			if _, err := s.Tick(dt, p); err != nil {
				return err
			}
		}
	}

	return nil
}

func report(logger *log.Logger, s *session.Session) {
	frame := s.Snapshot()
	sum := analysis.Summarize(analysis.Values(frame.Signal))
	kv := []interface{}{
		"session", s.ID().String(),
		"time", s.State().Time,
		"samples", sum.Count,
		"rms", sum.RMS,
		"mean", sum.Mean,
		"transitions", analysis.Transitions(frame.Symbols),
	}
	if f, err := analysis.DominantFrequency(frame.Signal); err == nil {
		kv = append(kv, "dominant_hz", f)
	} else {
		logger.Debug("no spectrum", "session", s.ID().String(), "err", err)
	}
	logger.Info("session done", kv...)
}

// writeCSV writes session,time,signal,symbol rows for every session.
func writeCSV(path string, mgr *session.Manager) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"session", "time", "signal", "symbol"}); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	for _, id := range mgr.IDs() {
		s, err := mgr.Get(id)
		if err != nil {
			return err
		}
		frame := s.Snapshot()
		for i, sample := range frame.Signal {
			row := []string{
				id.String(),
				strconv.FormatFloat(sample.Time, 'g', -1, 64),
				strconv.FormatFloat(sample.Value, 'g', -1, 64),
				strconv.Itoa(int(frame.Symbols[i].Value)),
			}
			if err = w.Write(row); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return f.Close()
}
