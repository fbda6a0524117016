// Package fsk is the signal-generation and windowed-history core of an FSK /
// M-FSK live simulator.
//
// What it does:
//
//	Once per external tick the driver calls Simulator.Tick(dt, params). The
//	simulator then
//		• advances the symbol clock and draws new random symbols at the baud rate
//		  (Advance), carrying the timing residue across boundaries,
//		• synthesizes one carrier sample for the current symbol (Synthesize),
//		  either phase-continuous (CPFSK) or recomputed from absolute time,
//		• adds Gaussian noise (Box–Muller, Gaussian),
//		• appends the sample to a signal and a symbol sequence and prunes
//		  everything older than the retention window (Window).
//
// Frequency selection:
//
//	M = 2   Binary{Mark, Space}:  symbol 1 → Mark, 0 → Space
//	M > 2   MAry{M, Base, Spacing}: f(s) = Base + s·Spacing
//
//	The plan is chosen once by Compile; per-sample code is M-agnostic.
//
// Determinism:
//
//	Randomness comes from an injected *rand.Rand (WithRand) or a seed
//	(WithSeed). Equal seeds and equal tick sequences yield equal windows.
//
// Concurrency:
//
//	No goroutines, timers or I/O. One writer per Simulator; run independent
//	sessions on independent Simulators. Drivers clamp dt with ClampDelta
//	(DefaultMaxDelta = 0.1 s) before ticking.
//
// Errors:
//
//	ErrInvalidParameter — rejected params or tick input; the tick is not applied.
//	ErrOutOfOrder       — Window.Append with a non-increasing timestamp.
//
// Quick example:
//
//	sim, _ := fsk.New(fsk.WithSeed(1))
//	for i := 0; i < 60; i++ {
//		if _, err := sim.Tick(1.0/60, fsk.DefaultParams()); err != nil {
//			return err
//		}
//	}
//	plot(sim.Signal(), sim.Symbols())
package fsk
