// Package fsklab is a headless FSK / M-FSK signal simulator.
//
// Once per tick a driver hands the current modulation parameters and the
// elapsed time to a simulation session; the session draws random symbols at
// the baud rate, synthesizes one carrier sample (phase-continuous or not),
// adds Gaussian noise and keeps a trailing window of signal and symbol
// samples for display.
//
// Packages:
//
//	fsk/      — parameters, frequency plans, symbol scheduler, synthesizer,
//	            retention window and the Simulator that ties them together
//	analysis/ — dominant tone and amplitude statistics of a window (gonum)
//	session/  — concurrent registry of independent simulations (uuid)
//	config/   — YAML configuration of the driver
//	cmd/fsksim — command-line driver: fixed-step or wall-clock ticking, CSV dump
//
// Quick example:
//
//	sim, _ := fsk.New(fsk.WithSeed(1))
//	p := fsk.DefaultParams()
//	for i := 0; i < 60; i++ {
//		sim.Tick(1.0/60, p)
//	}
//	window := sim.Snapshot()
package fsklab
