// Package fsk defines the value types shared by the scheduler, synthesizer,
// window and simulator.
package fsk

// State is the per-session simulation state advanced by every tick.
//
//   - Time        — seconds since the session started.
//   - SinceSymbol — seconds since the last symbol change, always in [0, period).
//   - Symbol      — current symbol in [0, M-1].
//   - Phase       — carried carrier phase in [0, 2π); 0 in discontinuous mode.
type State struct {
	Time        float64
	SinceSymbol float64
	Symbol      int
	Phase       float64
}

// Sample is one (time, value) point of a window sequence.
type Sample struct {
	Time  float64
	Value float64
}

// Point is the result of synthesizing one sample.
type Point struct {
	Value     float64 // amplitude*sin(Phase) + noise
	Phase     float64 // phase used for this sample, in [0, 2π)
	Carry     float64 // phase to carry into the next call
	Frequency float64 // target frequency of the symbol, Hz
}

// TickResult summarizes what a successful Tick appended.
type TickResult struct {
	Time      float64 // timestamp of the appended sample
	Symbol    int     // symbol in force for the sample
	Value     float64 // synthesized signal value
	Frequency float64 // carrier frequency used, Hz
	Draws     int     // symbol draws made by the scheduler this tick
}

// Frame is a copy of both window sequences, safe to keep across ticks.
type Frame struct {
	Signal  []Sample
	Symbols []Sample
}
