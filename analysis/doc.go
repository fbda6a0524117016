// Package analysis inspects the retained window of an fsk.Simulator.
//
//   - DominantFrequency estimates the carrier tone with a Hann-windowed FFT
//     (gonum/dsp/fourier). Samples are treated as uniformly spaced; the
//     sample rate is derived from the first and last timestamps.
//   - Summarize reports count, mean, standard deviation, extrema and RMS
//     (gonum/stat, gonum/floats).
//   - Transitions counts symbol changes in a symbol sequence.
//
// Nothing here mutates its input.
package analysis
