// Package session hosts independent fsk simulations side by side.
//
// A Manager hands out Sessions keyed by UUID. Each Session owns one
// fsk.Simulator behind its own mutex, so distinct sessions tick concurrently
// while a single session stays single-writer. Sessions share nothing: no
// random source, no window, no params.
package session
