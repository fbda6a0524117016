// Package fsk provides validation helpers that enforce parameter contracts.
//
// Each helper returns an error wrapping ErrInvalidParameter, prefixed with the
// method that detected the violation.
package fsk

// validateNonNegative ensures a named parameter is finite and >= 0.
// Returns "Compile: <name> must be finite and >= 0, got <v>: fsk: invalid parameter".
//
// Complexity: O(1) time and space.
func validateNonNegative(name string, v float64) error {
	if !finite(v) || v < 0 {
		return fskErrorf(MethodCompile, ErrInvalidParameter, "%s must be finite and >= 0, got %v", name, v)
	}

	return nil
}

// validateDelta ensures a time step is finite and >= 0.
func validateDelta(method string, dt float64) error {
	if !finite(dt) || dt < 0 {
		return fskErrorf(method, ErrInvalidParameter, "dt must be finite and >= 0, got %v", dt)
	}

	return nil
}

// validateSymbol ensures symbol is in [0, order-1].
func validateSymbol(method string, symbol, order int) error {
	if symbol < 0 || symbol >= order {
		return fskErrorf(method, ErrInvalidParameter, "symbol must be in [0,%d], got %d", order-1, symbol)
	}

	return nil
}
