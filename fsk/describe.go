package fsk

import (
	"fmt"
	"strings"
)

// Describe renders a human-readable summary of p for explanatory collaborators.
// It only reads its argument. Invalid params are described with the validation
// error appended instead of the symbol table.
func Describe(p ModulationParams) string {
	var b strings.Builder

	if p.Order == BinaryOrder {
		b.WriteString("Mode: Binary FSK (2-FSK)\n")
		fmt.Fprintf(&b, "Mark Frequency (1): %g Hz\n", p.MarkFreq)
		fmt.Fprintf(&b, "Space Frequency (0): %g Hz\n", p.SpaceFreq)
	} else {
		fmt.Fprintf(&b, "Mode: %d-FSK\n", p.Order)
		fmt.Fprintf(&b, "Base Frequency: %g Hz\n", p.BaseFreq)
		fmt.Fprintf(&b, "Frequency Spacing: %g Hz\n", p.FreqSpacing)
	}
	fmt.Fprintf(&b, "Symbol Rate: %g baud\n", p.BaudRate)
	fmt.Fprintf(&b, "Amplitude: %g\n", p.Amplitude)
	fmt.Fprintf(&b, "Noise Level: %g\n", p.NoiseLevel)
	if p.ContinuousPhase {
		b.WriteString("Continuous Phase: Enabled (CPFSK)\n")
	} else {
		b.WriteString("Continuous Phase: Disabled\n")
	}

	m, err := Compile(p)
	if err != nil {
		fmt.Fprintf(&b, "Invalid: %v\n", err)

		return b.String()
	}
	fmt.Fprintf(&b, "Bits per Symbol: %.3g\n", m.BitsPerSymbol())
	fmt.Fprintf(&b, "Symbol Duration: %g s\n", m.SymbolPeriod())
	for s, f := range m.Frequencies() {
		fmt.Fprintf(&b, "Symbol %d: %g Hz\n", s, f)
	}

	return b.String()
}
