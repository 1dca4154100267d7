// Package element defines the registry of chemical element symbols the
// generator can hallucinate. The registry is ordered by ascending atomic
// number; a symbol's 1-based position in it is stable and is what ties an
// element to its characteristic line.
package element

import "fmt"

var symbols = []string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm",
	"Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
}

var positions = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols {
		m[s] = i + 1
	}
	return m
}()

// Count returns the number of registered elements.
func Count() int {
	return len(symbols)
}

// Symbols returns a copy of the registry in registry order.
func Symbols() []string {
	out := make([]string, len(symbols))
	copy(out, symbols)
	return out
}

// Position returns the 1-based registry position of symbol, or 0 if the
// symbol is not registered.
func Position(symbol string) int {
	return positions[symbol]
}

// Valid reports whether symbol names a registered element.
func Valid(symbol string) bool {
	_, ok := positions[symbol]
	return ok
}

// ValidateAll checks every symbol in order and reports the first unknown
// one. An empty list is allowed here; callers that require at least one
// element enforce that themselves.
func ValidateAll(syms []string) error {
	for _, s := range syms {
		if !Valid(s) {
			return fmt.Errorf("unknown element symbol %q", s)
		}
	}
	return nil
}
