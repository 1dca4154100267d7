// Package composition models element mixtures and draws random ones for
// hallucinated spectra.
package composition

import (
	"fmt"
	"sort"

	"github.com/uvislab/go-hallucinator/element"
	"github.com/uvislab/go-hallucinator/rng"
)

// Entry is one element's share of a mixture.
type Entry struct {
	Symbol   string  `json:"symbol"`
	Fraction float64 `json:"fraction"`
}

// Composition is an ordered list of element shares. Order matters: it is
// the order peaks are laid down in, so it is part of the reproducibility
// contract and survives serialization unchanged.
type Composition []Entry

// Sum returns the total of all fractions.
func (c Composition) Sum() float64 {
	total := 0.0
	for _, e := range c {
		total += e.Fraction
	}
	return total
}

// Validate checks that the mixture is well formed: at least one entry,
// every symbol registered, no negative fractions, and fractions summing
// to one within tolerance.
func (c Composition) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("composition has no entries")
	}
	for _, e := range c {
		if !element.Valid(e.Symbol) {
			return fmt.Errorf("unknown element symbol %q", e.Symbol)
		}
		if e.Fraction < 0 {
			return fmt.Errorf("element %s has negative fraction %v", e.Symbol, e.Fraction)
		}
	}
	if sum := c.Sum(); sum < 1-1e-9 || sum > 1+1e-9 {
		return fmt.Errorf("fractions sum to %v, want 1", sum)
	}
	return nil
}

// Label renders the mixture as a math-style annotation, for example
// "${Co}_{0.25} {Cu}_{0.25} {V}_{0.50}$". Entries are sorted by symbol so
// the same mixture always gets the same label regardless of entry order.
func (c Composition) Label() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = fmt.Sprintf("{%s}_{%.2f}", e.Symbol, e.Fraction)
	}
	sort.Strings(parts)
	label := "$"
	for i, p := range parts {
		if i > 0 {
			label += " "
		}
		label += p
	}
	return label + "$"
}

// FromMap builds a Composition from symbol/fraction pairs, ordered by
// registry position so the result is deterministic, and normalized so the
// fractions sum to one.
func FromMap(fractions map[string]float64) (Composition, error) {
	if len(fractions) == 0 {
		return nil, fmt.Errorf("composition has no entries")
	}
	c := make(Composition, 0, len(fractions))
	sum := 0.0
	for symbol, fraction := range fractions {
		if !element.Valid(symbol) {
			return nil, fmt.Errorf("unknown element symbol %q", symbol)
		}
		if fraction < 0 {
			return nil, fmt.Errorf("element %s has negative fraction %v", symbol, fraction)
		}
		c = append(c, Entry{Symbol: symbol, Fraction: fraction})
		sum += fraction
	}
	if sum <= 0 {
		return nil, fmt.Errorf("fractions sum to %v, want a positive total", sum)
	}
	sort.Slice(c, func(i, j int) bool {
		return element.Position(c[i].Symbol) < element.Position(c[j].Symbol)
	})
	for i := range c {
		c[i].Fraction /= sum
	}
	return c, nil
}

// Config controls how random compositions are drawn.
type Config struct {
	// Elements to mix, in draw order. Duplicates are allowed and receive
	// independent fractions.
	Elements []string
	// MaxFraction caps each raw weight before normalization. Zero means 1.
	MaxFraction float64
	// MinElements enables subset sampling when positive: each composition
	// uses a random subset of Elements instead of all of them.
	MinElements int
	// MaxElements bounds the subset size. Zero or anything past the end of
	// Elements means the whole list.
	MaxElements int
}

// Sampler draws random compositions from a fixed element list.
type Sampler struct {
	elements    []string
	maxFraction float64
	minSubset   int
	maxSubset   int
}

// NewSampler validates cfg and returns a Sampler for it.
func NewSampler(cfg Config) (*Sampler, error) {
	if len(cfg.Elements) == 0 {
		return nil, fmt.Errorf("no elements to sample from")
	}
	if err := element.ValidateAll(cfg.Elements); err != nil {
		return nil, err
	}
	maxFraction := cfg.MaxFraction
	if maxFraction == 0 {
		maxFraction = 1
	}
	if maxFraction < 0 {
		return nil, fmt.Errorf("max fraction must be positive, got %v", maxFraction)
	}
	minSubset := cfg.MinElements
	maxSubset := cfg.MaxElements
	if maxSubset <= 0 || maxSubset > len(cfg.Elements) {
		maxSubset = len(cfg.Elements)
	}
	if minSubset > maxSubset {
		return nil, fmt.Errorf("min elements %d exceeds max elements %d", minSubset, maxSubset)
	}
	elements := make([]string, len(cfg.Elements))
	copy(elements, cfg.Elements)
	return &Sampler{
		elements:    elements,
		maxFraction: maxFraction,
		minSubset:   minSubset,
		maxSubset:   maxSubset,
	}, nil
}

// Sample draws one composition.
//
// # Determinism
//
// Sample is deterministic with respect to ctx. The draw order is fixed:
// without subset sampling, one uniform weight per element in list order,
// including the single-element case. With subset sampling, one size draw,
// one permutation, then one uniform weight per chosen element in list
// order. Weights are then normalized to sum to one.
func (s *Sampler) Sample(ctx *rng.Context) Composition {
	chosen := s.choose(ctx)
	c := make(Composition, len(chosen))
	sum := 0.0
	for i, idx := range chosen {
		w := ctx.Uniform(0, s.maxFraction)
		c[i] = Entry{Symbol: s.elements[idx], Fraction: w}
		sum += w
	}
	if sum > 0 {
		for i := range c {
			c[i].Fraction /= sum
		}
	} else {
		// All-zero weights are possible only on measure-zero draws; keep
		// the sum-to-one invariant anyway.
		for i := range c {
			c[i].Fraction = 1 / float64(len(c))
		}
	}
	return c
}

// choose picks the element indices for one composition, in list order.
func (s *Sampler) choose(ctx *rng.Context) []int {
	if s.minSubset <= 0 {
		all := make([]int, len(s.elements))
		for i := range all {
			all[i] = i
		}
		return all
	}
	n := ctx.Intn(s.maxSubset-s.minSubset+1) + s.minSubset
	perm := ctx.Perm(len(s.elements))
	chosen := perm[:n]
	sort.Ints(chosen)
	return chosen
}
