// Package orcarand defines the entropy source the R operator consumes.
//
// The interface-plus-default-adapter shape mirrors the teacher's
// dependency-injection pattern for CPU collaborators (MemoryInterface,
// LoggerInterface in internal/cpu/cpu.go of the retrieved nitro-core-dx
// repository): the evaluator is handed a narrow Source rather than
// reaching for a package-level global, so a host can substitute a
// deterministic source for reproducible runs (spec.md §6.5).
package orcarand

import "math/rand"

// Source produces uniform integers in an inclusive range.
type Source interface {
	// IntRange returns a uniform integer in [min, max]. Callers are
	// responsible for min <= max.
	IntRange(min, max int) int
}

// mathRandSource adapts *rand.Rand to Source.
type mathRandSource struct {
	rng *rand.Rand
}

// New returns a Source backed by math/rand seeded with seed. Two Sources
// created with the same seed produce identical sequences.
func New(seed int64) Source {
	return &mathRandSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *mathRandSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
