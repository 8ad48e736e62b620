package floor

import "fmt"

// CheckForSecretPassages joins every remaining cave with secret passages.
//
// Each round links all borders (FullyConnect), traces narrow unit-cost
// corridors, paints them with SecretBrush, smooths once without new walls
// and recomputes the borders. A round that fails to reduce the border count
// makes the next round strict. More than MaxSecretRounds rounds fail with
// ErrSecretRounds.
func (s *Smoothed) CheckForSecretPassages() (*HasSecretPassages, error) {
	b := take(&s.b)
	b.borders = b.findBorders()

	for round := 1; len(b.borders) > 1; round++ {
		if round > b.params.MaxSecretRounds {
			return nil, failed(fmt.Errorf("%w: %d caves left after %d rounds",
				ErrSecretRounds, len(b.borders), b.params.MaxSecretRounds))
		}
		before := len(b.borders)

		smoothed := (&HasBorders{b: b}).
			BuildConnections(FullyConnect()).
			TraceConnectionPaths(false, false).
			Draw(SecretBrush).
			Smoothen(0, Never)
		b = take(&smoothed.b)

		b.borders = b.findBorders()
		b.strict = len(b.borders) >= before
		b.log.Debug("secret round", "round", round, "before", before, "after", len(b.borders), "strict", b.strict)
	}
	b.borders, b.strict = nil, false

	return &HasSecretPassages{b: b}, nil
}
