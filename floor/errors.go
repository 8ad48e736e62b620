package floor

import (
	"errors"
	"fmt"
)

// Sentinel errors for floor generation.
var (
	// ErrConsumed is the panic value when a builder state is used after its
	// transition already moved the payload on.
	ErrConsumed = errors.New("floor: builder state already consumed")

	// ErrGenerationFailed wraps every recoverable pipeline failure.
	ErrGenerationFailed = errors.New("floor: generation failed")

	// ErrNoPath indicates the original entrance→exit path could not be found.
	ErrNoPath = errors.New("floor: no path between entrance and exit")

	// ErrNoEndpoints indicates no entrance/exit pair at a suitable distance
	// was found within MaxEndpointSamples draws.
	ErrNoEndpoints = errors.New("floor: no suitable entrance/exit pair")

	// ErrSecretRounds indicates the secret-passage loop exceeded MaxSecretRounds.
	ErrSecretRounds = errors.New("floor: secret passage rounds exhausted")

	// ErrDisconnected indicates a finished floor still has more than one region.
	ErrDisconnected = errors.New("floor: finished floor is not a single region")

	// ErrBadParams indicates Params failed validation.
	ErrBadParams = errors.New("floor: invalid params")
)

// failed tags err as a generation failure while keeping it inspectable.
func failed(err error) error {
	return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
}

// GenerationError is returned by Create once every attempt has failed.
type GenerationError struct {
	ID       int
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("floor %d: gave up after %d attempts: %v", e.ID, e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
