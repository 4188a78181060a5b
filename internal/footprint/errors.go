package footprint

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for footprint calculations.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrNegativeInput indicates a negative activity quantity.
	// Distances, consumption, and waste amounts cannot be negative.
	ErrNegativeInput = constError("negative input value")

	// ErrRecyclingOutOfRange indicates a recycling percentage outside 0-100.
	ErrRecyclingOutOfRange = constError("recycling percent out of range")

	// ErrUnknownCountry indicates the country does not key into the
	// configured factor table.
	ErrUnknownCountry = constError("unknown country")

	// ErrUnknownTransportMode indicates a transport mode missing from the
	// country's transport factors.
	ErrUnknownTransportMode = constError("unknown transport mode")

	// ErrUnknownDietType indicates a diet type missing from the country's
	// diet factors.
	ErrUnknownDietType = constError("unknown diet type")
)
