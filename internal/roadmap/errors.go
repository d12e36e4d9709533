package roadmap

import "errors"

var (
	// ErrMalformedResponse means no JSON object span could be located in the
	// raw model output.
	ErrMalformedResponse = errors.New("no valid JSON object found in response")

	// ErrUnparsableResponse means the response still failed to parse after
	// syntactic repair.
	ErrUnparsableResponse = errors.New("could not parse JSON response")

	// ErrGenerationExhausted means every generation attempt failed; callers
	// are expected to fall back to a synthetic roadmap.
	ErrGenerationExhausted = errors.New("failed to generate valid roadmap after multiple attempts")
)
