package stereofy

import "errors"

var (
	// ErrOpenSource indicates the input could not be opened or decoded
	ErrOpenSource = errors.New("failed to open input")

	// ErrOpenDestination indicates the output could not be created
	ErrOpenDestination = errors.New("failed to open output")

	// ErrEmptyStream indicates an input with zero frames or zero channels
	ErrEmptyStream = errors.New("input has no frames or no channels")

	// ErrRead indicates a decode failure in the middle of the stream
	ErrRead = errors.New("failed to read samples")

	// ErrWrite indicates a failure writing the output stream
	ErrWrite = errors.New("failed to write samples")
)
