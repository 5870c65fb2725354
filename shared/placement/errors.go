package placement

import "errors"

var (
	// ErrArtifactLoad means an artifact file is missing or corrupt. It is only
	// returned while loading, never per request.
	ErrArtifactLoad = errors.New("artifact load failed")

	// ErrInvalidInput means a record or feature vector is out of bounds or
	// has the wrong shape.
	ErrInvalidInput = errors.New("invalid input")
)
