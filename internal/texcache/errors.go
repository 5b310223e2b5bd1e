package texcache

import "errors"

var (
	// ErrUnsupportedPackFormat is returned when a resource pack path does
	// not have the .zip extension.
	ErrUnsupportedPackFormat = errors.New("unsupported resource pack format")

	// ErrAssetRootNotFound is returned when an extracted pack has no
	// assets/minecraft directory, even behind a wrapper directory.
	ErrAssetRootNotFound = errors.New("cannot find assets/minecraft in pack")
)
