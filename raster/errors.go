package raster

import "fmt"

// errConfigf reports a configuration error (spec.md §7): bad timing
// profile or degenerate perspective parameters, surfaced during
// initialisation rather than silently producing non-finite results.
func errConfigf(format string, args ...any) error {
	return fmt.Errorf("raster: configuration error: "+format, args...)
}
