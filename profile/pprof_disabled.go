//go:build !pprof

package profile

// Modes returns nil when built without the pprof build tag.
func Modes() []string { return nil }

// start returns a no-op implementation when built without the pprof tag.
func start(Config) interface{ Stop() } {
	return ignore{}
}
