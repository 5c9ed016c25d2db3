// Package profile provides optional runtime profiling for the texpr
// command.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime
// profiling with conditional compilation support. Profiling must be enabled
// at build time using the "pprof" build tag; without the tag, all operations
// are no-ops with zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
// The profiler is configured through a [Config] and started with
// [Config.Start]:
//
//	cfg := profile.Make(
//	    profile.WithMode("cpu"),
//	    profile.WithDir("/tmp/profiles"),
//	    profile.WithQuiet(true),
//	)
//	ctrl := cfg.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof).
//
// # Command-Line Usage
//
// The texpr command supports profiling through command-line flags when built
// with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	./texpr -p cpu fmt 'x^2+1'
//
//	# Enable heap profiling with custom output directory
//	./texpr --pprof-mode heap --pprof-dir ./profiles fmt 'x^2+1'
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/texpr/pprof   (Linux/Unix)
//	~/Library/Caches/texpr/pprof  (macOS)
//	%LocalAppData%\texpr\pprof    (Windows)
//
// # Analyzing Profile Data
//
// Use the go tool pprof command to analyze profile data:
//
//	# Analyze a CPU profile
//	go tool pprof ./texpr /tmp/profiles/cpu.pprof
//
//	# Open web UI with flame graphs
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// When built with the pprof tag, this package also imports [net/http/pprof],
// which registers HTTP handlers for live profiling at /debug/pprof/ if the
// application starts an HTTP server.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
