// Package random provides the shared pseudo-random source used by the
// User-Agent builders and corpus categories.
//
// All helpers draw from a single mutex-guarded *rand.Rand so that callers on
// different goroutines never race on generator state. The source is seeded
// from the wall clock at start-up; call Seed to make a run reproducible
// (for example from the USERAGENTS_SEED configuration value).
//
// # Usage
//
//	version := random.Pick(chrome.KnownVersions())
//	n := random.Intn(10)
//
//	random.Seed(42) // deterministic output from here on
//
// Pick and PickOptional panic on an empty slice in the same way
// rand.Intn panics on a non-positive bound. Callers sampling from filtered
// data must check the length first.
package random
