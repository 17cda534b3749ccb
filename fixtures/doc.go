// Package fixtures generates deterministic synthetic point clouds for
// tests: uniform-random, clustered, and grid-aligned layouts, each built
// under a seeded RNG option following the same WithSeed config pattern
// used throughout this module, trimmed to this domain's Point type.
package fixtures
