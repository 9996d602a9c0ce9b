// Package testutil provides deterministic helpers for tests, chiefly a
// seeded, thread-safe random number generator used to fill mapped regions
// with reproducible data.
package testutil
