// Package main implements a concurrency simulation for the in-memory EventStore.
//
// Every task inserts one event, queries its own type in a window around the event's timestamp,
// walks the snapshot until it meets its own event and removes it through the iterator with a
// configurable probability. While the tasks run on a bounded worker pool, the simulation tallies
// how many events of each type were inserted and removed. Afterwards it compares the tallies with
// CountByType and Count and prints a JSON report to stdout.
//
// The event generator never hands out the same (type, timestamp) pair twice in one run, so every
// event in the store is owned by exactly one task.
//
// Configuration is read from a YAML (*.yaml, *.yml) or TOML (*.toml) file and can be overridden
// with flags:
//
//	go run ./example/simulation/cmd -config sim.yaml -workers 64 -tasks 200000
//
// The process exits with status 1 if the configuration is invalid or any count does not match.
package main
