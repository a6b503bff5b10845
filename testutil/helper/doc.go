// Package helper provides test doubles and fixtures for testing event store implementations.
//
// LogHandlerSpy and MetricsCollectorSpy capture observability output with fluent matchers,
// the fixture functions arrange stores and drain iterators.
package helper
