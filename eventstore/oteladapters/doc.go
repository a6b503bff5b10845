// Package oteladapters provides OpenTelemetry adapters for the eventstore observability interfaces.
// These adapters enable integration with OpenTelemetry for users who want
// plug-and-play observability without implementing the interfaces themselves.
//
//	meter := otel.Meter("eventstore")
//	store, _ := memengine.NewEventStore(
//		memengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		memengine.WithLogger(oteladapters.NewSlogBridgeLogger("eventstore")),
//	)
package oteladapters
