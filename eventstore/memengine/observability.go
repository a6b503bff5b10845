package memengine

import (
	"math"
	"time"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

// logDebug logs per-event details at debug level if the logger is configured.
func (es *EventStore) logDebug(action string, args ...any) {
	if es.logger != nil {
		es.logger.Debug(logMsgOperation+action, es.withStoreAttr(args)...)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (es *EventStore) logOperation(action string, args ...any) {
	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, es.withStoreAttr(args)...)
	}
}

// logWarn logs unexpected but recoverable situations at warn level if the logger is configured.
func (es *EventStore) logWarn(message string, args ...any) {
	if es.logger != nil {
		es.logger.Warn(message, es.withStoreAttr(args)...)
	}
}

func (es *EventStore) withStoreAttr(args []any) []any {
	allArgs := make([]any, 0, len(args)+2)
	allArgs = append(allArgs, logAttrStore, es.storeName)

	return append(allArgs, args...)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (es *EventStore) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/durationMillisecondsDivisor*1000) / 1000
}

func (es *EventStore) metricLabels(operation, status string, eventType eventstore.EventTypeString) map[string]string {
	return map[string]string{
		labelOperation: operation,
		labelStatus:    status,
		labelEventType: eventType,
		labelStore:     es.storeName,
	}
}

// recordCounter increments a counter if the metrics collector is configured.
func (es *EventStore) recordCounter(metricName, operation, status string, eventType eventstore.EventTypeString) {
	if es.metricsCollector != nil {
		es.metricsCollector.IncrementCounter(metricName, es.metricLabels(operation, status, eventType))
	}
}

// recordDuration records a duration if the metrics collector is configured.
func (es *EventStore) recordDuration(
	metricName string,
	duration time.Duration,
	operation, status string,
	eventType eventstore.EventTypeString,
) {
	if es.metricsCollector != nil {
		es.metricsCollector.RecordDuration(metricName, duration, es.metricLabels(operation, status, eventType))
	}
}

// recordValue records a value if the metrics collector is configured.
func (es *EventStore) recordValue(
	metricName string,
	value float64,
	operation, status string,
	eventType eventstore.EventTypeString,
) {
	if es.metricsCollector != nil {
		es.metricsCollector.RecordValue(metricName, value, es.metricLabels(operation, status, eventType))
	}
}

// === Observation of completed operations ===
// Every method below runs after the store's mutex has been released.

func (es *EventStore) observeInsert(event eventstore.Event, inserted bool) {
	status := statusSuccess
	if !inserted {
		status = statusNoop
	}

	es.logDebug(
		logMsgEventInserted,
		logAttrEventType, event.Type(),
		logAttrTimestamp, event.Timestamp(),
		logAttrInserted, inserted,
	)

	es.recordCounter(metricInsertTotal, operationInsert, status, event.Type())
}

func (es *EventStore) observeRemoveAll(eventType eventstore.EventTypeString, removed int) {
	status := statusSuccess
	if removed == 0 {
		status = statusNoop
	}

	es.logOperation(logMsgEventsRemovedByType, logAttrEventType, eventType, logAttrEventCount, removed)

	es.recordCounter(metricRemoveAllTotal, operationRemoveAll, status, eventType)
	es.recordValue(metricEventsRemoved, float64(removed), operationRemoveAll, status, eventType)
}

func (es *EventStore) observeRemove(event eventstore.Event, removed bool) {
	if !removed {
		es.logWarn(logMsgRemoveFoundNoEvent, logAttrEventType, event.Type(), logAttrTimestamp, event.Timestamp())
		es.recordCounter(metricRemoveTotal, operationRemove, statusMiss, event.Type())

		return
	}

	es.logDebug(logMsgEventRemoved, logAttrEventType, event.Type(), logAttrTimestamp, event.Timestamp())
	es.recordCounter(metricRemoveTotal, operationRemove, statusSuccess, event.Type())
	es.recordValue(metricEventsRemoved, 1, operationRemove, statusSuccess, event.Type())
}

func (es *EventStore) observeQuery(filter eventstore.Filter, eventCount int, duration time.Duration) {
	es.logOperation(
		logMsgQueryCompleted,
		logAttrEventType, filter.EventType(),
		logAttrOccurredFrom, filter.OccurredFrom(),
		logAttrOccurredUntil, filter.OccurredUntil(),
		logAttrEventCount, eventCount,
		logAttrDurationMS, es.toMilliseconds(duration),
	)

	es.recordDuration(metricQueryDuration, duration, operationQuery, statusSuccess, filter.EventType())
	es.recordValue(metricEventsQueried, float64(eventCount), operationQuery, statusSuccess, filter.EventType())
}
