package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/shirou/gopsutil/process"

	"github.com/smtrad/challenge-eventstore/eventstore"
)

// TypeReport compares the tallies of one event type with what the store holds.
type TypeReport struct {
	EventType string `json:"event_type"`
	Inserted  int64  `json:"inserted"`
	Removed   int64  `json:"removed"`
	Expected  int64  `json:"expected"`
	Actual    int64  `json:"actual"`
	Match     bool   `json:"match"`
}

// Report is the JSON document printed after a run.
type Report struct {
	RunID           string       `json:"run_id"`
	Config          Config       `json:"config"`
	DurationMS      int64        `json:"duration_ms"`
	Types           []TypeReport `json:"types"`
	ExpectedTotal   int64        `json:"expected_total"`
	ActualTotal     int64        `json:"actual_total"`
	OwnEventMisses  int64        `json:"own_event_misses"`
	Mismatches      []string     `json:"mismatches"`
	ProcessRSSBytes uint64       `json:"process_rss_bytes,omitempty"`
	OK              bool         `json:"ok"`
}

// BuildReport compares the result of a run with the counts of the store.
func BuildReport(runID string, cfg Config, result Result, store eventstore.EventStore) Report {
	report := Report{
		RunID:          runID,
		Config:         cfg,
		DurationMS:     result.Duration.Milliseconds(),
		Types:          make([]TypeReport, 0, len(cfg.EventTypes)),
		OwnEventMisses: result.OwnEventMisses,
		Mismatches:     make([]string, 0),
	}

	eventTypes := slices.Clone(cfg.EventTypes)
	slices.Sort(eventTypes)

	for _, eventType := range eventTypes {
		typeReport := TypeReport{
			EventType: eventType,
			Inserted:  result.Inserted[eventType],
			Removed:   result.Removed[eventType],
			Actual:    store.CountByType(eventType),
		}
		typeReport.Expected = typeReport.Inserted - typeReport.Removed
		typeReport.Match = typeReport.Expected == typeReport.Actual

		if !typeReport.Match {
			report.Mismatches = append(report.Mismatches, fmt.Sprintf(
				"type %s: expected %d events, store holds %d", eventType, typeReport.Expected, typeReport.Actual,
			))
		}

		report.ExpectedTotal += typeReport.Expected
		report.Types = append(report.Types, typeReport)
	}

	report.ActualTotal = store.Count()
	if report.ActualTotal != report.ExpectedTotal {
		report.Mismatches = append(report.Mismatches, fmt.Sprintf(
			"total: expected %d events, store holds %d", report.ExpectedTotal, report.ActualTotal,
		))
	}

	if report.OwnEventMisses > 0 {
		report.Mismatches = append(report.Mismatches, fmt.Sprintf(
			"%d tasks did not find their own event", report.OwnEventMisses,
		))
	}

	report.OK = len(report.Mismatches) == 0

	return report
}

// processRSS returns the resident set size of this process, or 0 if it is not available.
func processRSS() uint64 {
	proc, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec
	if err != nil {
		return 0
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil || memInfo == nil {
		return 0
	}

	return memInfo.RSS
}

// WriteReport encodes the report as indented JSON.
func WriteReport(w io.Writer, report Report) error {
	encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(encoded))

	return err
}
