package events

import "time"

const (
	SubjectDatasetReloaded = "civic.dataset.reloaded"

	StreamName   = "CIVIC_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectWardSelected(wardID string) string  { return "civic.ward." + wardID + ".selected" }
func SubjectReportCreated(reportID string) string { return "civic.report." + reportID + ".created" }

type WardSelectedEvent struct {
	WardID        string    `json:"ward_id"`
	WardName      string    `json:"ward_name"`
	CompositeRisk float64   `json:"composite_risk"`
	Timestamp     time.Time `json:"timestamp"`
}

type ReportCreatedEvent struct {
	ReportID  string    `json:"report_id"`
	Ward      string    `json:"ward"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

type DatasetReloadedEvent struct {
	Districts int       `json:"districts"`
	Timestamp time.Time `json:"timestamp"`
}
