package events

import "testing"

func TestSubjects(t *testing.T) {
	if got := SubjectWardSelected("41"); got != "civic.ward.41.selected" {
		t.Errorf("unexpected subject %q", got)
	}
	if got := SubjectReportCreated("abc-123"); got != "civic.report.abc-123.created" {
		t.Errorf("unexpected subject %q", got)
	}
	if SubjectDatasetReloaded != "civic.dataset.reloaded" {
		t.Errorf("unexpected subject %q", SubjectDatasetReloaded)
	}
}
