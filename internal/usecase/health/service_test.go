package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct{ err error }

func (m *mockPinger) Ping(context.Context) error { return m.err }

type mockChecker struct{ err error }

func (m *mockChecker) Check() error { return m.err }

func TestCheckAllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockChecker{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q, want %q", report.Status, Healthy)
	}
	if report.Checks["database"] != CheckOK {
		t.Errorf("database = %q, want ok", report.Checks["database"])
	}
	if report.Checks["taxonomies"] != CheckOK {
		t.Errorf("taxonomies = %q, want ok", report.Checks["taxonomies"])
	}
}

func TestCheckDatabaseDown(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("refused")}, &mockChecker{})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("Status = %q, want %q", report.Status, Degraded)
	}
	if report.Checks["database"] != CheckError {
		t.Errorf("database = %q, want error", report.Checks["database"])
	}
}

func TestCheckWithoutTaxonomyChecker(t *testing.T) {
	svc := New(&mockPinger{}, nil)

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q, want %q", report.Status, Healthy)
	}
	if _, ok := report.Checks["taxonomies"]; ok {
		t.Error("taxonomies check reported without a checker")
	}
}
