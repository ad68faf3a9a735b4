package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewEnvelope_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		limit    int
		wantPrev *int
		wantNext *int
	}{
		{"first page with more", 45, 1, 20, nil, intPtr(2)},
		{"middle page", 45, 2, 20, intPtr(1), intPtr(3)},
		{"last partial page", 45, 3, 20, intPtr(2), nil},
		{"exact boundary", 40, 2, 20, intPtr(1), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := NewEnvelope(tc.total, tc.page, tc.limit, nil, MsgRecordsFound)

			if !pagesEqual(env.PrevPage, tc.wantPrev) {
				t.Errorf("prev_page = %v, want %v", fmtPage(env.PrevPage), fmtPage(tc.wantPrev))
			}
			if !pagesEqual(env.NextPage, tc.wantNext) {
				t.Errorf("next_page = %v, want %v", fmtPage(env.NextPage), fmtPage(tc.wantNext))
			}
		})
	}
}

func TestEnvelope_MarshalsNullBoundariesAndEmptyData(t *testing.T) {
	env := EmptyEnvelope(1, 20, MsgNoRecords)

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)

	if !strings.Contains(s, `"prev_page":null`) {
		t.Errorf("expected prev_page null, got %s", s)
	}
	if !strings.Contains(s, `"next_page":null`) {
		t.Errorf("expected next_page null, got %s", s)
	}
	if !strings.Contains(s, `"data":[]`) {
		t.Errorf("expected empty data array, got %s", s)
	}
}

func pagesEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPage(p *int) any {
	if p == nil {
		return "null"
	}
	return *p
}

func intPtr(v int) *int { return &v }
