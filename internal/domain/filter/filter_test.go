package filter

import (
	"strings"
	"testing"
)

func TestValidate_DomainBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{SentimentTypeID, "-1", true},
		{SentimentTypeID, "0", true},
		{SentimentTypeID, "1", true},
		{SentimentTypeID, "2", false},
		{SentimentTypeID, "-2", false},
		{BusinessActivityID, "100", true},
		{BusinessActivityID, "134", true},
		{BusinessActivityID, "99", false},
		{BusinessActivityID, "135", false},
		{CompanyID, "10000000", true},
		{CompanyID, "10123991", true},
		{CompanyID, "9999999", false},
		{ContentTypeID, "401", true},
		{ContentTypeID, "437", true},
		{ContentTypeID, "400", false},
		{IndustryTypeID, "300", true},
		{IndustryTypeID, "421", true},
		{IndustryTypeID, "299", false},
		{IndustryTypeID, "422", false},
		{LocationID, "300", true},
		{LocationID, "437", true},
		{LocationID, "299", false},
		{SourceTypeID, "900", true},
		{SourceTypeID, "906", true},
		{SourceTypeID, "899", false},
		{SourceTypeID, "907", false},
	}

	for _, tc := range tests {
		t.Run(tc.name+"/"+tc.value, func(t *testing.T) {
			ok, msg := Validate(tc.name, tc.value)
			if ok != tc.ok {
				t.Fatalf("Validate(%s, %s) ok=%v, want %v (msg %q)", tc.name, tc.value, ok, tc.ok, msg)
			}
			if !ok && msg == "" {
				t.Error("rejected value must carry a message")
			}
			if ok && msg != "" {
				t.Errorf("accepted value must not carry a message, got %q", msg)
			}
		})
	}
}

func TestValidate_PluralAliasSharesDomain(t *testing.T) {
	ok, _ := Validate("sentiment_type_ids", "1")
	if !ok {
		t.Error("plural alias rejected a value the singular accepts")
	}
	ok, msg := Validate("sentiment_type_ids", "5")
	if ok {
		t.Error("plural alias accepted a value outside the domain")
	}
	if !strings.Contains(msg, SentimentTypeID) {
		t.Errorf("message should name the canonical filter, got %q", msg)
	}
}

func TestValidate_NonInteger(t *testing.T) {
	ok, msg := Validate(IndustryTypeID, "steel")
	if ok {
		t.Fatal("non-integer value accepted")
	}
	if !strings.Contains(msg, "integer") {
		t.Errorf("message should name the expected type, got %q", msg)
	}
}

func TestValidate_EnumMessageEnumeratesValues(t *testing.T) {
	_, msg := Validate(SentimentTypeID, "3")
	for _, want := range []string{"-1", "0", "1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("enum message should list %s, got %q", want, msg)
		}
	}
}

func TestValidate_RangeMessageStatesBounds(t *testing.T) {
	_, msg := Validate(IndustryTypeID, "9999")
	if !strings.Contains(msg, "300") || !strings.Contains(msg, "421") {
		t.Errorf("range message should state inclusive bounds, got %q", msg)
	}
}

func TestValidate_UndeclaredFilterPassesThrough(t *testing.T) {
	ok, msg := Validate("title", "anything at all")
	if !ok || msg != "" {
		t.Errorf("pass-through filter rejected: ok=%v msg=%q", ok, msg)
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("company_ids"); got != CompanyID {
		t.Errorf("Canonical(company_ids) = %q", got)
	}
	if got := Canonical(CompanyID); got != CompanyID {
		t.Errorf("Canonical(company_id) = %q", got)
	}
	if got := Canonical("unknown"); got != "unknown" {
		t.Errorf("Canonical(unknown) = %q", got)
	}
}

func TestParams_TaxonomyValue(t *testing.T) {
	p := Params{"location_ids": "305"}
	if got := p.TaxonomyValue(LocationID); got != "305" {
		t.Errorf("plural fallback failed, got %q", got)
	}

	p = Params{LocationID: "306", "location_ids": "305"}
	if got := p.TaxonomyValue(LocationID); got != "306" {
		t.Errorf("singular should win when both set, got %q", got)
	}

	p = Params{LocationID: "  ", "location_ids": "305"}
	if got := p.TaxonomyValue(LocationID); got != "305" {
		t.Errorf("blank singular should fall back to plural, got %q", got)
	}
}

func TestParams_HasSearchFilter(t *testing.T) {
	if (Params{Page: "2", Limit: "50"}).HasSearchFilter() {
		t.Error("pagination-only params counted as a search filter")
	}
	if !(Params{Page: "2", StartDate: "2024-01-01"}).HasSearchFilter() {
		t.Error("date range not counted as a search filter")
	}
	if (Params{CompanyID: "   "}).HasSearchFilter() {
		t.Error("blank value counted as a search filter")
	}
}

func TestAccepted_ListsEveryRecognizedName(t *testing.T) {
	got := Accepted()
	want := []string{
		"business_activity_id", "business_activity_ids",
		"company_id", "company_ids",
		"content_type_id", "content_type_ids",
		"end_date", "industry_type_id", "industry_type_ids",
		"limit", "location_id", "location_ids",
		"page", "sentiment_type_id", "sentiment_type_ids",
		"source_type_id", "source_type_ids", "start_date",
	}
	if len(got) != len(want) {
		t.Fatalf("Accepted() returned %d names, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Accepted()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
