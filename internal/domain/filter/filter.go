// Package filter declares the recognized insight search filters, their
// plural aliases, and the static valid-value domains each taxonomy accepts.
// Domains are configuration, not derived from live table contents.
package filter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Canonical taxonomy filter names.
const (
	CompanyID          = "company_id"
	BusinessActivityID = "business_activity_id"
	ContentTypeID      = "content_type_id"
	IndustryTypeID     = "industry_type_id"
	LocationID         = "location_id"
	SourceTypeID       = "source_type_id"
	SentimentTypeID    = "sentiment_type_id"
)

// Date range and pagination parameter names.
const (
	StartDate = "start_date"
	EndDate   = "end_date"
	Page      = "page"
	Limit     = "limit"
)

// aliases maps plural filter names to their canonical singular form.
var aliases = map[string]string{
	"company_ids":           CompanyID,
	"business_activity_ids": BusinessActivityID,
	"content_type_ids":      ContentTypeID,
	"industry_type_ids":     IndustryTypeID,
	"location_ids":          LocationID,
	"source_type_ids":       SourceTypeID,
	"sentiment_type_ids":    SentimentTypeID,
}

// plurals is the reverse of aliases.
var plurals = func() map[string]string {
	m := make(map[string]string, len(aliases))
	for plural, singular := range aliases {
		m[singular] = plural
	}
	return m
}()

// Taxonomies lists the canonical taxonomy filters in the order the query
// builder applies them.
var Taxonomies = []string{
	CompanyID,
	BusinessActivityID,
	ContentTypeID,
	IndustryTypeID,
	LocationID,
	SourceTypeID,
	SentimentTypeID,
}

// Domain is the declared valid-value set for a taxonomy filter: either a
// small explicit enumeration or a contiguous inclusive integer range.
type Domain struct {
	values   []int
	min, max int
}

// Enum declares an explicit enumeration domain.
func Enum(values ...int) Domain {
	return Domain{values: values}
}

// Span declares a contiguous inclusive integer range domain.
func Span(min, max int) Domain {
	return Domain{min: min, max: max}
}

// Contains reports whether v lies in the domain.
func (d Domain) Contains(v int) bool {
	if len(d.values) > 0 {
		for _, dv := range d.values {
			if dv == v {
				return true
			}
		}
		return false
	}
	return v >= d.min && v <= d.max
}

// describe renders the valid values for an error message: small
// enumerations are listed in full, ranges state the inclusive bounds.
func (d Domain) describe() string {
	if len(d.values) > 0 && len(d.values) <= 10 {
		parts := make([]string, len(d.values))
		for i, v := range d.values {
			parts[i] = strconv.Itoa(v)
		}
		return "must be one of [" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("must be between %d and %d", d.min, d.max)
}

// domains holds the static valid-value configuration per canonical filter.
var domains = map[string]Domain{
	SentimentTypeID:    Enum(-1, 0, 1),
	BusinessActivityID: Span(100, 134),
	CompanyID:          Span(10000000, 10123991),
	ContentTypeID:      Span(401, 437),
	IndustryTypeID:     Span(300, 421),
	LocationID:         Span(300, 437),
	SourceTypeID:       Span(900, 906),
}

// Canonical resolves a plural alias to its singular filter name.
// Unaliased names pass through unchanged.
func Canonical(name string) string {
	if singular, ok := aliases[name]; ok {
		return singular
	}
	return name
}

// Plural returns the plural alias of a canonical taxonomy filter.
func Plural(name string) string {
	return plurals[name]
}

// DomainOf returns the declared domain for a filter name (after alias
// resolution) and whether one exists.
func DomainOf(name string) (Domain, bool) {
	d, ok := domains[Canonical(name)]
	return d, ok
}

// Validate checks a raw value against the filter's declared domain.
// Filters without a domain accept any value. Returns ok plus a message
// naming the problem when the value is rejected. Pure function of static
// configuration.
func Validate(name, raw string) (bool, string) {
	canonical := Canonical(name)
	d, ok := domains[canonical]
	if !ok {
		return true, ""
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Sprintf("%s must be an integer, got %q", canonical, raw)
	}
	if !d.Contains(v) {
		return false, fmt.Sprintf("%s %s", canonical, d.describe())
	}
	return true, ""
}

// Accepted returns every recognized filter parameter name, sorted, for
// error messages on unfiltered requests.
func Accepted() []string {
	names := make([]string, 0, 2*len(Taxonomies)+4)
	for _, name := range Taxonomies {
		names = append(names, name, plurals[name])
	}
	names = append(names, StartDate, EndDate, Page, Limit)
	sort.Strings(names)
	return names
}

// IsPagination reports whether the parameter only controls paging.
func IsPagination(name string) bool {
	return name == Page || name == Limit
}

// Params is a transient mapping of recognized filter names to raw values.
type Params map[string]string

// TaxonomyValue returns the raw value for a taxonomy filter, checking the
// singular name first and falling back to the plural alias, preferring
// whichever is non-empty.
func (p Params) TaxonomyValue(canonical string) string {
	if v := strings.TrimSpace(p[canonical]); v != "" {
		return v
	}
	return strings.TrimSpace(p[plurals[canonical]])
}

// HasSearchFilter reports whether any non-pagination filter is present with
// a non-empty value. The service refuses unfiltered full-table scans.
func (p Params) HasSearchFilter() bool {
	for name, value := range p {
		if IsPagination(name) {
			continue
		}
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
