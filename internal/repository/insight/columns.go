package insight

import "github.com/insightwires/newsmeta/internal/domain/filter"

// columnKind selects the comparison strategy for a direct column.
type columnKind int

const (
	columnText    columnKind = iota // case-insensitive substring match
	columnNumeric                   // integer coercion + equality
	columnExact                     // equality
)

// column is one entry of the direct-column table: a filter name resolved to
// a concrete insightwire column and its comparison strategy. Built once at
// startup; no runtime reflection.
type column struct {
	name string
	kind columnKind
}

// directColumns maps the recognized non-taxonomy filter names to columns on
// the primary table. These back the legacy substring search over the
// denormalized taxonomy renderings.
var directColumns = map[string]column{
	"uuid":                {"uuid", columnExact},
	"rss_id":              {"rss_id", columnNumeric},
	"title":               {"title", columnText},
	"lead_paragraph":      {"lead_paragraph", columnText},
	"story":               {"story", columnText},
	"news_url":            {"news_url", columnText},
	"image_url":           {"image_url", columnText},
	"companies":           {"companies", columnText},
	"business_activities": {"business_activities", columnText},
	"custom_topics":       {"custom_topics", columnText},
	"industries":          {"industries", columnText},
	"sentiment":           {"sentiment", columnText},
	"type_of_source":      {"type_of_source", columnText},
	"type_of_content":     {"type_of_content", columnText},
	"sources":             {"sources", columnText},
	"locations":           {"locations", columnText},
	"content_languages":   {"content_languages", columnText},
}

// DirectFilters lists the recognized direct-column filter names.
func DirectFilters() []string {
	names := make([]string, 0, len(directColumns))
	for name := range directColumns {
		names = append(names, name)
	}
	return names
}

// junction is one insight-to-taxonomy mapping relation.
type junction struct {
	table  string
	column string
}

// junctions maps each canonical taxonomy filter to its junction table.
var junctions = map[string]junction{
	filter.CompanyID:          {"company_mapping", "company_id"},
	filter.BusinessActivityID: {"business_activity_mapping", "business_activity_id"},
	filter.ContentTypeID:      {"content_type_mapping", "content_type_id"},
	filter.IndustryTypeID:     {"industry_mapping", "industry_type_id"},
	filter.LocationID:         {"location_mapping", "location_id"},
	filter.SourceTypeID:       {"source_type_mapping", "source_type_id"},
	filter.SentimentTypeID:    {"sentiment_mapping", "sentiment_type_id"},
}
