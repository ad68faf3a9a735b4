package domain

import "time"

// Insight is a single news item with its text, metadata, and the
// denormalized taxonomy renderings carried for legacy substring search.
// Records are produced by an external ingestion process and are immutable
// from this API's perspective.
type Insight struct {
	UUID               string
	RSSID              int
	Title              string
	LeadParagraph      string
	Story              string
	NewsURL            string
	ImageURL           string
	PublishedDate      time.Time
	Companies          string
	BusinessActivities string
	CustomTopics       string
	Industries         string
	Sentiment          string
	TypeOfSource       string
	TypeOfContent      string
	Sources            string
	Locations          string
	ContentLanguages   string
	SystemTimestamp    time.Time
}

// Normalize maps the insight onto the fixed public response schema.
// Fields absent on the record are omitted from the output, not set to null.
func (in *Insight) Normalize() Record {
	var r Record
	r.Add(KeyStoryID, in.UUID)
	r.Add(KeyTitle, in.Title)
	r.Add(KeyLeadParagraph, in.LeadParagraph)
	r.Add(KeyStory, in.Story)
	if !in.PublishedDate.IsZero() {
		r.Add(KeyPublishedDate, in.PublishedDate.UTC().Format(time.RFC3339))
	}
	r.Add(KeyNewsURL, in.NewsURL)
	r.Add(KeyImageURL, in.ImageURL)
	r.Add(KeyTypeOfContent, in.TypeOfContent)
	r.Add(KeyTypeOfSource, in.TypeOfSource)
	r.Add(KeySources, in.Sources)
	r.Add(KeyBusinessActivities, in.BusinessActivities)
	r.Add(KeyIndustries, in.Industries)
	r.Add(KeyLocations, in.Locations)
	r.Add(KeyContentLanguages, in.ContentLanguages)
	r.Add(KeySentiment, in.Sentiment)
	return r
}

// NormalizeInsights normalizes a page of insights preserving row order.
func NormalizeInsights(insights []Insight) []Record {
	records := make([]Record, len(insights))
	for i := range insights {
		records[i] = insights[i].Normalize()
	}
	return records
}
