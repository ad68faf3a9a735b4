package domain

import (
	"bytes"
	"encoding/json"
)

// Record field keys, in the public response schema order.
const (
	KeyStoryID            = "story_id"
	KeyTitle              = "title"
	KeyLeadParagraph      = "lead_paragraph"
	KeyStory              = "story"
	KeyPublishedDate      = "published_date"
	KeyNewsURL            = "news_url"
	KeyImageURL           = "image_url"
	KeyTypeOfContent      = "type_of_content"
	KeyTypeOfSource       = "type_of_source"
	KeySources            = "sources"
	KeyBusinessActivities = "business_activities"
	KeyIndustries         = "industries"
	KeyLocations          = "locations"
	KeyContentLanguages   = "content_languages"
	KeySentiment          = "sentiment"
)

// SchemaKeys is the fixed key order of a normalized record.
var SchemaKeys = []string{
	KeyStoryID,
	KeyTitle,
	KeyLeadParagraph,
	KeyStory,
	KeyPublishedDate,
	KeyNewsURL,
	KeyImageURL,
	KeyTypeOfContent,
	KeyTypeOfSource,
	KeySources,
	KeyBusinessActivities,
	KeyIndustries,
	KeyLocations,
	KeyContentLanguages,
	KeySentiment,
}

// Record is a normalized insight response object. Keys marshal in schema
// order, and absent fields are omitted entirely rather than emitted as null:
// consumers treat a missing key and a null value as equivalent.
type Record struct {
	keys   []string
	values map[string]string
}

// Add appends a field in insertion order. Empty values are dropped so the
// marshaled object never carries absent fields.
func (r *Record) Add(key, value string) {
	if value == "" {
		return
	}
	if r.values == nil {
		r.values = make(map[string]string, len(SchemaKeys))
	}
	if _, dup := r.values[key]; !dup {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for a key and whether the key is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of present fields.
func (r *Record) Len() int { return len(r.keys) }

// MarshalJSON emits the record as a JSON object preserving insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a record from a JSON object. Key order follows
// SchemaKeys for known keys; unknown keys are appended afterwards.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.keys = nil
	r.values = nil
	for _, key := range SchemaKeys {
		if v, ok := raw[key]; ok {
			r.Add(key, v)
			delete(raw, key)
		}
	}
	for key, v := range raw {
		r.Add(key, v)
	}
	return nil
}
