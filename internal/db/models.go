package db

import "time"

// InsightRow is the primary news item table. Rows are written by the
// ingestion pipeline and read-only here.
type InsightRow struct {
	UUID               string    `gorm:"column:uuid;primaryKey"`
	RSSID              int       `gorm:"column:rss_id"`
	Title              string    `gorm:"column:title"`
	LeadParagraph      string    `gorm:"column:lead_paragraph"`
	Story              string    `gorm:"column:story"`
	NewsURL            string    `gorm:"column:news_url"`
	ImageURL           string    `gorm:"column:image_url"`
	PublishedDate      time.Time `gorm:"column:published_date"`
	Companies          string    `gorm:"column:companies"`
	BusinessActivities string    `gorm:"column:business_activities"`
	CustomTopics       string    `gorm:"column:custom_topics"`
	Industries         string    `gorm:"column:industries"`
	Sentiment          string    `gorm:"column:sentiment"`
	TypeOfSource       string    `gorm:"column:type_of_source"`
	TypeOfContent      string    `gorm:"column:type_of_content"`
	Sources            string    `gorm:"column:sources"`
	Locations          string    `gorm:"column:locations"`
	ContentLanguages   string    `gorm:"column:content_languages"`
	SystemTimestamp    time.Time `gorm:"column:system_timestamp"`
}

// TableName maps the struct to the legacy table name.
func (InsightRow) TableName() string { return "insightwire" }

// CompanyMapping joins insights to company taxonomy identifiers.
// The composite (insight, taxonomy id) pair is unique; rows are append-only.
type CompanyMapping struct {
	InsightwireUUID string    `gorm:"column:insightwire_uuid;primaryKey"`
	CompanyID       int       `gorm:"column:company_id;primaryKey"`
	SystemTimestamp time.Time `gorm:"column:system_timestamp"`
}

func (CompanyMapping) TableName() string { return "company_mapping" }

// BusinessActivityMapping joins insights to business activity identifiers.
type BusinessActivityMapping struct {
	InsightwireUUID    string    `gorm:"column:insightwire_uuid;primaryKey"`
	BusinessActivityID int       `gorm:"column:business_activity_id;primaryKey"`
	SystemTimestamp    time.Time `gorm:"column:system_timestamp"`
}

func (BusinessActivityMapping) TableName() string { return "business_activity_mapping" }

// ContentTypeMapping joins insights to content type identifiers.
type ContentTypeMapping struct {
	InsightwireUUID string    `gorm:"column:insightwire_uuid;primaryKey"`
	ContentTypeID   int       `gorm:"column:content_type_id;primaryKey"`
	SystemTimestamp time.Time `gorm:"column:system_timestamp"`
}

func (ContentTypeMapping) TableName() string { return "content_type_mapping" }

// IndustryMapping joins insights to industry identifiers.
type IndustryMapping struct {
	InsightwireUUID string    `gorm:"column:insightwire_uuid;primaryKey"`
	IndustryTypeID  int       `gorm:"column:industry_type_id;primaryKey"`
	SystemTimestamp time.Time `gorm:"column:system_timestamp"`
}

func (IndustryMapping) TableName() string { return "industry_mapping" }

// LocationMapping joins insights to location identifiers.
type LocationMapping struct {
	InsightwireUUID string    `gorm:"column:insightwire_uuid;primaryKey"`
	LocationID      int       `gorm:"column:location_id;primaryKey"`
	SystemTimestamp time.Time `gorm:"column:system_timestamp"`
}

func (LocationMapping) TableName() string { return "location_mapping" }

// SentimentMapping joins insights to sentiment polarity identifiers.
type SentimentMapping struct {
	InsightwireUUID string    `gorm:"column:insightwire_uuid;primaryKey"`
	SentimentTypeID int       `gorm:"column:sentiment_type_id;primaryKey"`
	SystemTimestamp time.Time `gorm:"column:system_timestamp"`
}

func (SentimentMapping) TableName() string { return "sentiment_mapping" }

// SourceTypeMapping joins insights to source type identifiers.
type SourceTypeMapping struct {
	InsightwireUUID string    `gorm:"column:insightwire_uuid;primaryKey"`
	SourceTypeID    int       `gorm:"column:source_type_id;primaryKey"`
	SystemTimestamp time.Time `gorm:"column:system_timestamp"`
}

func (SourceTypeMapping) TableName() string { return "source_type_mapping" }
