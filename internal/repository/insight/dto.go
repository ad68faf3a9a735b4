package insight

import (
	"github.com/insightwires/newsmeta/internal/db"
	"github.com/insightwires/newsmeta/internal/domain"
)

func rowToDomain(row *db.InsightRow) domain.Insight {
	return domain.Insight{
		UUID:               row.UUID,
		RSSID:              row.RSSID,
		Title:              row.Title,
		LeadParagraph:      row.LeadParagraph,
		Story:              row.Story,
		NewsURL:            row.NewsURL,
		ImageURL:           row.ImageURL,
		PublishedDate:      row.PublishedDate,
		Companies:          row.Companies,
		BusinessActivities: row.BusinessActivities,
		CustomTopics:       row.CustomTopics,
		Industries:         row.Industries,
		Sentiment:          row.Sentiment,
		TypeOfSource:       row.TypeOfSource,
		TypeOfContent:      row.TypeOfContent,
		Sources:            row.Sources,
		Locations:          row.Locations,
		ContentLanguages:   row.ContentLanguages,
		SystemTimestamp:    row.SystemTimestamp,
	}
}

func rowsToDomain(rows []db.InsightRow) []domain.Insight {
	out := make([]domain.Insight, len(rows))
	for i := range rows {
		out[i] = rowToDomain(&rows[i])
	}
	return out
}
