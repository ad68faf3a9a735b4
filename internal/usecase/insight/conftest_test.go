package insight

import (
	"context"
	"time"

	"github.com/insightwires/newsmeta/internal/domain"
	"github.com/insightwires/newsmeta/internal/domain/filter"
)

// mockRepo is a hand-rolled Repository double.
type mockRepo struct {
	total int64
	rows  []domain.Insight
	err   error

	gotParams filter.Params
	gotOffset int
	gotLimit  int
}

func (m *mockRepo) Search(
	_ context.Context, params filter.Params, offset, limit int,
) (int64, []domain.Insight, error) {
	m.gotParams = params
	m.gotOffset = offset
	m.gotLimit = limit
	if m.err != nil {
		return 0, nil, m.err
	}
	return m.total, m.rows, nil
}

func sampleInsights(n int) []domain.Insight {
	out := make([]domain.Insight, n)
	for i := range out {
		out[i] = domain.Insight{
			UUID:          string(rune('a' + i)),
			Title:         "story",
			PublishedDate: time.Date(2024, 3, 1+i, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}
