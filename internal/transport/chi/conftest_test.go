package chi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/insightwires/newsmeta/internal/cache"
	"github.com/insightwires/newsmeta/internal/domain"
	"github.com/insightwires/newsmeta/internal/domain/filter"
	healthuc "github.com/insightwires/newsmeta/internal/usecase/health"
	insightuc "github.com/insightwires/newsmeta/internal/usecase/insight"
	taxonomyuc "github.com/insightwires/newsmeta/internal/usecase/taxonomy"
)

// stubRepo is an insight repository double.
type stubRepo struct {
	total int64
	rows  []domain.Insight
	err   error
	calls int
}

func (s *stubRepo) Search(
	_ context.Context, _ filter.Params, _, _ int,
) (int64, []domain.Insight, error) {
	s.calls++
	if s.err != nil {
		return 0, nil, s.err
	}
	return s.total, s.rows, nil
}

// stubStore is a taxonomy store double.
type stubStore struct {
	taxonomies map[string][]taxonomyuc.Entry
	appended   []domain.CompanyRequest
}

func (s *stubStore) Load(name string) ([]taxonomyuc.Entry, error) {
	entries, ok := s.taxonomies[name]
	if !ok {
		return nil, domain.ErrTaxonomyNotFound
	}
	return entries, nil
}

func (s *stubStore) AppendCompanyRequest(req domain.CompanyRequest) error {
	s.appended = append(s.appended, req)
	return nil
}

// stubPinger is a DB connectivity double.
type stubPinger struct{ err error }

func (s *stubPinger) Ping(context.Context) error { return s.err }

type serverFixture struct {
	repo   *stubRepo
	store  *stubStore
	pinger *stubPinger
	srv    *httptest.Server
}

func newFixture(t *testing.T, respCache cache.Cache) *serverFixture {
	t.Helper()

	f := &serverFixture{
		repo: &stubRepo{},
		store: &stubStore{taxonomies: map[string][]taxonomyuc.Entry{
			"sentiments": {
				{"id": float64(-1), "name": "negative"},
				{"id": float64(0), "name": "neutral"},
				{"id": float64(1), "name": "positive"},
			},
			"companies": {
				{"id": float64(10000001), "name": "Acme Corp", "url": "https://acme.example"},
			},
		}},
		pinger: &stubPinger{},
	}

	server := NewServer(
		insightuc.New(f.repo, 20, 100),
		taxonomyuc.New(f.store),
		healthuc.New(f.pinger, nil),
		respCache,
		zap.NewNop(),
	)

	r := chi.NewRouter()
	server.Routes(r)

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func sampleRows() []domain.Insight {
	return []domain.Insight{
		{
			UUID:          "a1",
			RSSID:         42,
			Title:         "Acme acquires Globex",
			LeadParagraph: "Deal closed yesterday.",
			NewsURL:       "https://news.example/acme",
			PublishedDate: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
			Sentiment:     "positive",
		},
	}
}
