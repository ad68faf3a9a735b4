// Package taxonomy serves the static code lists: listing and term search
// over any taxonomy, company lookup by name or URL, and queuing of
// company add-requests.
package taxonomy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insightwires/newsmeta/internal/domain"
)

// StatusPending is the initial state of a queued company add-request.
const StatusPending = "pending"

// Service handles taxonomy reads and company add-requests.
type Service struct {
	store Store
}

// New creates a taxonomy service.
func New(store Store) *Service {
	return &Service{store: store}
}

// List returns the records of the named taxonomy, optionally narrowed by a
// case-insensitive substring term. When field is set only that field is
// matched, otherwise every field is.
func (s *Service) List(_ context.Context, name, term, field string) ([]Entry, error) {
	entries, err := s.store.Load(name)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return entries, nil
	}

	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entryMatches(entry, term, field) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// SearchCompanies finds companies whose name or URL contains the given
// fragments. At least one of name or url must be provided; when both are,
// a company matching either is returned.
func (s *Service) SearchCompanies(_ context.Context, name, url string) ([]Entry, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" && url == "" {
		return nil, domain.NewValidation("name", "provide a company name or url to search for")
	}

	entries, err := s.store.Load("companies")
	if err != nil {
		return nil, err
	}

	matched := make([]Entry, 0)
	for _, entry := range entries {
		if name != "" && fieldContains(entry, "name", name) {
			matched = append(matched, entry)
			continue
		}
		if url != "" && fieldContains(entry, "url", url) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// RequestCompany queues an add-request for a company not yet in the
// taxonomy. A company already present under the same name is rejected
// with ErrCompanyExists.
func (s *Service) RequestCompany(_ context.Context, name, url string) (domain.CompanyRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.CompanyRequest{}, domain.NewValidation("company_name", "must not be empty")
	}

	entries, err := s.store.Load("companies")
	if err != nil {
		return domain.CompanyRequest{}, err
	}
	for _, entry := range entries {
		if existing, ok := entry["name"].(string); ok && strings.EqualFold(existing, name) {
			return domain.CompanyRequest{},
				fmt.Errorf("%w: %s", domain.ErrCompanyExists, name)
		}
	}

	req := domain.CompanyRequest{
		ID:          uuid.NewString(),
		CompanyName: name,
		CompanyURL:  strings.TrimSpace(url),
		RequestedAt: time.Now().UTC(),
		Status:      StatusPending,
	}
	if err := s.store.AppendCompanyRequest(req); err != nil {
		return domain.CompanyRequest{}, fmt.Errorf("queue company request: %w", err)
	}
	return req, nil
}

func entryMatches(entry Entry, term, field string) bool {
	if field != "" {
		return fieldContains(entry, field, term)
	}
	for _, v := range entry {
		if valueContains(v, term) {
			return true
		}
	}
	return false
}

func fieldContains(entry Entry, field, term string) bool {
	v, ok := entry[field]
	if !ok {
		return false
	}
	return valueContains(v, term)
}

func valueContains(v any, term string) bool {
	return strings.Contains(
		strings.ToLower(fmt.Sprintf("%v", v)),
		strings.ToLower(term),
	)
}
