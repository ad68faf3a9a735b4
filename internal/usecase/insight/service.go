// Package insight implements the filtered, paginated insight search: it
// clamps pagination, delegates to the repository, and shapes every outcome
// into the uniform response envelope.
package insight

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/insightwires/newsmeta/internal/domain"
	"github.com/insightwires/newsmeta/internal/domain/filter"
	"github.com/insightwires/newsmeta/internal/logger"
)

// MsgSearchUnavailable is returned in place of results when the storage
// backend fails; the failure is logged, not surfaced.
const MsgSearchUnavailable = "search is temporarily unavailable, please retry"

// Service handles insight search with pagination.
type Service struct {
	repo         Repository
	defaultLimit int
	maxLimit     int
}

// New creates an insight search service.
func New(repo Repository, defaultLimit, maxLimit int) *Service {
	return &Service{repo: repo, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Search runs a filtered insight search and wraps the outcome in an
// envelope. Validation failures are returned as errors for the transport
// to map; storage failures are downgraded to an empty envelope so a flaky
// backend degrades to "no results" rather than a hard error.
func (s *Service) Search(ctx context.Context, params filter.Params) (domain.Envelope, error) {
	page, limit := s.Window(params)

	total, rows, err := s.repo.Search(ctx, params, (page-1)*limit, limit)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) || errors.Is(err, domain.ErrValidation) {
			return domain.Envelope{}, err
		}
		logger.FromContext(ctx).Error("insight search failed", zap.Error(err))
		return domain.EmptyEnvelope(page, limit, MsgSearchUnavailable), nil
	}

	switch {
	case total == 0:
		return domain.EmptyEnvelope(page, limit, domain.MsgNoRecords), nil
	case len(rows) == 0:
		env := domain.NewEnvelope(total, page, limit, nil, domain.MsgPastLastPage)
		return env, nil
	default:
		records := domain.NormalizeInsights(rows)
		return domain.NewEnvelope(total, page, limit, records, domain.MsgRecordsFound), nil
	}
}

// Window extracts page and limit from the request, clamping page to at
// least 1 and limit to [1, maxLimit]. Unparseable values fall back to the
// defaults rather than failing the request.
func (s *Service) Window(params filter.Params) (page, limit int) {
	page = 1
	if raw := params[filter.Page]; raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 1 {
			page = v
		}
	}

	limit = s.defaultLimit
	if raw := params[filter.Limit]; raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return page, limit
}
