// Package chi wires the HTTP API: the insight search endpoint with its
// uniform response envelope, the taxonomy list and company endpoints, and
// health/metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/insightwires/newsmeta/internal/cache"
	"github.com/insightwires/newsmeta/internal/domain"
	"github.com/insightwires/newsmeta/internal/domain/filter"
	"github.com/insightwires/newsmeta/internal/metrics"
	healthuc "github.com/insightwires/newsmeta/internal/usecase/health"
	insightuc "github.com/insightwires/newsmeta/internal/usecase/insight"
	taxonomyuc "github.com/insightwires/newsmeta/internal/usecase/taxonomy"
)

// errorResponse is the error shape for the non-envelope endpoints.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes for errorResponse.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeAlreadyExists    = "already_exists"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

// listAliases maps the fixed list routes to their taxonomy names.
var listAliases = map[string]string{
	"sentiments":          "sentiments",
	"sources":             "source_types",
	"industries":          "industries",
	"languages":           "languages",
	"countries":           "countries",
	"content-types":       "content_types",
	"business-activities": "business_activities",
	"themes":              "themes",
	"topics":              "topics",
}

// Server handles the HTTP API.
type Server struct {
	insights   *insightuc.Service
	taxonomies *taxonomyuc.Service
	health     *healthuc.Service
	respCache  cache.Cache
	logger     *zap.Logger
}

// NewServer creates an HTTP API server. respCache can be nil to disable
// response caching.
func NewServer(
	insights *insightuc.Service,
	taxonomies *taxonomyuc.Service,
	health *healthuc.Service,
	respCache cache.Cache,
	logger *zap.Logger,
) *Server {
	return &Server{
		insights:   insights,
		taxonomies: taxonomies,
		health:     health,
		respCache:  respCache,
		logger:     logger,
	}
}

// Routes mounts all API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/insight", s.handleSearchInsights)
		r.Get("/taxonomy/{name}", s.handleListTaxonomy)
		r.Get("/companies/search", s.handleSearchCompanies)
		r.Post("/companies/request", s.handleRequestCompany)

		for route, name := range listAliases {
			r.Get("/"+route, s.fixedListHandler(name))
		}
	})

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleSearchInsights handles GET /api/v1/insight. Every outcome is an
// envelope; validation failures carry it with a 400 status. Responses for
// valid queries are served from the short-TTL cache when one is configured.
func (s *Server) handleSearchInsights(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)

	var key string
	if s.respCache != nil {
		key = cache.Key(params)
		if body, ok, err := s.respCache.Get(r.Context(), key); err == nil && ok {
			metrics.ResponseCacheTotal.WithLabelValues("hit").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			_, _ = w.Write(body)
			return
		} else if err != nil {
			s.logger.Warn("response cache lookup failed", zap.Error(err))
		}
		metrics.ResponseCacheTotal.WithLabelValues("miss").Inc()
	}

	env, err := s.insights.Search(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			page, limit := s.insights.Window(params)
			writeJSON(w, http.StatusBadRequest,
				domain.EmptyEnvelope(page, limit, err.Error()))
			return
		}
		s.logger.Error("insight search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	body, err := json.Marshal(env)
	if err != nil {
		s.logger.Error("encode envelope", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	// Degraded-backend envelopes are not cached so recovery is visible
	// within a TTL, not after one.
	if s.respCache != nil && env.Message != insightuc.MsgSearchUnavailable {
		if err := s.respCache.Set(r.Context(), key, body); err != nil {
			s.logger.Warn("response cache store failed", zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// handleListTaxonomy handles GET /api/v1/taxonomy/{name}, with optional
// ?search= and ?field= narrowing.
func (s *Server) handleListTaxonomy(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	term := r.URL.Query().Get("search")
	field := r.URL.Query().Get("field")

	entries, err := s.taxonomies.List(r.Context(), name, term, field)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(entries))
}

// fixedListHandler returns the handler for one of the fixed taxonomy list
// routes, honoring the same search/field narrowing as the generic route.
func (s *Server) fixedListHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("search")
		field := r.URL.Query().Get("field")

		entries, err := s.taxonomies.List(r.Context(), name, term, field)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse(entries))
	}
}

// handleSearchCompanies handles GET /api/v1/companies/search.
func (s *Server) handleSearchCompanies(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	url := r.URL.Query().Get("url")

	entries, err := s.taxonomies.SearchCompanies(r.Context(), name, url)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if len(entries) == 0 {
		writeError(w, http.StatusNotFound, codeNotFound,
			"no companies matched; submit an add-request via POST /api/v1/companies/request")
		return
	}
	writeJSON(w, http.StatusOK, listResponse(entries))
}

// handleRequestCompany handles POST /api/v1/companies/request.
func (s *Server) handleRequestCompany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyName string `json:"company_name"`
		CompanyURL  string `json:"company_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"invalid request body: "+err.Error())
		return
	}

	queued, err := s.taxonomies.RequestCompany(r.Context(), req.CompanyName, req.CompanyURL)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, queued)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrTaxonomyNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrCompanyExists):
		writeError(w, http.StatusBadRequest, codeAlreadyExists, err.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// queryParams flattens the URL query into the filter mapping, first value
// per parameter.
func queryParams(r *http.Request) filter.Params {
	values := r.URL.Query()
	params := make(filter.Params, len(values))
	for name := range values {
		params[name] = values.Get(name)
	}
	return params
}

func listResponse(entries []taxonomyuc.Entry) map[string]any {
	if entries == nil {
		entries = []taxonomyuc.Entry{}
	}
	return map[string]any{
		"total_count": len(entries),
		"data":        entries,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
