// Package insight assembles and executes the filtered insight search query:
// validated filters become de-duplicated junction joins and predicates, and
// results are fetched as a count plus one deterministic page window.
package insight

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/insightwires/newsmeta/internal/db"
	"github.com/insightwires/newsmeta/internal/domain"
	"github.com/insightwires/newsmeta/internal/domain/filter"
	"github.com/insightwires/newsmeta/internal/metrics"
)

const dateLayout = "2006-01-02"

// Deterministic page order: newest first, uuid as the stable tiebreak so
// identical requests return byte-identical pages.
const pageOrder = "insightwire.published_date DESC, insightwire.uuid ASC"

// Repo executes insight searches against the relational store.
type Repo struct {
	gdb *gorm.DB
}

// New creates an insight repository.
func New(gdb *gorm.DB) *Repo {
	return &Repo{gdb: gdb}
}

// Search counts the insights matching params and fetches the page window at
// offset. The windowed fetch is skipped when nothing matches or the offset
// lies past the last row. Validation failures return a
// domain.ValidationError; storage failures are returned for the caller to
// downgrade.
func (r *Repo) Search(
	ctx context.Context, params filter.Params, offset, limit int,
) (int64, []domain.Insight, error) {
	q, err := r.buildQuery(ctx, params)
	if err != nil {
		return 0, nil, err
	}

	var total int64
	start := time.Now()
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("count insights: %w", err)
	}
	metrics.QueryDuration.WithLabelValues("count").Observe(time.Since(start).Seconds())

	if total == 0 || int64(offset) >= total {
		return total, nil, nil
	}

	var rows []db.InsightRow
	start = time.Now()
	err = q.Session(&gorm.Session{}).
		Order(pageOrder).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return 0, nil, fmt.Errorf("fetch insights: %w", err)
	}
	metrics.QueryDuration.WithLabelValues("fetch").Observe(time.Since(start).Seconds())

	return total, rowsToDomain(rows), nil
}

// buildQuery translates the filter mapping into joins and predicates.
// A join-marker set guarantees at most one join per junction relation no
// matter how many filter names reference it.
func (r *Repo) buildQuery(ctx context.Context, params filter.Params) (*gorm.DB, error) {
	if !params.HasSearchFilter() {
		return nil, domain.NewValidation("", noFiltersMessage())
	}

	q := r.gdb.WithContext(ctx).Model(&db.InsightRow{}).Select("insightwire.*")

	joined := make(map[string]bool, len(junctions))
	lastJoined := ""

	for _, name := range filter.Taxonomies {
		raw := params.TaxonomyValue(name)
		if raw == "" {
			continue
		}
		if ok, msg := filter.Validate(name, raw); !ok {
			return nil, domain.NewValidation(name, msg)
		}
		value, _ := strconv.Atoi(raw)

		j := junctions[name]
		if !joined[j.table] {
			q = q.Joins(fmt.Sprintf(
				"JOIN %s ON %s.insightwire_uuid = insightwire.uuid", j.table, j.table,
			))
			joined[j.table] = true
			lastJoined = j.table
		}
		q = q.Where(fmt.Sprintf("%s.%s = ?", j.table, j.column), value)
	}

	q, err := r.applyDateRange(q, params, lastJoined)
	if err != nil {
		return nil, err
	}

	return r.applyDirectFilters(q, params)
}

// applyDateRange adds the start/end predicates against the most recently
// joined junction's assignment timestamp, falling back to the insight's own
// published date when no junction is joined.
func (r *Repo) applyDateRange(q *gorm.DB, params filter.Params, lastJoined string) (*gorm.DB, error) {
	tsColumn := "insightwire.published_date"
	if lastJoined != "" {
		tsColumn = lastJoined + ".system_timestamp"
	}

	if raw := strings.TrimSpace(params[filter.StartDate]); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, domain.NewValidation(filter.StartDate,
				fmt.Sprintf("must be a date in YYYY-MM-DD format, got %q", raw))
		}
		q = q.Where(tsColumn+" >= ?", day)
	}
	if raw := strings.TrimSpace(params[filter.EndDate]); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, domain.NewValidation(filter.EndDate,
				fmt.Sprintf("must be a date in YYYY-MM-DD format, got %q", raw))
		}
		endOfDay := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		q = q.Where(tsColumn+" <= ?", endOfDay)
	}
	return q, nil
}

// applyDirectFilters adds predicates for the remaining recognized fields
// that live directly on the primary table, in deterministic name order.
func (r *Repo) applyDirectFilters(q *gorm.DB, params filter.Params) (*gorm.DB, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := strings.TrimSpace(params[name])
		if raw == "" || filter.IsPagination(name) {
			continue
		}
		if name == filter.StartDate || name == filter.EndDate {
			continue
		}
		if _, isTaxonomy := junctions[filter.Canonical(name)]; isTaxonomy {
			continue
		}

		col, ok := directColumns[name]
		if !ok {
			return nil, domain.NewValidation(name, "is not a recognized filter")
		}

		switch col.kind {
		case columnText:
			q = q.Where("LOWER(insightwire."+col.name+") LIKE ?",
				"%"+strings.ToLower(raw)+"%")
		case columnNumeric:
			value, err := strconv.Atoi(raw)
			if err != nil {
				return nil, domain.NewValidation(name,
					fmt.Sprintf("invalid integer value for field %q", name))
			}
			q = q.Where("insightwire."+col.name+" = ?", value)
		default:
			q = q.Where("insightwire."+col.name+" = ?", raw)
		}
	}
	return q, nil
}

func noFiltersMessage() string {
	names := append(filter.Accepted(), DirectFilters()...)
	sort.Strings(names)
	return "no search filters provided; accepted filters: " +
		strings.Join(names, ", ")
}
