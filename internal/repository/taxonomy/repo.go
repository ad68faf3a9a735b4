// Package taxonomy is the file-backed store for the static code lists.
// Files are loaded lazily on first access and cached for the process
// lifetime; the source files do not change during a run.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/insightwires/newsmeta/internal/domain"
)

// files maps taxonomy names to their backing JSON files.
var files = map[string]string{
	"business_activities": "business_activity.json",
	"companies":           "company_taxonomy.json",
	"industries":          "industry.json",
	"countries":           "country.json",
	"content_types":       "content_type_taxonomy.json",
	"sentiments":          "sentiment_taxonomy.json",
	"source_types":        "source_type_taxonomy.json",
	"languages":           "languages.json",
	"themes":              "themes.json",
	"topics":              "topics.json",
}

const requestsFile = "requested_companies.json"

// Entry is one taxonomy record, shape varies per taxonomy.
type Entry = map[string]any

// Names returns the known taxonomy names, sorted.
func Names() []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Repo loads taxonomy files and caches them in memory.
type Repo struct {
	basePath string

	mu    sync.RWMutex
	cache map[string][]Entry

	reqMu sync.Mutex
}

// New creates a taxonomy repository reading from basePath.
func New(basePath string) *Repo {
	return &Repo{
		basePath: basePath,
		cache:    make(map[string][]Entry),
	}
}

// Load returns the records of a taxonomy, reading the backing file on first
// access. Racing first accesses both read the file and both store the same
// result; reloading is idempotent, so no exclusive lock spans the file read.
func (r *Repo) Load(name string) ([]Entry, error) {
	r.mu.RLock()
	cached, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	filename, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaxonomyNotFound, name)
	}

	path := filepath.Join(r.basePath, filename)
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: file %s", domain.ErrTaxonomyNotFound, filename)
		}
		return nil, fmt.Errorf("read taxonomy %s: %w", name, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", name, err)
	}

	r.mu.Lock()
	r.cache[name] = entries
	r.mu.Unlock()
	return entries, nil
}

// Check verifies the taxonomy directory is present and readable.
func (r *Repo) Check() error {
	info, err := os.Stat(r.basePath)
	if err != nil {
		return fmt.Errorf("taxonomy path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("taxonomy path %s is not a directory", r.basePath)
	}
	return nil
}

// AppendCompanyRequest appends a pending company add-request to the
// requests file, creating it when missing.
func (r *Repo) AppendCompanyRequest(req domain.CompanyRequest) error {
	r.reqMu.Lock()
	defer r.reqMu.Unlock()

	path := filepath.Join(r.basePath, requestsFile)

	var requests []domain.CompanyRequest
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &requests); err != nil {
			return fmt.Errorf("parse %s: %w", requestsFile, err)
		}
	case os.IsNotExist(err):
		// first request ever
	default:
		return fmt.Errorf("read %s: %w", requestsFile, err)
	}

	requests = append(requests, req)

	out, err := json.MarshalIndent(requests, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", requestsFile, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", requestsFile, err)
	}
	return nil
}
