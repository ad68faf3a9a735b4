package taxonomy

import "github.com/insightwires/newsmeta/internal/domain"

// Entry is one taxonomy record, shape varies per taxonomy.
type Entry = map[string]any

// Store defines the contract for the taxonomy file store.
type Store interface {
	// Load returns the records of the named taxonomy.
	Load(name string) ([]Entry, error)
	// AppendCompanyRequest queues a company add-request for review.
	AppendCompanyRequest(req domain.CompanyRequest) error
}
