package health

import "context"

// DBPinger checks relational store connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// TaxonomyChecker verifies that the taxonomy files are readable.
type TaxonomyChecker interface {
	Check() error
}
