package domain

import "time"

// CompanyRequest is a user-submitted request to add a company to the
// company taxonomy. Requests are queued for manual review.
type CompanyRequest struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	CompanyURL  string    `json:"company_url,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
	Status      string    `json:"status"`
}
