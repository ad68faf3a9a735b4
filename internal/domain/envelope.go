package domain

// Envelope messages for the uniform response wrapper.
const (
	MsgRecordsFound = "records retrieved successfully"
	MsgNoRecords    = "no records found matching the specified criteria"
	MsgPastLastPage = "no records found for the specified page"
)

// Envelope is the uniform response wrapper carrying count, pagination,
// data, and a human-readable status message. Every outcome of the insight
// search — success, empty, validation failure, downgraded storage failure —
// is expressed through this one shape.
type Envelope struct {
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	PrevPage   *int     `json:"prev_page"`
	NextPage   *int     `json:"next_page"`
	Data       []Record `json:"data"`
	Message    string   `json:"message"`
}

// NewEnvelope builds a populated envelope and computes the page navigation:
// prev_page is absent on the first page, next_page is absent once
// page*limit reaches the total count.
func NewEnvelope(total int64, page, limit int, data []Record, message string) Envelope {
	env := Envelope{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Data:       data,
		Message:    message,
	}
	if env.Data == nil {
		env.Data = []Record{}
	}
	if page > 1 {
		prev := page - 1
		env.PrevPage = &prev
	}
	if int64(page)*int64(limit) < total {
		next := page + 1
		env.NextPage = &next
	}
	return env
}

// EmptyEnvelope builds an envelope with no data and the given message.
func EmptyEnvelope(page, limit int, message string) Envelope {
	return Envelope{
		Page:    page,
		Limit:   limit,
		Data:    []Record{},
		Message: message,
	}
}
