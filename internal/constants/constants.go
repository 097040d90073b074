package constants

// Context keys
const (
	ContextKeyRequestID = "request_id"
)

// HTTP headers
const (
	HeaderRequestID = "X-Request-ID"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Plans
const (
	// DateFormat is the wire format for calendar dates in query parameters
	// and request bodies.
	DateFormat = "2006-01-02"

	// MinWeek and MaxWeek bound the week-plan week parameter. The product
	// treats a program as four core weeks regardless of its duration.
	MinWeek = 1
	MaxWeek = 4

	// DefaultWeek is used when the week-plan request omits the week parameter.
	DefaultWeek = 3
)
