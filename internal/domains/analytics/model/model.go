package model

const (
	TableName  = "analytics_counters"
	EntityName = "analytics counter"

	FieldName  = "name"
	FieldValue = "value"
)

// Counter names, one row each.
const (
	CounterTotalUsers   = "total_users"
	CounterPageViews    = "page_views"
	CounterInteractions = "interactions"
	CounterBookings     = "bookings"
	CounterReviews      = "reviews"
)

// Tracked event types. click and formSubmit both land on the interactions
// counter.
const (
	EventPageView   = "pageView"
	EventClick      = "click"
	EventFormSubmit = "formSubmit"
	EventBooking    = "booking"
	EventReview     = "review"
)

type Counter struct {
	Name  string `db:"name"`
	Value int64  `db:"value"`
}

// CounterForEvent maps a tracked event type to the counter it increments.
// The empty string means the event type is unknown.
func CounterForEvent(eventType string) string {
	switch eventType {
	case EventPageView:
		return CounterPageViews
	case EventClick, EventFormSubmit:
		return CounterInteractions
	case EventBooking:
		return CounterBookings
	case EventReview:
		return CounterReviews
	default:
		return ""
	}
}
