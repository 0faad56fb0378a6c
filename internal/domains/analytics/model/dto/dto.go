package dto

import (
	"senateway/internal/domains/analytics/model"
)

type TrackEventRequest struct {
	Type string `json:"type" validate:"required,oneof=pageView click formSubmit booking review"`
}

type SummaryResponse struct {
	TotalUsers   int64 `json:"total_users"`
	PageViews    int64 `json:"page_views"`
	Interactions int64 `json:"interactions"`
	Bookings     int64 `json:"bookings"`
	Reviews      int64 `json:"reviews"`
}

func (r *SummaryResponse) FromModels(counters []model.Counter) {
	for _, counter := range counters {
		switch counter.Name {
		case model.CounterTotalUsers:
			r.TotalUsers = counter.Value
		case model.CounterPageViews:
			r.PageViews = counter.Value
		case model.CounterInteractions:
			r.Interactions = counter.Value
		case model.CounterBookings:
			r.Bookings = counter.Value
		case model.CounterReviews:
			r.Reviews = counter.Value
		}
	}
}
