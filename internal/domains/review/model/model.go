package model

import "senateway/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldGuestName  = "guest_name"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldCategory   = "category"
	FieldReviewDate = "review_date"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Review is append-only: guests can submit reviews but nothing updates or
// removes them. ReviewDate is the display label shown on the site
// ("October 2025"), not a timestamp.
type Review struct {
	ID         string `db:"id"`
	GuestName  string `db:"guest_name"`
	Rating     int    `db:"rating"`
	Comment    string `db:"comment"`
	Category   string `db:"category"`
	ReviewDate string `db:"review_date"`
	model.Metadata
}
