package dto

import (
	"github.com/google/uuid"

	"senateway/internal/domains/review/model"
	"senateway/internal/domains/review/seed"
	"senateway/shared"
	gModel "senateway/shared/model"
	"senateway/shared/timezone"
)

// reviewDateLayout is the display label shown next to a review.
const reviewDateLayout = "January 2006"

type CreateReviewRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Rating   int    `json:"rating"   validate:"required,min=1,max=5"`
	Comment  string `json:"comment"  validate:"required,max=2000"`
	Category string `json:"category" validate:"omitempty,max=50"`
}

func (c *CreateReviewRequest) ToModel(user string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		GuestName:  c.Name,
		Rating:     c.Rating,
		Comment:    c.Comment,
		Category:   c.Category,
		ReviewDate: timezone.Now().Format(reviewDateLayout),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReviewResponse struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Seed     bool   `json:"seed"`
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.Name = model.GuestName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Category = model.Category
	r.Date = model.ReviewDate
}

func (r *ReviewResponse) FromSeed(review seed.Review) {
	r.Name = review.GuestName
	r.Rating = review.Rating
	r.Comment = review.Comment
	r.Category = review.Category
	r.Date = review.ReviewDate
	r.Seed = true
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

// FromModels merges the seed reviews in front of the stored ones. TotalData
// counts both.
func (r *GetReviewsResponse) FromModels(seeds []seed.Review, models []model.Review, totalStored, limit int) {
	r.TotalData = len(seeds) + totalStored
	r.TotalPage = shared.CalculateTotalPage(r.TotalData, limit)

	r.Reviews = make([]ReviewResponse, 0, len(seeds)+len(models))

	for _, s := range seeds {
		res := ReviewResponse{}
		res.FromSeed(s)
		r.Reviews = append(r.Reviews, res)
	}

	for _, mod := range models {
		res := ReviewResponse{}
		res.FromModel(mod)
		r.Reviews = append(r.Reviews, res)
	}
}

type RatingSummaryResponse struct {
	Average float64 `json:"average"`
	Total   int     `json:"total"`
}
