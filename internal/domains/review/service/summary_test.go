package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"senateway/internal/domains/review/model"
	"senateway/internal/domains/review/seed"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		seeds       []seed.Review
		stored      []model.Review
		wantAverage float64
		wantTotal   int
	}{
		{
			name:        "no reviews falls back to the display rating",
			seeds:       nil,
			stored:      nil,
			wantAverage: 4.7,
			wantTotal:   0,
		},
		{
			name:        "single review",
			stored:      []model.Review{{Rating: 3}},
			wantAverage: 3.0,
			wantTotal:   1,
		},
		{
			name:        "mean rounds to one decimal",
			seeds:       []seed.Review{{Rating: 5}, {Rating: 4}},
			stored:      []model.Review{{Rating: 5}},
			wantAverage: 4.7,
			wantTotal:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := summarize(tt.seeds, tt.stored)

			assert.Equal(t, tt.wantAverage, res.Average)
			assert.Equal(t, tt.wantTotal, res.Total)
		})
	}
}
