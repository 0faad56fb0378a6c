package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"senateway/config"
	"senateway/infras/otel/mocks"
	analyticsMocks "senateway/internal/domains/analytics/mocks"
	reviewMocks "senateway/internal/domains/review/mocks"
	"senateway/internal/domains/review/model"
	"senateway/internal/domains/review/model/dto"
	"senateway/internal/domains/review/seed"
	"senateway/internal/domains/review/service"
	cacheMocks "senateway/shared/cache/mocks"
	gDto "senateway/shared/dto"
)

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockAnalytics.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockAnalytics, &config.Config{}, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateReviewRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful review",
			req: dto.CreateReviewRequest{
				Name:     "Naledi Khumalo",
				Rating:   5,
				Comment:  "Spotless rooms and a warm welcome.",
				Category: "Couple",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.Equal(t, "Naledi Khumalo", review.GuestName)
						assert.Equal(t, 5, review.Rating)
						assert.NotEmpty(t, review.ReviewDate)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateReviewRequest{
				Name:    "Naledi Khumalo",
				Rating:  4,
				Comment: "Great stay.",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockAnalytics, &config.Config{}, mockCache, mockOtel)

	stored := []model.Review{
		{
			ID:         "review-id-123",
			GuestName:  "Naledi Khumalo",
			Rating:     5,
			Comment:    "Spotless rooms and a warm welcome.",
			Category:   "Couple",
			ReviewDate: "November 2025",
		},
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stored, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

	assert.NoError(t, err)

	seeds := seed.Reviews()
	assert.Len(t, res.Reviews, len(seeds)+1)
	assert.Equal(t, len(seeds)+1, res.TotalData)

	// Seed reviews come first and are flagged as such.
	assert.True(t, res.Reviews[0].Seed)
	assert.Equal(t, seeds[0].GuestName, res.Reviews[0].Name)

	last := res.Reviews[len(res.Reviews)-1]
	assert.False(t, last.Seed)
	assert.Equal(t, "Naledi Khumalo", last.Name)
}

func TestReviewService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockAnalytics, &config.Config{}, mockCache, mockOtel)

	seedCount := len(seed.Reviews())

	tests := []struct {
		name        string
		setupMock   func()
		wantErr     bool
		wantAverage float64
		wantTotal   int
	}{
		{
			name: "seed reviews only",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Review{}, nil)
			},
			// The six seeds sum to 28: 28/6 rounds to 4.7.
			wantAverage: 4.7,
			wantTotal:   seedCount,
		},
		{
			name: "stored reviews shift the mean",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Review{{Rating: 5}, {Rating: 5}}, nil)
			},
			// (28 + 10) / 8 = 4.75, rounded to 4.8.
			wantAverage: 4.8,
			wantTotal:   seedCount + 2,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Summary(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAverage, res.Average)
			assert.Equal(t, tt.wantTotal, res.Total)
		})
	}
}
