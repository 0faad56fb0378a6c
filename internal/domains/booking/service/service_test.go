package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"senateway/config"
	emailjsMocks "senateway/infras/emailjs/mocks"
	kafkaMocks "senateway/infras/kafka/mocks"
	"senateway/infras/otel/mocks"
	analyticsMocks "senateway/internal/domains/analytics/mocks"
	bookingMocks "senateway/internal/domains/booking/mocks"
	"senateway/internal/domains/booking/model"
	"senateway/internal/domains/booking/model/dto"
	"senateway/internal/domains/booking/service"
	cacheMocks "senateway/shared/cache/mocks"
	gModel "senateway/shared/model"
	"senateway/shared/timezone"
)

const (
	receivedTemplate  = "template_received"
	confirmedTemplate = "template_confirmed"
)

func newBookingConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.EmailJS.Templates.BookingReceived = receivedTemplate
	cfg.External.EmailJS.Templates.BookingConfirmed = confirmedTemplate
	cfg.Kafka.Topics.BookingEvents = "booking-events"

	return cfg
}

func validBooking() model.Booking {
	return model.Booking{
		ID:         "booking-id-123",
		GuestName:  "Thabo Nkosi",
		GuestEmail: "thabo@example.com",
		GuestPhone: "+27 82 000 0000",
		Guests:     "2",
		CheckIn:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Message:    "Late arrival",
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "guest",
			ModifiedBy: "guest",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMailer := emailjsMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	// Side effects after a successful insert run asynchronously and are
	// best-effort, so they are not part of any case's contract.
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockEvents.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockAnalytics.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockAnalytics, newBookingConfig(), mockCache, mockOtel, mockMailer, mockEvents)

	validReq := dto.CreateBookingRequest{
		Name:     "Thabo Nkosi",
		Email:    "thabo@example.com",
		Phone:    "+27 82 000 0000",
		Guests:   "2",
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Message:  "Late arrival",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful booking sends the received email",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, "thabo@example.com", booking.GuestEmail)

						return nil
					})

				mockMailer.EXPECT().
					Send(gomock.Any(), receivedTemplate, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, params map[string]string) error {
						assert.Equal(t, "thabo@example.com", params["to_email"])
						assert.Equal(t, "2026-09-10", params["check_in"])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "invalid check-in date touches neither storage nor mail",
			req: dto.CreateBookingRequest{
				Name:     "Thabo Nkosi",
				Email:    "thabo@example.com",
				Phone:    "+27 82 000 0000",
				Guests:   "2",
				CheckIn:  "10-09-2026",
				CheckOut: "2026-09-12",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "failed insert sends no email",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
		{
			name: "failed email after insert keeps the booking and reports the error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), receivedTemplate, gomock.Any()).
					Return(errors.New("emailjs unavailable"))
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

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMailer := emailjsMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockEvents.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockAnalytics, newBookingConfig(), mockCache, mockOtel, mockMailer, mockEvents)

	tests := []struct {
		name          string
		req           dto.UpdateBookingStatusRequest
		setupMock     func()
		wantErr       bool
		wantEmailSent bool
		wantMessage   string
	}{
		{
			name: "confirmation sends exactly one email",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), confirmedTemplate, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, params map[string]string) error {
						assert.Equal(t, "thabo@example.com", params["to_email"])
						assert.Equal(t, "SenateWay Guesthouse", params["from_name"])

						return nil
					})
			},
			wantEmailSent: true,
			wantMessage:   "Booking confirmed. Confirmation email sent to thabo@example.com.",
		},
		{
			name: "cancellation sends no email",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusCancelled},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantMessage: "Booking status updated to cancelled.",
		},
		{
			name: "failed confirmation email keeps the new status",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), confirmedTemplate, gomock.Any()).
					Return(errors.New("emailjs unavailable"))
			},
			wantMessage: "Booking status updated to confirmed, but the confirmation email could not be sent. Please contact thabo@example.com manually.",
		},
		{
			name: "confirmation without a guest email skips the send",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				booking := validBooking()
				booking.GuestEmail = ""

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantMessage: "Booking confirmed, but no email address is on record.",
		},
		{
			name: "unknown booking",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "failed status patch sends no email",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UpdateStatus(context.Background(), tt.req, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Status, res.Status)
			assert.Equal(t, tt.wantEmailSent, res.EmailSent)
			assert.Equal(t, tt.wantMessage, res.Message)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMailer := emailjsMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockAnalytics, newBookingConfig(), mockCache, mockOtel, mockMailer, mockEvents)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful get",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id-123", res.ID)
				assert.Equal(t, "2026-09-10", res.CheckIn)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAnalytics := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMailer := emailjsMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockAnalytics, newBookingConfig(), mockCache, mockOtel, mockMailer, mockEvents)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
