package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"senateway/config"
	"senateway/infras/emailjs"
	"senateway/infras/kafka"
	"senateway/infras/otel"
	analyticsModel "senateway/internal/domains/analytics/model"
	analyticsRepo "senateway/internal/domains/analytics/repository"
	"senateway/internal/domains/booking/model"
	"senateway/internal/domains/booking/model/dto"
	"senateway/internal/domains/booking/repository"
	"senateway/shared"
	"senateway/shared/cache"
	"senateway/shared/constant"
	gDto "senateway/shared/dto"
	"senateway/shared/failure"
	"senateway/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	senderName  = "SenateWay Guesthouse"
	senderEmail = "info@senateway.co.za"

	confirmationDateLayout = "Monday, January 2, 2006"
)

const (
	eventBookingCreated   = "booking.created"
	eventBookingConfirmed = "booking.confirmed"
	eventBookingCancelled = "booking.cancelled"
)

type bookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	Status     string    `json:"status"`
	GuestEmail string    `json:"guest_email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.StatusTransitionResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Booking
	analyticsRepo analyticsRepo.Analytics
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
	mailer        emailjs.Mailer
	events        kafka.Client
}

func New(repo repository.Booking, analyticsRepo analyticsRepo.Analytics, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, mailer emailjs.Mailer, events kafka.Client) Booking {
	return &serviceImpl{
		repo:          repo,
		analyticsRepo: analyticsRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
		mailer:        mailer,
		events:        events,
	}
}

// Create records a booking request with status pending and sends the
// "booking received" email. The two effects are sequential and
// short-circuiting: a failed insert sends no email. A failed email after a
// successful insert leaves the record in place and reports the error.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.ContextGuest
	}

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterChange(ctx, booking, eventBookingCreated)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.analyticsRepo.Increment(c, analyticsModel.CounterBookings); err != nil {
			log.Error().Err(err).Msg("failed to increment bookings counter")
		}
	}()

	if err = s.mailer.Send(ctx, s.cfg.External.EmailJS.Templates.BookingReceived, receivedParams(booking)); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("booking recorded but the received email failed")

		return failure.InternalError(errors.New("your booking was recorded but the notification email could not be sent")) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus patches the status first and then, for confirmations only,
// sends the confirmation email. A failed email does not revert the status
// change: the response carries email_sent=false and asks the admin to follow
// up manually.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.StatusTransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	res.Status = req.Status

	eventType := eventBookingCancelled
	if req.Status == model.StatusConfirmed {
		eventType = eventBookingConfirmed
	}

	s.afterChange(ctx, booking, eventType)

	if req.Status != model.StatusConfirmed {
		res.Message = "Booking status updated to cancelled."

		return res, nil
	}

	if booking.GuestEmail == constant.Empty {
		log.Warn().Str("booking", booking.ID).Msg("no email address on booking, skipping confirmation email")

		res.Message = "Booking confirmed, but no email address is on record."

		return res, nil
	}

	if err := s.mailer.Send(ctx, s.cfg.External.EmailJS.Templates.BookingConfirmed, confirmationParams(booking)); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("status updated but the confirmation email failed")

		res.Message = fmt.Sprintf("Booking status updated to confirmed, but the confirmation email could not be sent. Please contact %s manually.", booking.GuestEmail)

		return res, nil
	}

	res.EmailSent = true
	res.Message = fmt.Sprintf("Booking confirmed. Confirmation email sent to %s.", booking.GuestEmail)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// afterChange invalidates caches and publishes the lifecycle event. Both are
// best-effort and never fail the request.
func (s *serviceImpl) afterChange(ctx context.Context, booking model.Booking, eventType string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		event := bookingEvent{
			Type:       eventType,
			BookingID:  booking.ID,
			Status:     booking.Status,
			GuestEmail: booking.GuestEmail,
			OccurredAt: timezone.Now(),
		}

		if err := s.events.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}

func receivedParams(booking model.Booking) map[string]string {
	return map[string]string{
		"from_name":  booking.GuestName,
		"from_email": booking.GuestEmail,
		"to_email":   booking.GuestEmail,
		"phone":      booking.GuestPhone,
		"check_in":   booking.CheckIn.Format("2006-01-02"),
		"check_out":  booking.CheckOut.Format("2006-01-02"),
		"guests":     booking.Guests,
		"message":    booking.Message,
	}
}

func confirmationParams(booking model.Booking) map[string]string {
	return map[string]string{
		"from_name":  senderName,
		"from_email": senderEmail,
		"to_email":   booking.GuestEmail,
		"to_name":    booking.GuestName,
		"guest_name": booking.GuestName,
		"phone":      booking.GuestPhone,
		"check_in":   booking.CheckIn.Format(confirmationDateLayout),
		"check_out":  booking.CheckOut.Format(confirmationDateLayout),
		"guests":     booking.Guests,
		"message":    booking.Message,
	}
}
