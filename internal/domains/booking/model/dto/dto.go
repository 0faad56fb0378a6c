package dto

import (
	"time"

	"github.com/google/uuid"

	"senateway/internal/domains/booking/model"
	"senateway/shared"
	gDto "senateway/shared/dto"
	gModel "senateway/shared/model"
	"senateway/shared/timezone"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"required,max=20"`
	Guests   string `json:"guests"    validate:"required,max=10"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Message  string `json:"message"   validate:"omitempty,max=2000"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(dateLayout, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(dateLayout, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:         uuid.NewString(),
		GuestName:  c.Name,
		GuestEmail: c.Email,
		GuestPhone: c.Phone,
		Guests:     c.Guests,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Message:    c.Message,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// StatusTransitionResponse reports the outcome of a status change. EmailSent
// is false either when no email applies (cancellations) or when the send
// failed after the status was already patched.
type StatusTransitionResponse struct {
	Status    string `json:"status"`
	EmailSent bool   `json:"email_sent"`
	Message   string `json:"message"`
}

type BookingResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Guests   string `json:"guests"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Message  string `json:"message"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.GuestName
	r.Email = model.GuestEmail
	r.Phone = model.GuestPhone
	r.Guests = model.Guests
	r.CheckIn = model.CheckIn.Format(dateLayout)
	r.CheckOut = model.CheckOut.Format(dateLayout)
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
