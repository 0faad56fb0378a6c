package dto

import (
	"senateway/internal/domains/room/model"
	"senateway/shared"
	gDto "senateway/shared/dto"
	gModel "senateway/shared/model"
	"senateway/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Size        string `json:"size"        validate:"required,oneof=small medium large"`
	Capacity    int    `json:"capacity"    validate:"required,min=1"`
	Price       int    `json:"price"       validate:"required,min=0"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Image       string `json:"image"       validate:"omitempty,url,max=500"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Size:        c.Size,
		Capacity:    c.Capacity,
		Price:       c.Price,
		Description: c.Description,
		Image:       c.Image,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Size        string `db:"size"        json:"size"        validate:"omitempty,oneof=small medium large"`
	Capacity    *int   `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Price       *int   `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url,max=500"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Size        string `json:"size"`
	Capacity    int    `json:"capacity"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Size = model.Size
	r.Capacity = model.Capacity
	r.Price = model.Price
	r.Description = model.Description
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
