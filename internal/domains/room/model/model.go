package model

import "senateway/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldSize        = "size"
	FieldCapacity    = "capacity"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldActive      = "active"
)

const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"

	// SizeAll is the filter value that matches every size.
	SizeAll = "all"
)

type Room struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Size        string `db:"size"`
	Capacity    int    `db:"capacity"`
	Price       int    `db:"price"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
