package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User представляет документ пользователя в коллекции
// @Description Stored user record
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string" example:"5f9f1b9b9c9d1b1b8c8c8c8c"`
	Username  string             `bson:"username" json:"username" example:"dev"`
	Firstname *string            `bson:"firstname" json:"firstname" example:"watcharapon"`
	Lastname  *string            `bson:"lastname" json:"lastname" example:"weeraborirak"`
}

// UserInput is the mutable part of a user record, carried by both the
// create and the update payload. The id is never part of it.
// @Description Candidate user payload
type UserInput struct {
	Username  string  `json:"username" binding:"required" example:"dev"`
	Firstname *string `json:"firstname" example:"watcharapon"`
	Lastname  *string `json:"lastname" example:"weeraborirak"`
}

// UserResponse echoes an update payload back with its external id.
// @Description Updated user record
type UserResponse struct {
	ID        string  `json:"_id" example:"5f9f1b9b9c9d1b1b8c8c8c8c"`
	Username  string  `json:"username" example:"kane"`
	Firstname *string `json:"firstname" example:"watcharapon"`
	Lastname  *string `json:"lastname" example:"weeraborirak"`
}

// UserPage is one offset slice of the full listing.
// @Description Paged user listing
type UserPage struct {
	Counts int64   `json:"counts" example:"42"`
	Skip   int64   `json:"skip" example:"0"`
	Limit  int64   `json:"limit" example:"10"`
	Users  []*User `json:"users"`
}

// ErrorResponse представляет ответ с ошибкой
// @Description Error detail
type ErrorResponse struct {
	Detail string `json:"detail" example:"Not found item."`
}
