// Package domain defines users and their horoscope rows
package domain

import (
	"encoding/json"
	"time"
)

// User is a registered user; the password hash never leaves the repo
type User struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Rows      []HoroscopeRow `json:"rasiTables,omitempty"`
}

// CreateUserInput is the sign-up body. Presence is checked by the service so every
// missing field yields the same message; the tags only check format.
type CreateUserInput struct {
	Name     string `json:"name"     example:"Meena"`
	Email    string `json:"email"    validate:"omitempty,email" example:"meena@example.com"`
	Phone    string `json:"phone"    validate:"omitempty,phone" example:"+91 98765 43210"`
	Password string `json:"password" validate:"omitempty,min=6" example:"s3cret!"`
}

// HoroscopeRow is one computed horoscope row of a user
type HoroscopeRow struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	Rasi         string          `json:"rasi"`
	Lagna        string          `json:"lagna"`
	Nakshatra    string          `json:"nakshatra"`
	HD           string          `json:"hd"`
	LD           string          `json:"ld"`
	Houses       string          `json:"houses"`
	BhavamNo     int             `json:"bhavam_no"`
	RasiName     string          `json:"rasi_name"`
	Planet       json.RawMessage `json:"planet" swaggertype:"object"`
	Degree       string          `json:"degree"`
	Nakshatras   json.RawMessage `json:"nakshatras" swaggertype:"object"`
	Combinations json.RawMessage `json:"combinations" swaggertype:"object"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	User         *User           `json:"user,omitempty"`
}

// HoroscopeRowInput is one element of the rasi table bulk body
type HoroscopeRowInput struct {
	UserID       int64           `json:"user_id"      validate:"required,gt=0" example:"1"`
	Rasi         string          `json:"rasi"         validate:"required,nonblank" example:"Mesham"`
	Lagna        string          `json:"lagna"        validate:"required,nonblank"`
	Nakshatra    string          `json:"nakshatra"    validate:"required,nonblank"`
	HD           string          `json:"hd"           validate:"required"`
	LD           string          `json:"ld"           validate:"required"`
	Houses       string          `json:"houses"       validate:"required"`
	BhavamNo     int             `json:"bhavam_no"    validate:"required,min=1,max=12" example:"1"`
	RasiName     string          `json:"rasi_name"    validate:"required,nonblank"`
	Planet       json.RawMessage `json:"planet"       validate:"required" swaggertype:"object"`
	Degree       string          `json:"degree"       validate:"required"`
	Nakshatras   json.RawMessage `json:"nakshatras"   validate:"required" swaggertype:"object"`
	Combinations json.RawMessage `json:"combinations" validate:"required" swaggertype:"object"`
}

// UserResult wraps one user
type UserResult struct {
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// UsersResult wraps a user list
type UsersResult struct {
	Message string `json:"message"`
	Data    []User `json:"data"`
}

// RowsResult wraps horoscope rows
type RowsResult struct {
	Message string         `json:"message"`
	Data    []HoroscopeRow `json:"data"`
}
