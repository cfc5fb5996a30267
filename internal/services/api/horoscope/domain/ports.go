package domain

import "context"

// ServicePort is the user and horoscope workflow surface
type ServicePort interface {
	CreateUser(ctx context.Context, in CreateUserInput) (User, error)
	Users(ctx context.Context) ([]User, error)
	User(ctx context.Context, id int64) (User, error)

	InsertRows(ctx context.Context, in []HoroscopeRowInput) ([]HoroscopeRow, error)
	Rows(ctx context.Context) ([]HoroscopeRow, error)
}
