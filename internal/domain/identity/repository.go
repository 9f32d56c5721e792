package identity

import "context"

// Repository defines the interface for user persistence
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}
