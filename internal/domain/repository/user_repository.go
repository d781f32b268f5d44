package repository

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
