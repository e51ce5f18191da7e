package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve (nil, nil) si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	DeleteAll(ctx context.Context) error
}
