package repository

import (
	"context"

	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (solo lo que usa auth).
// FindByEmail devuelve (nil, nil) si el email no está registrado.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
