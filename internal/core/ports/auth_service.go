package ports

import (
	"context"

	"github.com/attendly/attendance-system/internal/core/domain"
)

// AuthService implements registration, login and user listing. Register and
// Login return the persisted user together with a signed bearer token.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role, department string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Users(ctx context.Context, page, limit int) ([]domain.User, int64, error)
}
