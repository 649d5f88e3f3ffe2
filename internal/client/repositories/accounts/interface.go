package accounts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/appointo/internal/client/models"
)

var ErrNotFound = errors.New("account not found")

type Repository interface {
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	Create(ctx context.Context, name, email string) (models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
}
