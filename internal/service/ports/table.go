package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type TableRepo interface {
	Find(ctx context.Context, filter domain.TableFilter) ([]*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	SetAvailability(ctx context.Context, id int64, available bool) (*domain.Table, error)
}
