package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TableService struct {
	repo   ports.TableRepo
	logger logger.Logger
}

func NewTableService(repo ports.TableRepo, logger logger.Logger) *TableService {
	return &TableService{repo: repo, logger: logger}
}

func (s *TableService) List(ctx context.Context) ([]*domain.Table, error) {
	return s.repo.Find(ctx, domain.TableFilter{})
}

// SetAvailability flips the only mutable attribute a table has. Disabling a
// table keeps its existing bookings but removes it from future availability.
func (s *TableService) SetAvailability(ctx context.Context, id int64, available bool) (*domain.Table, error) {
	table, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		return nil, fmt.Errorf("set table availability: %w", err)
	}

	s.logger.Info("table availability changed",
		logger.Int64("table_id", id),
		logger.Any("available", available),
	)

	return table, nil
}
