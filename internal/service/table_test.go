package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports/mocks"
)

func TestTableService_List(t *testing.T) {
	repo := mocks.NewMockTableRepo(t)
	svc := NewTableService(repo, newTestLogger(t))

	repo.EXPECT().Find(mock.Anything, domain.TableFilter{}).Return([]*domain.Table{
		{ID: 1, Capacity: 2, Available: true},
		{ID: 2, Capacity: 4, Available: false},
	}, nil)

	tables, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, tables, 2)
}

func TestTableService_SetAvailability(t *testing.T) {
	repo := mocks.NewMockTableRepo(t)
	svc := NewTableService(repo, newTestLogger(t))

	repo.EXPECT().SetAvailability(mock.Anything, int64(3), false).
		Return(&domain.Table{ID: 3, Capacity: 4, Available: false}, nil)

	table, err := svc.SetAvailability(context.Background(), 3, false)

	require.NoError(t, err)
	assert.False(t, table.Available)
}

func TestTableService_SetAvailability_NotFound(t *testing.T) {
	repo := mocks.NewMockTableRepo(t)
	svc := NewTableService(repo, newTestLogger(t))

	repo.EXPECT().SetAvailability(mock.Anything, int64(99), true).
		Return(nil, domain.ErrTableNotFound)

	_, err := svc.SetAvailability(context.Background(), 99, true)

	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}
