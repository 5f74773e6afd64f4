package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports/mocks"
)

var testDate = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

func TestAvailabilityService_FindCandidateTables_SmallestFit(t *testing.T) {
	tableRepo := mocks.NewMockTableRepo(t)
	store := mocks.NewMockBookingStore(t)
	svc := NewAvailabilityService(tableRepo, store)

	tableRepo.EXPECT().
		Find(mock.Anything, domain.TableFilter{MinCapacity: 4, AvailableOnly: true}).
		Return([]*domain.Table{
			{ID: 3, Capacity: 8, Available: true},
			{ID: 7, Capacity: 4, Available: true},
			{ID: 5, Capacity: 4, Available: true},
			{ID: 1, Capacity: 6, Available: true},
		}, nil)
	store.EXPECT().
		ActiveForSlot(mock.Anything, testDate, "19:00").
		Return(nil, nil)

	candidates, err := svc.FindCandidateTables(context.Background(), testDate, "19:00", 4, "")

	require.NoError(t, err)
	require.Len(t, candidates, 4)
	// capacity ascending, ties broken by table ID
	assert.Equal(t, int64(5), candidates[0].ID)
	assert.Equal(t, int64(7), candidates[1].ID)
	assert.Equal(t, int64(1), candidates[2].ID)
	assert.Equal(t, int64(3), candidates[3].ID)
}

func TestAvailabilityService_FindCandidateTables_SkipsOccupied(t *testing.T) {
	tableRepo := mocks.NewMockTableRepo(t)
	store := mocks.NewMockBookingStore(t)
	svc := NewAvailabilityService(tableRepo, store)

	tableRepo.EXPECT().
		Find(mock.Anything, mock.Anything).
		Return([]*domain.Table{
			{ID: 1, Capacity: 4, Available: true},
			{ID: 2, Capacity: 4, Available: true},
		}, nil)
	store.EXPECT().
		ActiveForSlot(mock.Anything, testDate, "19:00").
		Return([]*domain.Booking{
			{ID: "b1", TableID: 1, Status: domain.BookingStatusConfirmed},
		}, nil)

	candidates, err := svc.FindCandidateTables(context.Background(), testDate, "19:00", 2, "")

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(2), candidates[0].ID)
}

func TestAvailabilityService_FindCandidateTables_ExcludesOwnBooking(t *testing.T) {
	tableRepo := mocks.NewMockTableRepo(t)
	store := mocks.NewMockBookingStore(t)
	svc := NewAvailabilityService(tableRepo, store)

	tableRepo.EXPECT().
		Find(mock.Anything, mock.Anything).
		Return([]*domain.Table{{ID: 1, Capacity: 4, Available: true}}, nil)
	store.EXPECT().
		ActiveForSlot(mock.Anything, testDate, "19:00").
		Return([]*domain.Booking{
			{ID: "mine", TableID: 1, Status: domain.BookingStatusConfirmed},
		}, nil)

	candidates, err := svc.FindCandidateTables(context.Background(), testDate, "19:00", 2, "mine")

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(1), candidates[0].ID)
}

func TestAvailabilityService_FindCandidateTables_RepoError(t *testing.T) {
	tableRepo := mocks.NewMockTableRepo(t)
	store := mocks.NewMockBookingStore(t)
	svc := NewAvailabilityService(tableRepo, store)

	tableRepo.EXPECT().
		Find(mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	_, err := svc.FindCandidateTables(context.Background(), testDate, "19:00", 2, "")

	assert.Error(t, err)
}

func TestAvailabilityService_SlotSummary_IgnoresPartySize(t *testing.T) {
	tableRepo := mocks.NewMockTableRepo(t)
	store := mocks.NewMockBookingStore(t)
	svc := NewAvailabilityService(tableRepo, store)

	// the summary counts every available table, including too-small ones
	tableRepo.EXPECT().
		Find(mock.Anything, domain.TableFilter{AvailableOnly: true}).
		Return([]*domain.Table{
			{ID: 1, Capacity: 2, Available: true},
			{ID: 2, Capacity: 2, Available: true},
			{ID: 3, Capacity: 6, Available: true},
		}, nil)
	store.EXPECT().
		ActiveForSlot(mock.Anything, testDate, "19:00").
		Return([]*domain.Booking{
			{ID: "b1", TableID: 3, Status: domain.BookingStatusConfirmed},
		}, nil)

	summary, err := svc.SlotSummary(context.Background(), testDate, "19:00")

	require.NoError(t, err)
	assert.Equal(t, domain.SlotSummary{TotalTables: 3, OccupiedTables: 1, AvailableTables: 2}, summary)
}

func TestAvailabilityService_Check(t *testing.T) {
	tableRepo := mocks.NewMockTableRepo(t)
	store := mocks.NewMockBookingStore(t)
	svc := NewAvailabilityService(tableRepo, store)

	tableRepo.EXPECT().
		Find(mock.Anything, domain.TableFilter{MinCapacity: 8, AvailableOnly: true}).
		Return(nil, nil)
	tableRepo.EXPECT().
		Find(mock.Anything, domain.TableFilter{AvailableOnly: true}).
		Return([]*domain.Table{{ID: 1, Capacity: 2, Available: true}}, nil)
	store.EXPECT().
		ActiveForSlot(mock.Anything, testDate, "19:00").
		Return(nil, nil).
		Twice()

	availability, err := svc.Check(context.Background(), testDate, "19:00", 8)

	require.NoError(t, err)
	// no table fits the party, but the slot itself still has open tables
	assert.Empty(t, availability.CandidateTables)
	assert.Equal(t, domain.SlotSummary{TotalTables: 1, OccupiedTables: 0, AvailableTables: 1}, availability.Summary)
}
