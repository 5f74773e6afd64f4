package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/repository/inmem"
	"github.com/stpnv0/TableBooker/internal/validation"
)

type nopNotifier struct{}

func (nopNotifier) NotifyBookingConfirmed(context.Context, *domain.Booking) {}
func (nopNotifier) NotifyBookingCancelled(context.Context, *domain.Booking) {}

// inmemTableRepo resolves the name clash between the store's booking GetByID
// and the table repo's GetByID.
type inmemTableRepo struct {
	*inmem.Store
}

func (r inmemTableRepo) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	return r.Store.GetTableByID(ctx, id)
}

func newInmemBookingService(t *testing.T, store *inmem.Store) *BookingService {
	t.Helper()
	availability := NewAvailabilityService(inmemTableRepo{store}, store)
	return NewBookingService(store, availability, validation.New(validation.DefaultMaxPartySize), nopNotifier{}, newTestLogger(t))
}

func TestBookingService_ConcurrentCreates_OneTable(t *testing.T) {
	store := inmem.NewStore()
	store.AddTable(4, domain.TableLocationIndoor)
	svc := newInmemBookingService(t, store)

	const workers = 20
	req := futureRequest()

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var confirmed, noAvailability int
	for err := range results {
		switch {
		case err == nil:
			confirmed++
		case errors.Is(err, domain.ErrNoAvailability):
			noAvailability++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, confirmed)
	assert.Equal(t, workers-1, noAvailability)

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	require.NoError(t, err)
	active, err := store.ActiveForSlot(context.Background(), date, req.Time)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestBookingService_ConcurrentCreates_SpreadOverTables(t *testing.T) {
	store := inmem.NewStore()
	for i := 0; i < 5; i++ {
		store.AddTable(4, domain.TableLocationIndoor)
	}
	svc := newInmemBookingService(t, store)

	const workers = 12
	req := futureRequest()

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var confirmed int
	for err := range results {
		if err == nil {
			confirmed++
		} else {
			require.ErrorIs(t, err, domain.ErrNoAvailability)
		}
	}
	assert.Equal(t, 5, confirmed)

	// every winner holds a distinct table
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	require.NoError(t, err)
	active, err := store.ActiveForSlot(context.Background(), date, req.Time)
	require.NoError(t, err)
	require.Len(t, active, 5)

	seen := make(map[int64]bool)
	for _, b := range active {
		assert.False(t, seen[b.TableID], "table %d booked twice", b.TableID)
		seen[b.TableID] = true
	}
}

func TestBookingService_CancelReleasesSlot(t *testing.T) {
	store := inmem.NewStore()
	store.AddTable(4, domain.TableLocationIndoor)
	svc := newInmemBookingService(t, store)

	req := futureRequest()

	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrNoAvailability)

	_, err = svc.Cancel(context.Background(), first.ID)
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.TableID, second.TableID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBookingService_PicksSmallestQualifyingTable(t *testing.T) {
	store := inmem.NewStore()
	twoTop := store.AddTable(2, domain.TableLocationIndoor)
	fourTop := store.AddTable(4, domain.TableLocationIndoor)
	store.AddTable(8, domain.TableLocationTerrace)
	svc := newInmemBookingService(t, store)

	req := futureRequest()
	req.PartySize = "2"

	booking, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, twoTop.ID, booking.TableID)

	// next party of 2 falls through to the four-top
	booking, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, fourTop.ID, booking.TableID)
}

func TestBookingService_ConcurrentMoveAndCreate(t *testing.T) {
	store := inmem.NewStore()
	store.AddTable(4, domain.TableLocationIndoor)
	store.AddTable(4, domain.TableLocationIndoor)
	svc := newInmemBookingService(t, store)

	req := futureRequest()
	existing, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	newSlot := "20:00"

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = svc.Update(context.Background(), existing.ID, domain.BookingPatch{Slot: &newSlot})
	}()
	go func() {
		defer wg.Done()
		_, _ = svc.Create(context.Background(), req)
	}()
	wg.Wait()

	// whatever the interleaving, no table holds two active bookings in one slot
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	require.NoError(t, err)
	for _, slot := range []string{req.Time, newSlot} {
		active, err := store.ActiveForSlot(context.Background(), date, slot)
		require.NoError(t, err)
		seen := make(map[int64]bool)
		for _, b := range active {
			require.False(t, seen[b.TableID], "table %d double-booked at %s", b.TableID, slot)
			seen[b.TableID] = true
		}
	}
}
