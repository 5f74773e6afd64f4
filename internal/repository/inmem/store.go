// Package inmem is a process-local implementation of the storage ports.
// It backs local development runs and the concurrency tests; one mutex
// serializes every commit, which is what makes TryReserve atomic here.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type Store struct {
	mu       sync.Mutex
	tables   map[int64]*domain.Table
	bookings map[string]*domain.Booking
	nextID   int64
}

func NewStore() *Store {
	return &Store{
		tables:   make(map[int64]*domain.Table),
		bookings: make(map[string]*domain.Booking),
		nextID:   1,
	}
}

// AddTable registers a table and assigns its ID. Restaurant setup only.
func (s *Store) AddTable(capacity int, location domain.TableLocation) *domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &domain.Table{
		ID:        s.nextID,
		Capacity:  capacity,
		Location:  location,
		Available: true,
	}
	s.nextID++
	s.tables[t.ID] = t

	return cloneTable(t)
}

func (s *Store) Find(_ context.Context, filter domain.TableFilter) ([]*domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Table
	for _, t := range s.tables {
		if t.Capacity < filter.MinCapacity {
			continue
		}
		if filter.AvailableOnly && !t.Available {
			continue
		}
		res = append(res, cloneTable(t))
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Capacity != res[j].Capacity {
			return res[i].Capacity < res[j].Capacity
		}
		return res[i].ID < res[j].ID
	})

	return res, nil
}

func (s *Store) GetTableByID(_ context.Context, id int64) (*domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[id]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	return cloneTable(t), nil
}

func (s *Store) SetAvailability(_ context.Context, id int64, available bool) (*domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[id]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	t.Available = available

	return cloneTable(t), nil
}

func (s *Store) TryReserve(_ context.Context, tableID int64, date time.Time, slot string, draft domain.BookingDraft) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[tableID]; !ok {
		return nil, domain.ErrTableNotFound
	}

	if s.slotHeldLocked(tableID, date, slot, "") {
		return nil, domain.ErrSlotTaken
	}

	b := &domain.Booking{
		ID:        draft.ID,
		TableID:   tableID,
		Date:      date,
		Slot:      slot,
		PartySize: draft.PartySize,
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Status:    draft.Status,
		CreatedAt: draft.CreatedAt,
		UpdatedAt: draft.CreatedAt,
	}
	s.bookings[b.ID] = b

	return cloneBooking(b), nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (s *Store) ActiveForSlot(_ context.Context, date time.Time, slot string) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.Status.Active() && sameDate(b.Date, date) && b.Slot == slot {
			res = append(res, cloneBooking(b))
		}
	}

	sort.Slice(res, func(i, j int) bool { return res[i].TableID < res[j].TableID })

	return res, nil
}

func (s *Store) ListByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if sameDate(b.Date, date) {
			res = append(res, cloneBooking(b))
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Slot != res[j].Slot {
			return res[i].Slot < res[j].Slot
		}
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})

	return res, nil
}

func (s *Store) UpdateFields(_ context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	tableID := b.TableID
	if patch.TableID != nil {
		tableID = *patch.TableID
	}
	date := b.Date
	if patch.Date != nil {
		date = *patch.Date
	}
	slot := b.Slot
	if patch.Slot != nil {
		slot = *patch.Slot
	}
	status := b.Status
	if patch.Status != nil {
		status = *patch.Status
	}

	// A moved active booking must not land on a held slot. The check and the
	// write happen under the same lock, so the move is atomic.
	moved := tableID != b.TableID || !sameDate(date, b.Date) || slot != b.Slot
	if moved && status.Active() && s.slotHeldLocked(tableID, date, slot, id) {
		return nil, domain.ErrSlotTaken
	}

	b.TableID = tableID
	b.Date = date
	b.Slot = slot
	if patch.PartySize != nil {
		b.PartySize = *patch.PartySize
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Email != nil {
		b.Email = *patch.Email
	}
	if patch.Phone != nil {
		b.Phone = *patch.Phone
	}
	if patch.Status != nil {
		b.Status = *patch.Status
		if *patch.Status == domain.BookingStatusCancelled {
			now := time.Now().UTC()
			b.CancelledAt = &now
		}
	}
	b.UpdatedAt = time.Now().UTC()

	return cloneBooking(b), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(s.bookings, id)

	return nil
}

func (s *Store) CompletePast(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.Status != domain.BookingStatusConfirmed {
			continue
		}
		slotTime, err := time.Parse(domain.SlotFormat, b.Slot)
		if err != nil {
			continue
		}
		at := time.Date(
			b.Date.Year(), b.Date.Month(), b.Date.Day(),
			slotTime.Hour(), slotTime.Minute(), 0, 0, time.UTC,
		)
		if at.Before(now) {
			b.Status = domain.BookingStatusCompleted
			b.UpdatedAt = now
			res = append(res, cloneBooking(b))
		}
	}

	return res, nil
}

func (s *Store) slotHeldLocked(tableID int64, date time.Time, slot, excludeID string) bool {
	for _, b := range s.bookings {
		if b.ID == excludeID {
			continue
		}
		if b.TableID == tableID && b.Status.Active() && sameDate(b.Date, date) && b.Slot == slot {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}

func cloneTable(t *domain.Table) *domain.Table {
	c := *t
	return &c
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}
