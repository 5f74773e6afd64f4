package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
)

// AvailabilityService answers which tables can host a party at a slot. Its
// queries are advisory: they narrow the candidate set, but only the store's
// atomic reserve decides who gets a table.
type AvailabilityService struct {
	tableRepo    ports.TableRepo
	bookingStore ports.BookingStore
}

func NewAvailabilityService(tableRepo ports.TableRepo, bookingStore ports.BookingStore) *AvailabilityService {
	return &AvailabilityService{
		tableRepo:    tableRepo,
		bookingStore: bookingStore,
	}
}

// FindCandidateTables returns the tables that could host a party of partySize
// at (date, slot): big enough, administratively available, and without an
// active booking there. Smallest capacity first so large tables are kept for
// large parties; ties break on table ID. An active booking with
// excludeBookingID does not count as occupying its table, which lets updates
// re-book their own slot.
func (s *AvailabilityService) FindCandidateTables(
	ctx context.Context,
	date time.Time,
	slot string,
	partySize int,
	excludeBookingID string,
) ([]*domain.Table, error) {
	tables, err := s.tableRepo.Find(ctx, domain.TableFilter{
		MinCapacity:   partySize,
		AvailableOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("find tables: %w", err)
	}

	occupied, err := s.occupiedTables(ctx, date, slot, excludeBookingID)
	if err != nil {
		return nil, err
	}

	candidates := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if !occupied[t.ID] {
			candidates = append(candidates, t)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity != candidates[j].Capacity {
			return candidates[i].Capacity < candidates[j].Capacity
		}
		return candidates[i].ID < candidates[j].ID
	})

	return candidates, nil
}

// SlotSummary reports restaurant-wide utilisation of (date, slot) over all
// administratively available tables, regardless of party size. It can show
// open tables even when FindCandidateTables returns none, because too-small
// tables still count here.
func (s *AvailabilityService) SlotSummary(ctx context.Context, date time.Time, slot string) (domain.SlotSummary, error) {
	tables, err := s.tableRepo.Find(ctx, domain.TableFilter{AvailableOnly: true})
	if err != nil {
		return domain.SlotSummary{}, fmt.Errorf("find tables: %w", err)
	}

	occupied, err := s.occupiedTables(ctx, date, slot, "")
	if err != nil {
		return domain.SlotSummary{}, err
	}

	summary := domain.SlotSummary{TotalTables: len(tables)}
	for _, t := range tables {
		if occupied[t.ID] {
			summary.OccupiedTables++
		}
	}
	summary.AvailableTables = summary.TotalTables - summary.OccupiedTables

	return summary, nil
}

// Check combines candidates and the slot summary for the outward-facing
// availability endpoint.
func (s *AvailabilityService) Check(ctx context.Context, date time.Time, slot string, partySize int) (*domain.Availability, error) {
	candidates, err := s.FindCandidateTables(ctx, date, slot, partySize, "")
	if err != nil {
		return nil, err
	}

	summary, err := s.SlotSummary(ctx, date, slot)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		CandidateTables: candidates,
		Summary:         summary,
	}, nil
}

func (s *AvailabilityService) occupiedTables(ctx context.Context, date time.Time, slot, excludeBookingID string) (map[int64]bool, error) {
	active, err := s.bookingStore.ActiveForSlot(ctx, date, slot)
	if err != nil {
		return nil, fmt.Errorf("active bookings for slot: %w", err)
	}

	occupied := make(map[int64]bool, len(active))
	for _, b := range active {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		occupied[b.TableID] = true
	}
	return occupied, nil
}
