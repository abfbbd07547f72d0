// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Transactions are serialized and roll back on error, matching the
// guarantees the Postgres unit of work gives the code under test.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/domain/room"
	"coliving-payments/internal/infra"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type roomRow struct {
	snap shared.RoomSnapshot
	inv  room.Inventory
}

type eventRow struct {
	ev        shared.BookingEvent
	published bool
}

type state struct {
	properties map[uuid.UUID]shared.PropertySnapshot
	rooms      map[uuid.UUID]roomRow
	bookings   map[uuid.UUID]booking.Booking
	byPayment  map[string]uuid.UUID
	events     []eventRow
	deliveries map[string]shared.WebhookDelivery
}

func (s state) clone() state {
	c := state{
		properties: make(map[uuid.UUID]shared.PropertySnapshot, len(s.properties)),
		rooms:      make(map[uuid.UUID]roomRow, len(s.rooms)),
		bookings:   make(map[uuid.UUID]booking.Booking, len(s.bookings)),
		byPayment:  make(map[string]uuid.UUID, len(s.byPayment)),
		events:     append([]eventRow(nil), s.events...),
		deliveries: make(map[string]shared.WebhookDelivery, len(s.deliveries)),
	}
	for k, v := range s.properties {
		c.properties[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.byPayment {
		c.byPayment[k] = v
	}
	for k, v := range s.deliveries {
		c.deliveries[k] = v
	}
	return c
}

// Store is safe for concurrent use. mu guards data and is held for the
// whole of a Within call.
type Store struct {
	mu       sync.Mutex
	data     state
	failures map[string]error
	racing   []shared.WebhookDelivery
	// Commits counts successful transactions.
	Commits int
}

func New() *Store {
	return &Store{
		data: state{
			properties: map[uuid.UUID]shared.PropertySnapshot{},
			rooms:      map[uuid.UUID]roomRow{},
			bookings:   map[uuid.UUID]booking.Booking{},
			byPayment:  map[string]uuid.UUID{},
			deliveries: map[string]shared.WebhookDelivery{},
		},
		failures: map[string]error{},
	}
}

// Operation names accepted by FailNext.
const (
	OpBegin              = "begin"
	OpCreateBooking      = "bookings.create"
	OpUpdateBooking      = "bookings.update"
	OpDecrementBeds      = "rooms.decrement"
	OpRestoreBeds        = "rooms.restore"
	OpAppendEvent        = "events.append"
	OpClaimEvents        = "events.claim"
	OpRecordDelivery     = "deliveries.record"
	OpReadBookingPayment = "reads.booking_by_payment"
	OpReadPendingRelease = "reads.pending_release"
)

// FailNext makes the next call of op return err.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// RaceDelivery records d as committed by a concurrent caller just as the
// next transaction begins, after any lock-free existence check.
func (s *Store) RaceDelivery(d shared.WebhookDelivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.racing = append(s.racing, d)
}

// must be called with mu held
func (s *Store) injected(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	if err := s.injected(OpBegin); err != nil {
		return err
	}
	for _, d := range s.racing {
		s.data.deliveries[d.EventID] = d
	}
	s.racing = nil

	before := s.data.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.data = before
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

// ---- seeding and inspection ----

func (s *Store) SeedProperty(name string, priceMinor int64) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.data.properties[id] = shared.PropertySnapshot{ID: id, Name: name, PriceMinor: priceMinor}
	return id
}

func (s *Store) SeedRoom(propertyID uuid.UUID, priceMinor int64, total, available int32) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, err := room.NewInventory(total, available)
	if err != nil {
		panic(err)
	}
	id := uuid.New()
	s.data.rooms[id] = roomRow{
		snap: shared.RoomSnapshot{ID: id, PropertyID: propertyID, Name: "room", PriceMinor: priceMinor},
		inv:  inv,
	}
	return id
}

// SeedBooking stores b as if it had been committed earlier.
func (s *Store) SeedBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.bookings[b.ID()] = *b
	s.data.byPayment[b.GatewayPaymentID()] = b.ID()
}

func (s *Store) AvailableBeds(roomID uuid.UUID) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.rooms[roomID].inv.Available()
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.bookings[id]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.bookings)
}

// Events returns every outbox event in insertion order.
func (s *Store) Events() []shared.BookingEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.BookingEvent, len(s.data.events))
	for i, r := range s.data.events {
		out[i] = r.ev
	}
	return out
}

func (s *Store) UnpublishedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.data.events {
		if !r.published {
			n++
		}
	}
	return n
}

func (s *Store) Delivery(eventID string) (shared.WebhookDelivery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data.deliveries[eventID]
	return d, ok
}

// ---- transaction ----

type memTx struct {
	s *Store
}

func (t *memTx) Bookings() shared.BookingRepository                  { return bookingRepo{t.s} }
func (t *memTx) Rooms() shared.RoomInventoryRepository               { return roomRepo{t.s} }
func (t *memTx) Events() shared.BookingEventRepository               { return eventRepo{t.s} }
func (t *memTx) WebhookDeliveries() shared.WebhookDeliveryRepository { return deliveryRepo{t.s} }
func (t *memTx) Reads() shared.CommandReads                          { return &reads{s: t.s} }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.s.injected(OpCreateBooking); err != nil {
		return err
	}
	if _, dup := r.s.data.byPayment[b.GatewayPaymentID()]; dup {
		return infra.WrapRepoErr("failed to create booking", nil, infra.KindDuplicateKey)
	}
	r.s.data.bookings[b.ID()] = *b
	r.s.data.byPayment[b.GatewayPaymentID()] = b.ID()
	return nil
}

func (r bookingRepo) FindByPaymentIDForUpdate(_ context.Context, gatewayPaymentID string) (*booking.Booking, error) {
	id, ok := r.s.data.byPayment[gatewayPaymentID]
	if !ok {
		return nil, notFound("booking not found")
	}
	b := r.s.data.bookings[id]
	return &b, nil
}

func (r bookingRepo) FindByOrderIDForUpdate(_ context.Context, gatewayOrderID string) (*booking.Booking, error) {
	var matches []booking.Booking
	for _, b := range r.s.data.bookings {
		if b.GatewayOrderID() == gatewayOrderID {
			matches = append(matches, b)
		}
	}
	if len(matches) == 0 {
		return nil, notFound("booking not found")
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt().Before(matches[j].CreatedAt()) })
	return &matches[0], nil
}

func (r bookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return &b, nil
}

func (r bookingRepo) UpdateState(_ context.Context, b *booking.Booking) error {
	if err := r.s.injected(OpUpdateBooking); err != nil {
		return err
	}
	if _, ok := r.s.data.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	r.s.data.bookings[b.ID()] = *b
	return nil
}

type roomRepo struct{ s *Store }

func (r roomRepo) DecrementAvailableBeds(_ context.Context, roomID uuid.UUID) (int32, error) {
	if err := r.s.injected(OpDecrementBeds); err != nil {
		return 0, err
	}
	row, ok := r.s.data.rooms[roomID]
	if !ok {
		return 0, notFound("room not found")
	}
	inv, err := row.inv.Decrement()
	if err != nil {
		return 0, notFound("no bed left")
	}
	row.inv = inv
	r.s.data.rooms[roomID] = row
	return inv.Available(), nil
}

func (r roomRepo) RestoreAvailableBeds(_ context.Context, roomID uuid.UUID) (int32, error) {
	if err := r.s.injected(OpRestoreBeds); err != nil {
		return 0, err
	}
	row, ok := r.s.data.rooms[roomID]
	if !ok {
		return 0, notFound("room not found")
	}
	row.inv = row.inv.Restore()
	r.s.data.rooms[roomID] = row
	return row.inv.Available(), nil
}

type eventRepo struct{ s *Store }

func (r eventRepo) Append(_ context.Context, ev shared.BookingEvent) error {
	if err := r.s.injected(OpAppendEvent); err != nil {
		return err
	}
	r.s.data.events = append(r.s.data.events, eventRow{ev: ev})
	return nil
}

func (r eventRepo) ClaimUnpublished(_ context.Context, limit int32) ([]shared.BookingEvent, error) {
	if err := r.s.injected(OpClaimEvents); err != nil {
		return nil, err
	}
	var out []shared.BookingEvent
	for _, row := range r.s.data.events {
		if int32(len(out)) >= limit {
			break
		}
		if !row.published {
			out = append(out, row.ev)
		}
	}
	return out, nil
}

func (r eventRepo) MarkPublished(_ context.Context, ids []uuid.UUID, _ time.Time) error {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for i := range r.s.data.events {
		if want[r.s.data.events[i].ev.ID] {
			r.s.data.events[i].published = true
		}
	}
	return nil
}

type deliveryRepo struct{ s *Store }

func (r deliveryRepo) Record(_ context.Context, d shared.WebhookDelivery) (bool, error) {
	if err := r.s.injected(OpRecordDelivery); err != nil {
		return false, err
	}
	if _, seen := r.s.data.deliveries[d.EventID]; seen {
		return false, nil
	}
	r.s.data.deliveries[d.EventID] = d
	return true, nil
}

// ---- reads ----

// reads takes the store lock itself unless it belongs to an open transaction.
type reads struct {
	s    *Store
	lock bool
}

func (r *reads) enter() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) PropertyByID(_ context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	defer r.enter()()
	p, ok := r.s.data.properties[id]
	if !ok {
		return nil, notFound("property not found")
	}
	return &p, nil
}

func (r *reads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	defer r.enter()()
	row, ok := r.s.data.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	snap := row.snap
	snap.TotalBeds = row.inv.Total()
	snap.AvailableBeds = row.inv.Available()
	return &snap, nil
}

func (r *reads) BookingByPaymentID(_ context.Context, gatewayPaymentID string) (*shared.BookingSnapshot, error) {
	defer r.enter()()
	if err := r.s.injected(OpReadBookingPayment); err != nil {
		return nil, err
	}
	id, ok := r.s.data.byPayment[gatewayPaymentID]
	if !ok {
		return nil, notFound("booking not found")
	}
	b := r.s.data.bookings[id]
	return &shared.BookingSnapshot{
		ID:               b.ID(),
		GatewayPaymentID: b.GatewayPaymentID(),
		PaymentStatus:    b.PaymentStatus().String(),
		BookingStatus:    b.Status().String(),
		RoomID:           b.RoomID(),
		InventoryHeld:    b.InventoryHeld(),
	}, nil
}

func (r *reads) BookingsPendingRelease(_ context.Context, limit int32) ([]uuid.UUID, error) {
	defer r.enter()()
	if err := r.s.injected(OpReadPendingRelease); err != nil {
		return nil, err
	}
	var pending []booking.Booking
	for _, b := range r.s.data.bookings {
		if b.NeedsInventoryRelease() {
			pending = append(pending, b)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].UpdatedAt().Before(pending[j].UpdatedAt()) })

	ids := make([]uuid.UUID, 0, len(pending))
	for _, b := range pending {
		if int32(len(ids)) >= limit {
			break
		}
		ids = append(ids, b.ID())
	}
	return ids, nil
}

func (r *reads) WebhookDeliveryExists(_ context.Context, eventID string) (bool, error) {
	defer r.enter()()
	_, ok := r.s.data.deliveries[eventID]
	return ok, nil
}
