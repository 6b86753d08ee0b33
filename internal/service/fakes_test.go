package service

import (
	"context"
	"sync"

	"github.com/spec-kit/trip-booking-service/internal/domain"
	"github.com/spec-kit/trip-booking-service/internal/events"
	"github.com/spec-kit/trip-booking-service/internal/repository"
)

// --- in-memory fakes, one per repository interface ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.ID == user.ID {
			return repository.ErrDuplicate
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

type fakeTripRepo struct {
	mu    sync.Mutex
	trips map[string]*domain.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*domain.Trip)}
}

func (f *fakeTripRepo) Insert(_ context.Context, trip *domain.Trip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.trips[trip.ID]; ok {
		return repository.ErrDuplicate
	}
	copied := *trip
	f.trips[trip.ID] = &copied
	return nil
}

func (f *fakeTripRepo) FindByID(_ context.Context, id string) (*domain.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if trip, ok := f.trips[id]; ok {
		copied := *trip
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTripRepo) FindAll(_ context.Context) ([]domain.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Trip, 0, len(f.trips))
	for _, trip := range f.trips {
		out = append(out, *trip)
	}
	return out, nil
}

func (f *fakeTripRepo) Update(_ context.Context, trip *domain.Trip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.trips[trip.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *trip
	f.trips[trip.ID] = &copied
	return nil
}

func (f *fakeTripRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.trips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.trips, id)
	return nil
}

func (f *fakeTripRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.trips)), nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[booking.ID]; ok {
		return repository.ErrDuplicate
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking, ok := f.bookings[id]; ok {
		copied := *booking
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID string) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Booking, 0)
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Booking, 0, len(f.bookings))
	for _, booking := range f.bookings {
		out = append(out, *booking)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	return nil
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, booking := range f.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts map[string]*domain.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*domain.Contact)}
}

func (f *fakeContactRepo) Insert(_ context.Context, contact *domain.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.contacts[contact.ID]; ok {
		return repository.ErrDuplicate
	}
	copied := *contact
	f.contacts[contact.ID] = &copied
	return nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if contact, ok := f.contacts[id]; ok {
		copied := *contact
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeContactRepo) FindAll(_ context.Context) ([]domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Contact, 0, len(f.contacts))
	for _, contact := range f.contacts {
		out = append(out, *contact)
	}
	return out, nil
}

func (f *fakeContactRepo) SetReply(_ context.Context, id, reply string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	contact, ok := f.contacts[id]
	if !ok {
		return repository.ErrNotFound
	}
	contact.Reply = &reply
	contact.Status = domain.ContactStatusReplied
	return nil
}

func (f *fakeContactRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.contacts)), nil
}

type fakeDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (f *fakeDispatcher) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, event)
	return nil
}

func (f *fakeDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (f *fakeDispatcher) events() []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]events.Event{}, f.published...)
}
