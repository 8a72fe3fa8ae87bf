package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tablemate-backend/internal/models"
	"tablemate-backend/internal/repository"
	"tablemate-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

type fakeAggregator struct {
	mu       sync.Mutex
	calls    []string
	failFor  int   // cantidad de llamadas que fallan antes de funcionar
	failWith error // error a devolver mientras failFor > 0
}

func (f *fakeAggregator) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.failFor > 0 {
		f.failFor--
		if f.failWith != nil {
			return f.failWith
		}
		return errors.New("conflicto simulado")
	}
	return nil
}

func (f *fakeAggregator) OnReviewCreated(ctx context.Context, restID string, rating float64) error {
	return f.record("created:" + restID)
}

func (f *fakeAggregator) OnReviewUpdated(ctx context.Context, restID string, oldRating, newRating float64) error {
	return f.record("updated:" + restID)
}

func (f *fakeAggregator) OnReviewDeleted(ctx context.Context, restID string, rating float64) error {
	return f.record("deleted:" + restID)
}

type fakeProvisioner struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeProvisioner) OnRestaurantCreated(ctx context.Context, restID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, restID)
	return nil
}

type fakeCleaner struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeCleaner) DeleteAllReviews(ctx context.Context, restID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, restID)
	return 0, nil
}

type fakeInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeInvalidator) InvalidateNearby(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func runEvents(d *Dispatcher, evs ...Event) {
	in := make(chan Event, len(evs))
	for _, ev := range evs {
		in <- ev
	}
	close(in)
	d.Run(context.Background(), in)
}

func review(rating float64) *models.ReviewDoc {
	return &models.ReviewDoc{Rating: rating}
}

func TestDispatcherRoutesEvents(t *testing.T) {
	agg := &fakeAggregator{}
	prov := &fakeProvisioner{}
	clean := &fakeCleaner{}
	inv := &fakeInvalidator{}
	d := NewDispatcher(agg, prov, clean, inv, 1, 1)

	runEvents(d,
		Event{ID: "1", Kind: RestaurantCreated, RestID: "r1"},
		Event{ID: "2", Kind: ReviewCreated, RestID: "r1", Review: review(5)},
		Event{ID: "3", Kind: ReviewUpdated, RestID: "r1", Review: review(3), Before: review(5)},
		Event{ID: "4", Kind: ReviewDeleted, RestID: "r1", Review: review(3)},
		Event{ID: "5", Kind: RestaurantDeleted, RestID: "r1"},
	)

	assert.Equal(t, []string{"created:r1", "updated:r1", "deleted:r1"}, agg.calls)
	assert.Equal(t, []string{"r1"}, prov.calls)
	assert.Equal(t, []string{"r1"}, clean.calls)
	// solo los eventos de restaurante invalidan las búsquedas cacheadas
	assert.Equal(t, 2, inv.calls)
}

func TestDispatcherRetriesFailedEvent(t *testing.T) {
	agg := &fakeAggregator{failFor: 2}
	d := NewDispatcher(agg, &fakeProvisioner{}, &fakeCleaner{}, &fakeInvalidator{}, 1, 3)

	runEvents(d, Event{ID: "1", Kind: ReviewCreated, RestID: "r1", Review: review(4)})

	// dos fallos + un éxito
	assert.Len(t, agg.calls, 3)
}

func TestDispatcherDoesNotRetryPermanentError(t *testing.T) {
	agg := &fakeAggregator{failFor: 100, failWith: service.ErrNoReviews}
	d := NewDispatcher(agg, &fakeProvisioner{}, &fakeCleaner{}, &fakeInvalidator{}, 1, 3)

	runEvents(d, Event{ID: "1", Kind: ReviewUpdated, RestID: "r1", Review: review(4), Before: review(2)})

	// un error permanente no se reintenta aunque queden intentos
	assert.Len(t, agg.calls, 1)
}

func TestDispatcherDoesNotRetryMissingRestaurant(t *testing.T) {
	agg := &fakeAggregator{failFor: 100, failWith: repository.ErrRestaurantNotFound}
	d := NewDispatcher(agg, &fakeProvisioner{}, &fakeCleaner{}, &fakeInvalidator{}, 1, 3)

	runEvents(d, Event{ID: "1", Kind: ReviewCreated, RestID: "huerfano", Review: review(4)})

	assert.Len(t, agg.calls, 1)
}

func TestDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	agg := &fakeAggregator{failFor: 100}
	d := NewDispatcher(agg, &fakeProvisioner{}, &fakeCleaner{}, &fakeInvalidator{}, 1, 2)

	runEvents(d,
		Event{ID: "1", Kind: ReviewCreated, RestID: "r1", Review: review(4)},
		Event{ID: "2", Kind: ReviewCreated, RestID: "r2", Review: review(2)},
	)

	// 2 intentos por evento, y el segundo evento se procesa igual
	assert.Len(t, agg.calls, 4)
}

func TestDispatcherConcurrentWorkers(t *testing.T) {
	agg := &fakeAggregator{}
	d := NewDispatcher(agg, &fakeProvisioner{}, &fakeCleaner{}, &fakeInvalidator{}, 8, 1)

	var evs []Event
	for i := 0; i < 100; i++ {
		evs = append(evs, Event{Kind: ReviewCreated, RestID: "r1", Review: review(4)})
	}
	runEvents(d, evs...)

	assert.Len(t, agg.calls, 100)
}
