package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockReviewBatcher struct {
	remaining []primitive.ObjectID

	findCalls   int
	deleteCalls int
	deleteErr   error
}

func newMockReviewBatcher(n int) *mockReviewBatcher {
	m := &mockReviewBatcher{}
	for i := 0; i < n; i++ {
		m.remaining = append(m.remaining, primitive.NewObjectID())
	}
	return m
}

func (m *mockReviewBatcher) FindIDs(ctx context.Context, restID string, limit int) ([]primitive.ObjectID, error) {
	m.findCalls++
	if limit > len(m.remaining) {
		limit = len(m.remaining)
	}
	out := make([]primitive.ObjectID, limit)
	copy(out, m.remaining[:limit])
	return out, nil
}

func (m *mockReviewBatcher) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	m.deleteCalls++
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	drop := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []primitive.ObjectID
	for _, id := range m.remaining {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	deleted := int64(len(m.remaining) - len(kept))
	m.remaining = kept
	return deleted, nil
}

func TestDeleteAllReviewsEmptiesCollection(t *testing.T) {
	// M no múltiplo del batch
	mock := newMockReviewBatcher(1047)
	svc := NewCleanupService(mock, 200)

	deleted, err := svc.DeleteAllReviews(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, int64(1047), deleted)
	assert.Empty(t, mock.remaining)
	// ceil(1047/200) = 6 operaciones de borrado por lote
	assert.Equal(t, 6, mock.deleteCalls)
}

func TestDeleteAllReviewsNoReviews(t *testing.T) {
	mock := newMockReviewBatcher(0)
	svc := NewCleanupService(mock, 200)

	deleted, err := svc.DeleteAllReviews(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, int64(0), deleted)
	assert.Equal(t, 0, mock.deleteCalls)
	assert.Equal(t, 1, mock.findCalls)
}

func TestDeleteAllReviewsExactMultiple(t *testing.T) {
	mock := newMockReviewBatcher(400)
	svc := NewCleanupService(mock, 200)

	deleted, err := svc.DeleteAllReviews(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, int64(400), deleted)
	assert.Equal(t, 2, mock.deleteCalls)
	// el fetch final vacío es el que termina el loop
	assert.Equal(t, 3, mock.findCalls)
}

func TestDeleteAllReviewsPropagatesBatchError(t *testing.T) {
	mock := newMockReviewBatcher(500)
	mock.deleteErr = errors.New("batch commit falló")
	svc := NewCleanupService(mock, 200)

	_, err := svc.DeleteAllReviews(context.Background(), "r1")
	assert.Error(t, err)

	// el estado que queda es válido: lo que no se borró sigue ahí y un
	// reintento desde cero lo termina
	mock.deleteErr = nil
	deleted, err := svc.DeleteAllReviews(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), deleted)
	assert.Empty(t, mock.remaining)
}

func TestDeleteAllReviewsHonorsCancellation(t *testing.T) {
	mock := newMockReviewBatcher(1000)
	svc := NewCleanupService(mock, 200)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.DeleteAllReviews(ctx, "r1")
	assert.ErrorIs(t, err, context.Canceled)
}
