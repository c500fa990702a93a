package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/internal/metrics"
	"github.com/shrutirout/foxdeal/pkg/extract"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

type fakeLocker struct {
	mu       sync.Mutex
	holders  map[string]string
	acquired int
	released int
	err      error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{holders: make(map[string]string)}
}

func (l *fakeLocker) Acquire(_ context.Context, name, holder string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return false, l.err
	}
	if _, held := l.holders[name]; held {
		return false, nil
	}
	l.holders[name] = holder
	l.acquired++
	return true, nil
}

func (l *fakeLocker) Release(_ context.Context, name, holder string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holders[name] == holder {
		delete(l.holders, name)
		l.released++
	}
	return nil
}

func sweepProducts() []domain.TrackedProduct {
	return []domain.TrackedProduct{
		{ID: "p-1", OwnerID: "user-1", URL: anchorURL, Name: "Apple iPhone 15", CurrentPrice: dec("69900"), Currency: "INR"},
		{ID: "p-2", OwnerID: "user-2", URL: flipkartURL, Name: "Apple iPhone 15", CurrentPrice: dec("71999"), Currency: "INR"},
		{ID: "p-3", OwnerID: "user-1", URL: cromaURL, Name: "Apple iPhone 15", CurrentPrice: dec("72900"), Currency: "INR"},
		{ID: "p-4", OwnerID: "user-3", URL: tataURL, Name: "Apple iPhone 15", CurrentPrice: dec("70000"), Currency: "INR"},
	}
}

// Not parallel: asserts on global counters.
func TestRunSweep_CountsOutcomes(t *testing.T) {
	d := newTestDeps(t)
	eng := newTestEngine(d)

	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(sweepProducts(), nil).Once()

	// p-1 unchanged, p-2 dropped, p-3 fails extraction, p-4 rises.
	d.extractor.EXPECT().Extract(mock.Anything, anchorURL).
		Return(testFact("Apple iPhone 15", anchorURL, "amazon.in", "69900"), nil).Once()
	d.extractor.EXPECT().Extract(mock.Anything, flipkartURL).
		Return(testFact("Apple iPhone 15", flipkartURL, "flipkart.com", "65999"), nil).Once()
	d.extractor.EXPECT().Extract(mock.Anything, cromaURL).
		Return(domain.ProductFact{}, &extract.ExtractionError{URL: cromaURL, Reason: extract.ReasonTimeout}).Once()
	d.extractor.EXPECT().Extract(mock.Anything, tataURL).
		Return(testFact("Apple iPhone 15", tataURL, "tatacliq.com", "71000"), nil).Once()

	d.store.EXPECT().RecordObservation(mock.Anything, mock.Anything, (*domain.PriceHistoryPoint)(nil)).Return(nil).Once()
	d.store.EXPECT().RecordObservation(mock.Anything, mock.Anything, mock.MatchedBy(func(pt *domain.PriceHistoryPoint) bool {
		return pt != nil
	})).Return(nil).Times(2)
	d.notifier.EXPECT().NotifyPriceDrop(mock.Anything, "user-2", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	completedBefore := ptestutil.ToFloat64(metrics.SweepRunsTotal.WithLabelValues("completed"))

	res, err := eng.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 3, res.Updated)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 2, res.PriceChanges)
	assert.Equal(t, 1, res.AlertsSent)
	assert.InDelta(t, completedBefore+1, ptestutil.ToFloat64(metrics.SweepRunsTotal.WithLabelValues("completed")), 0.001)
}

func TestRunSweep_FailedAlertIsNotCounted(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	eng := newTestEngine(d)

	products := sweepProducts()[1:2]
	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(products, nil).Once()
	d.extractor.EXPECT().Extract(mock.Anything, flipkartURL).
		Return(testFact("Apple iPhone 15", flipkartURL, "flipkart.com", "65999"), nil).Once()
	d.store.EXPECT().RecordObservation(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	d.notifier.EXPECT().NotifyPriceDrop(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("telegram: chat not found")).Once()

	res, err := eng.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.PriceChanges)
	assert.Zero(t, res.AlertsSent)
	assert.Zero(t, res.Failed)
}

func TestRunSweep_StoreFailureCountsProduct(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	eng := newTestEngine(d)

	products := sweepProducts()[:1]
	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(products, nil).Once()
	d.extractor.EXPECT().Extract(mock.Anything, anchorURL).
		Return(testFact("Apple iPhone 15", anchorURL, "amazon.in", "60000"), nil).Once()
	d.store.EXPECT().RecordObservation(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("deadlock detected")).Once()

	res, err := eng.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Zero(t, res.Updated)
}

func TestRunSweep_InvalidFactCountsAsFailure(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	eng := newTestEngine(d)

	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(sweepProducts()[:1], nil).Once()
	d.extractor.EXPECT().Extract(mock.Anything, anchorURL).
		Return(domain.ProductFact{Name: "Apple iPhone 15"}, nil).Once()

	res, err := eng.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
}

func TestRunSweep_Empty(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	eng := newTestEngine(d)
	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(nil, nil).Once()

	res, err := eng.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SweepResult{}, res)
}

func TestRunSweep_ListFailure(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	eng := newTestEngine(d)
	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(nil, errors.New("pool closed")).Once()

	_, err := eng.RunSweep(context.Background())
	require.ErrorContains(t, err, "listing tracked products")
}

func TestRunSweep_PerItemTimeout(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	eng := newTestEngine(d, WithItemTimeout(30*time.Millisecond))

	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(sweepProducts()[:2], nil).Once()
	d.extractor.EXPECT().Extract(mock.Anything, anchorURL).
		RunAndReturn(func(ctx context.Context, _ string) (domain.ProductFact, error) {
			<-ctx.Done()
			return domain.ProductFact{}, ctx.Err()
		}).Once()
	d.extractor.EXPECT().Extract(mock.Anything, flipkartURL).
		Return(testFact("Apple iPhone 15", flipkartURL, "flipkart.com", "71999"), nil).Once()
	d.store.EXPECT().RecordObservation(mock.Anything, mock.Anything, (*domain.PriceHistoryPoint)(nil)).Return(nil).Once()

	res, err := eng.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Updated)
	assert.Zero(t, res.PriceChanges)
}

func TestRunSweep_CancelledContextStopsEarly(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	eng := newTestEngine(d)

	ctx, cancel := context.WithCancel(context.Background())
	d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(sweepProducts(), nil).Once()
	d.extractor.EXPECT().Extract(mock.Anything, anchorURL).
		RunAndReturn(func(context.Context, string) (domain.ProductFact, error) {
			cancel()
			return domain.ProductFact{}, context.Canceled
		}).Once()

	res, err := eng.RunSweep(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 4, res.Failed)
}

func TestRunSweep_Locking(t *testing.T) {
	t.Parallel()

	t.Run("lock held elsewhere", func(t *testing.T) {
		t.Parallel()

		d := newTestDeps(t)
		lk := newFakeLocker()
		lk.holders[sweepLockName] = "other-replica"
		eng := newTestEngine(d, WithLocker(lk, time.Minute))

		_, err := eng.RunSweep(context.Background())
		require.ErrorIs(t, err, ErrSweepInProgress)
	})

	t.Run("lock error", func(t *testing.T) {
		t.Parallel()

		d := newTestDeps(t)
		lk := newFakeLocker()
		lk.err = errors.New("redis: connection refused")
		eng := newTestEngine(d, WithLocker(lk, time.Minute))

		_, err := eng.RunSweep(context.Background())
		require.ErrorContains(t, err, "acquiring sweep lock")
	})

	t.Run("lock released after sweep", func(t *testing.T) {
		t.Parallel()

		d := newTestDeps(t)
		lk := newFakeLocker()
		eng := newTestEngine(d, WithLocker(lk, time.Minute))
		d.store.EXPECT().ListAllTrackedProducts(mock.Anything).Return(nil, nil).Times(2)

		_, err := eng.RunSweep(context.Background())
		require.NoError(t, err)
		_, err = eng.RunSweep(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, lk.acquired)
		assert.Equal(t, 2, lk.released)
		assert.Empty(t, lk.holders)
	})

	t.Run("overlapping sweep in process", func(t *testing.T) {
		t.Parallel()

		d := newTestDeps(t)
		eng := newTestEngine(d)

		started := make(chan struct{})
		release := make(chan struct{})
		d.store.EXPECT().ListAllTrackedProducts(mock.Anything).
			RunAndReturn(func(context.Context) ([]domain.TrackedProduct, error) {
				close(started)
				<-release
				return nil, nil
			}).Once()

		done := make(chan error, 1)
		go func() {
			_, err := eng.RunSweep(context.Background())
			done <- err
		}()

		<-started
		_, err := eng.RunSweep(context.Background())
		require.ErrorIs(t, err, ErrSweepInProgress)

		close(release)
		require.NoError(t, <-done)
	})
}
