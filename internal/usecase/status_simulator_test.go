package usecase

import (
	"context"
	"testing"
	"time"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, store *FlightStore, rules []entity.TransitionRule) *StatusSimulator {
	t.Helper()
	sim, err := NewStatusSimulator(store, rules, time.Second, logger.NewNopLogger(), WithClock(fixedClock()))
	require.NoError(t, err)
	return sim
}

func TestStatusSimulator_TickAppliesDefaultRules(t *testing.T) {
	repo := &memoryCollectionRepo{}
	store := NewFlightStore(repo, logger.NewNopLogger(), WithClock(func() time.Time {
		return time.Date(2025, 8, 10, 6, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, store.Initialize(context.Background()))
	sim := newTestSimulator(t, store, DefaultTransitionRules())

	applied, err := sim.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	f001, err := store.Get("F001")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelayed, f001.Status)
	assert.Equal(t, "2025-08-10 09:00 AM", f001.EstimatedDeparture)
	assert.Equal(t, "2025-08-10 05:30 PM", f001.EstimatedArrival)
	assert.Equal(t, "2025-08-10 08:00 AM", f001.DepartureTime)
	assert.Equal(t, fixedStamp, f001.LastUpdated)

	f002, err := store.Get("F002")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeparted, f002.Status)
	assert.Equal(t, "2025-08-10 10:15 AM", f002.EstimatedDeparture, "estimates kept when the rule sets none")
	assert.Equal(t, fixedStamp, f002.LastUpdated)

	f003, err := store.Get("F003")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnTime, f003.Status)
	assert.Equal(t, "2025-08-10 06:00:00 AM", f003.LastUpdated, "untouched flights keep their stamp")

	assert.Equal(t, store.List(), repo.snapshot())
}

func TestStatusSimulator_RulesFireOnce(t *testing.T) {
	repo := &memoryCollectionRepo{}
	store := newTestStore(t, repo)
	sim := newTestSimulator(t, store, DefaultTransitionRules())
	ctx := context.Background()

	_, err := sim.Tick(ctx)
	require.NoError(t, err)
	before := store.List()
	saves := repo.saveCount()

	applied, err := sim.Tick(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, applied)
	assert.Equal(t, before, store.List())
	assert.Equal(t, saves, repo.saveCount())
}

func TestStatusSimulator_OneRulePerFlightPerTick(t *testing.T) {
	store := newTestStore(t, &memoryCollectionRepo{})
	sim := newTestSimulator(t, store, []entity.TransitionRule{
		{FlightID: "F003", From: entity.StatusOnTime, To: entity.StatusDelayed},
		{FlightID: "F003", From: entity.StatusDelayed, To: entity.StatusDeparted},
	})
	ctx := context.Background()

	applied, err := sim.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	f, _ := store.Get("F003")
	assert.Equal(t, entity.StatusDelayed, f.Status)

	applied, err = sim.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	f, _ = store.Get("F003")
	assert.Equal(t, entity.StatusDeparted, f.Status)
}

func TestStatusSimulator_IgnoresMissingFlights(t *testing.T) {
	store := newTestStore(t, &memoryCollectionRepo{})
	require.NoError(t, store.Remove(context.Background(), "F001"))
	sim := newTestSimulator(t, store, DefaultTransitionRules())

	applied, err := sim.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 2, store.Len())
}

func TestStatusSimulator_PersistenceErrorIsReported(t *testing.T) {
	repo := &memoryCollectionRepo{}
	store := newTestStore(t, repo)
	sim := newTestSimulator(t, store, DefaultTransitionRules())
	repo.saveErr = errDiskFull

	applied, err := sim.Tick(context.Background())

	assert.Equal(t, 2, applied, "in-memory transitions still happen")
	assert.ErrorIs(t, err, entity.ErrPersistence)
	f, _ := store.Get("F002")
	assert.Equal(t, entity.StatusDeparted, f.Status)
}

func TestNewStatusSimulator_Validation(t *testing.T) {
	store := newTestStore(t, &memoryCollectionRepo{})

	_, err := NewStatusSimulator(store, nil, 0, logger.NewNopLogger())
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = NewStatusSimulator(store, []entity.TransitionRule{
		{FlightID: "F001", From: entity.StatusArrived, To: entity.StatusDeparted},
	}, time.Second, logger.NewNopLogger())
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)

	_, err = NewStatusSimulator(store, []entity.TransitionRule{
		{FlightID: "F001", From: "Boarding", To: entity.StatusDeparted},
	}, time.Second, logger.NewNopLogger())
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestStatusSimulator_RunStopsOnCancel(t *testing.T) {
	store := newTestStore(t, &memoryCollectionRepo{})
	sim, err := NewStatusSimulator(store, DefaultTransitionRules(), 10*time.Millisecond, logger.NewNopLogger(), WithClock(fixedClock()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		f, err := store.Get("F002")
		return err == nil && f.Status == entity.StatusDeparted
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("simulator did not stop after cancellation")
	}
}

func TestStatusSimulator_NoTickAfterCancel(t *testing.T) {
	repo := &memoryCollectionRepo{}
	store := newTestStore(t, repo)
	sim := newTestSimulator(t, store, DefaultTransitionRules())
	saves := repo.saveCount()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim.Run(ctx)

	assert.Equal(t, saves, repo.saveCount())
	f, _ := store.Get("F001")
	assert.Equal(t, entity.StatusOnTime, f.Status)
}
