package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-cli/internal/platform/health"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) Name() string {
	return m.Called().String(0)
}

func (m *mockChecker) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newChecker(t *testing.T, name string, err error) *mockChecker {
	t.Helper()
	c := new(mockChecker)
	c.On("Name").Return(name)
	c.On("HealthCheck", mock.Anything).Return(err)
	t.Cleanup(func() { c.AssertExpectations(t) })
	return c
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(newChecker(t, "todoist-api", nil))
	r.Register(newChecker(t, "config", nil))

	results := r.CheckAll(context.Background())

	require.Len(t, results, 2)
	assert.NoError(t, results["todoist-api"])
	assert.NoError(t, results["config"])
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("connection refused")
	r := health.New()
	r.Register(newChecker(t, "config", nil))
	r.Register(newChecker(t, "todoist-api", errRefused))

	results := r.CheckAll(context.Background())

	assert.NoError(t, results["config"])
	assert.ErrorIs(t, results["todoist-api"], errRefused)
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := new(mockChecker)
	c.On("Name").Return("todoist-api")
	c.On("HealthCheck", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	results := r.CheckAll(ctx)

	assert.ErrorIs(t, results["todoist-api"], context.Canceled)
	c.AssertExpectations(t)
}

func TestCheckAll_AppliesCheckTimeout(t *testing.T) {
	t.Parallel()

	c := new(mockChecker)
	c.On("Name").Return("todoist-api")
	c.On("HealthCheck", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(c)

	assert.NoError(t, r.CheckAll(context.Background())["todoist-api"])
	c.AssertExpectations(t)
}

func TestCheckAll_NoTimeoutLeavesContextAlone(t *testing.T) {
	t.Parallel()

	c := new(mockChecker)
	c.On("Name").Return("todoist-api")
	c.On("HealthCheck", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return !ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(0))
	r.Register(c)

	assert.NoError(t, r.CheckAll(context.Background())["todoist-api"])
	c.AssertExpectations(t)
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	errSecond := errors.New("second failure")
	r := health.New()
	r.Register(newChecker(t, "todoist-api", nil))
	r.Register(newChecker(t, "todoist-api", errSecond))

	results := r.CheckAll(context.Background())

	require.Len(t, results, 1)
	assert.ErrorIs(t, results["todoist-api"], errSecond)
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := range goroutines {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := new(mockChecker)
				c.On("Name").Return("checker").Maybe()
				c.On("HealthCheck", mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
