package viewport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/ui/mainloop"
)

func TestSource_UpdateNotifiesOnChangeOnly(t *testing.T) {
	s := New()
	calls := 0
	_, err := s.AddScrollListener(func() { calls++ })
	require.NoError(t, err)

	s.Update(0, 10)
	s.Update(0, 10)
	s.Update(2.5, 10)

	assert.Equal(t, 2, calls)
	got, err := s.ScrollOffset()
	require.NoError(t, err)
	assert.Equal(t, entity.WindowScroll{X: 2.5, Y: 10}, got)
}

func TestSource_RemoveListener(t *testing.T) {
	s := New()
	calls := 0
	remove, err := s.AddScrollListener(func() { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 1, s.Listeners())

	remove()
	remove()
	s.Update(1, 1)

	assert.Zero(t, calls)
	assert.Zero(t, s.Listeners())
}

func TestSource_Detach(t *testing.T) {
	s := New()
	calls := 0
	_, err := s.AddScrollListener(func() { calls++ })
	require.NoError(t, err)

	s.Detach()
	s.Update(5, 5)

	_, err = s.ScrollOffset()
	assert.ErrorIs(t, err, ErrDetached)
	_, err = s.AddScrollListener(func() {})
	assert.ErrorIs(t, err, ErrDetached)
	assert.Zero(t, calls)
}

func TestSource_NilListener(t *testing.T) {
	_, err := New().AddScrollListener(nil)
	assert.ErrorIs(t, err, port.ErrRegistration)
}

func TestSource_CoalescesBursts(t *testing.T) {
	var queue []func()
	c := mainloop.NewCoalescer(func(fn func()) { queue = append(queue, fn) })
	s := New(WithCoalescer(c))

	calls := 0
	_, err := s.AddScrollListener(func() { calls++ })
	require.NoError(t, err)

	s.Update(0, 1)
	s.Update(0, 2)
	s.Update(0, 3)
	require.Len(t, queue, 1)

	queue[0]()
	assert.Equal(t, 1, calls)
}

func TestSource_FeedsScrollObserver(t *testing.T) {
	s := New()
	s.Update(0, 40)

	obs := observer.NewScrollObserver(context.Background(), s, entity.WindowScroll{})
	obs.Activate()
	assert.Equal(t, entity.WindowScroll{Y: 40}, obs.Value())

	s.Update(0, 80)
	assert.Equal(t, entity.WindowScroll{Y: 80}, obs.Value())

	obs.Deactivate()
	s.Update(0, 120)
	assert.Equal(t, entity.WindowScroll{Y: 80}, obs.Value())
	assert.Zero(t, s.Listeners())
}
