package result

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestVariantChecks(t *testing.T) {
	tests := []struct {
		name        string
		r           Result[int]
		wantSuccess bool
	}{
		{
			name:        "success holds the success variant",
			r:           Success(5),
			wantSuccess: true,
		},
		{
			name:        "failure holds the failure variant",
			r:           Failure[int](errBoom),
			wantSuccess: false,
		},
		{
			name:        "zero value is a failure",
			r:           Result[int]{},
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSuccess, tt.r.IsSuccess())
			assert.Equal(t, !tt.wantSuccess, tt.r.IsFailure())
		})
	}
}

func TestValueProjection(t *testing.T) {
	v, ok := Success("hello").Value()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	v, ok = Failure[string](errBoom).Value()
	assert.False(t, ok)
	assert.Equal(t, "", v, "failure projects the zero value")
}

func TestErrProjection(t *testing.T) {
	assert.NoError(t, Success(1).Err())
	assert.ErrorIs(t, Failure[int](errBoom).Err(), errBoom)
}

func TestFold(t *testing.T) {
	onSuccess := func(v int) string { return "ok" }
	onFailure := func(err error) string { return "failed: " + err.Error() }

	assert.Equal(t, "ok", Fold(Success(5), onSuccess, onFailure))
	assert.Equal(t, "failed: boom", Fold(Failure[int](errBoom), onSuccess, onFailure))
}

func TestMap(t *testing.T) {
	t.Run("success transforms the value", func(t *testing.T) {
		r := Map(Success(5), func(v int) int { return v + 1 })
		assert.Equal(t, Success(6), r)
	})

	t.Run("success can change the value type", func(t *testing.T) {
		r := Map(Success(5), func(v int) string { return "five" })
		assert.Equal(t, Success("five"), r)
	})

	t.Run("failure carries the same payload untouched", func(t *testing.T) {
		r := Map(Failure[int](errBoom), func(v int) int { return v + 1 })
		require.True(t, r.IsFailure())
		assert.Same(t, errBoom, r.Err())
	})
}

func TestRecover(t *testing.T) {
	heal := func(err error) int { return -1 }

	t.Run("failure heals into a success", func(t *testing.T) {
		r := Failure[int](errBoom).Recover(heal)
		assert.Equal(t, Success(-1), r)
	})

	t.Run("success is returned unchanged", func(t *testing.T) {
		r := Success(5).Recover(heal)
		assert.Equal(t, Success(5), r)
	})
}

func TestSideEffectHooks(t *testing.T) {
	t.Run("OnSuccess fires only on success", func(t *testing.T) {
		var got int
		Success(5).OnSuccess(func(v int) { got = v })
		assert.Equal(t, 5, got)

		called := false
		Failure[int](errBoom).OnSuccess(func(int) { called = true })
		assert.False(t, called)
	})

	t.Run("OnFailure fires only on failure", func(t *testing.T) {
		var got error
		Failure[int](errBoom).OnFailure(func(err error) { got = err })
		assert.ErrorIs(t, got, errBoom)

		called := false
		Success(5).OnFailure(func(error) { called = true })
		assert.False(t, called)
	})
}

func TestDelay(t *testing.T) {
	const wait = 10 * time.Millisecond

	start := time.Now()
	r := Success(5).Delay(context.Background(), wait)
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, wait)
	assert.Equal(t, Success(5), r)
}

func TestDelayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	r := Success(5).Delay(ctx, time.Hour)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second, "cancellation should cut the wait short")
	assert.Equal(t, Success(5), r, "the receiver is returned unchanged")
}
