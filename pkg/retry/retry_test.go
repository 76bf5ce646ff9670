package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errConflict = errors.New("conflict")
	errFatal    = errors.New("fatal")
)

func isConflict(err error) bool { return errors.Is(err, errConflict) }

func TestDo(t *testing.T) {
	tests := []struct {
		name      string
		attempts  uint64
		results   []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "First call succeeds",
			attempts:  3,
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "Conflict then success",
			attempts:  3,
			results:   []error{errConflict, errConflict, nil},
			wantCalls: 3,
		},
		{
			name:      "Non retryable error stops immediately",
			attempts:  3,
			results:   []error{errFatal},
			wantCalls: 1,
			wantErr:   errFatal,
		},
		{
			name:      "Retries exhausted",
			attempts:  2,
			results:   []error{errConflict, errConflict, errConflict, nil},
			wantCalls: 3,
			wantErr:   errConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			v, err := Do(context.Background(), tt.attempts, isConflict, func(context.Context) (int, error) {
				err := tt.results[calls]
				calls++
				if err != nil {
					return 0, err
				}
				return 42, nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		})
	}
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Do(ctx, 3, isConflict, func(context.Context) (int, error) {
		calls++
		return 0, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
