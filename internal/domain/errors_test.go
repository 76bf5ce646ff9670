package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected Kind
	}{
		{nil, ""},
		{ErrPasswordTooShort, KindValidation},
		{ErrBalanceOverflow, KindValidation},
		{ErrInvalidCredentials, KindAuthentication},
		{fmt.Errorf("complete quest 7: %w", ErrQuestExpired), KindNotFound},
		{ErrUserNotFound, KindNotFound},
		{ErrInsufficientBalance, KindInsufficientBalance},
		{ErrQuestNotActive, KindTransactionConflict},
		{ErrConcurrentUpdate, KindTransactionConflict},
		{ErrEmailTaken, KindConflict},
		{ErrDependency, KindDependency},
		{errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, KindOf(tt.err), "%v", tt.err)
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(fmt.Errorf("exec: %w", ErrConcurrentUpdate)))
	assert.False(t, IsRetryable(ErrQuestNotActive))
	assert.False(t, IsRetryable(ErrInsufficientBalance))
}
