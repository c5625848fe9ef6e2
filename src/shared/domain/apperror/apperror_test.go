package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	notFound := New(KindNotFound, "order not found")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error is internal", errors.New("boom"), KindInternal},
		{"sentinel", notFound, KindNotFound},
		{"wrapped sentinel", fmt.Errorf("%w: 42", notFound), KindNotFound},
		{"business wins over cause", Business("error processing order", notFound), KindBusiness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestBusinessKeepsCause(t *testing.T) {
	cause := New(KindNotFound, "customer not found")
	err := Business("error processing order, check the data provided", cause)

	assert.Equal(t, "error processing order, check the data provided", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindBusiness))
	assert.False(t, IsKind(nil, KindBusiness))
}
