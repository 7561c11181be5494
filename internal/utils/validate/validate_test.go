package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formPayload struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

func TestHumanize(t *testing.T) {
	v := V()

	tests := []struct {
		name    string
		payload formPayload
		wantMsg string
	}{
		{
			name:    "missing title",
			payload: formPayload{Content: "body"},
			wantMsg: "Please enter the title",
		},
		{
			name:    "missing content",
			payload: formPayload{Title: "head"},
			wantMsg: "Please enter the content",
		},
		{
			name:    "missing both reports title first",
			payload: formPayload{},
			wantMsg: "Please enter the title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Humanize(v.Struct(tt.payload))
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestHumanizeValid(t *testing.T) {
	v := V()
	assert.NoError(t, Humanize(v.Struct(formPayload{Title: "a", Content: "b"})))
}

func TestHumanizePassthrough(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, Humanize(plain))
}

func TestSharedValidator(t *testing.T) {
	assert.Same(t, V(), V())
}
