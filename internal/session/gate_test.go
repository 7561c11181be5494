package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestGateAdmitsIdentity(t *testing.T) {
	redirects := 0
	gate := NewGate(
		IdentityFunc(func() (string, bool) { return "alice@example.com", true }),
		RedirectFunc(func() { redirects++ }),
		silentLogger,
	)

	identity, err := gate.Admit()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity)
	assert.Zero(t, redirects)
}

func TestGateRedirectsWithoutIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		present  bool
	}{
		{name: "absent", identity: "", present: false},
		{name: "present but empty", identity: "", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redirects := 0
			gate := NewGate(
				IdentityFunc(func() (string, bool) { return tt.identity, tt.present }),
				RedirectFunc(func() { redirects++ }),
				silentLogger,
			)

			identity, err := gate.Admit()
			assert.ErrorIs(t, err, ErrNoIdentity)
			assert.Empty(t, identity)
			assert.Equal(t, 1, redirects)
		})
	}
}
