// Package session gates entry to the note collection behind a usable
// identity. The identity is always injected, never read ambiently, so the
// gate is a pure function of its collaborators.
package session

import (
	"errors"
	"log/slog"
)

// ErrNoIdentity is returned when no usable identity exists.
var ErrNoIdentity = errors.New("no identity")

// IdentityProvider yields the current user identity, if any.
type IdentityProvider interface {
	CurrentIdentity() (string, bool)
}

// LoginRedirector sends the user to the authentication entry point.
type LoginRedirector interface {
	RedirectToLogin()
}

// IdentityFunc adapts a plain function to IdentityProvider.
type IdentityFunc func() (string, bool)

func (f IdentityFunc) CurrentIdentity() (string, bool) { return f() }

// RedirectFunc adapts a plain function to LoginRedirector.
type RedirectFunc func()

func (f RedirectFunc) RedirectToLogin() { f() }

// Gate checks for a usable identity before any note work happens.
type Gate struct {
	ids      IdentityProvider
	redirect LoginRedirector
	log      *slog.Logger
}

// NewGate creates a gate over the given identity source.
func NewGate(ids IdentityProvider, redirect LoginRedirector, log *slog.Logger) *Gate {
	return &Gate{
		ids:      ids,
		redirect: redirect,
		log:      log,
	}
}

// Admit returns the current identity. When none exists it redirects to the
// login entry point and returns ErrNoIdentity; callers must then perform no
// further work, in particular no collection load.
func (g *Gate) Admit() (string, error) {
	identity, ok := g.ids.CurrentIdentity()
	if !ok || identity == "" {
		g.log.Info("no identity, redirecting to login")
		g.redirect.RedirectToLogin()
		return "", ErrNoIdentity
	}
	return identity, nil
}
