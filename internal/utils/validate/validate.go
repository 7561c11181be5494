// Package validate turns go-playground/validator failures into the exact
// user-facing messages the note UI shows inline in the add/edit form.
package validate

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	shared     *validator.Validate
	sharedOnce sync.Once
)

// V returns the process-wide validator instance.
func V() *validator.Validate {
	sharedOnce.Do(func() {
		shared = validator.New()
	})
	return shared
}

// messages maps struct field names of note form payloads to inline messages.
var messages = map[string]string{
	"Title":   "Please enter the title",
	"Content": "Please enter the content",
}

// Humanize converts a validator error into a single user-facing message.
// The first failing field wins; unknown fields fall back to the raw error.
func Humanize(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[verrs[0].Field()]; ok {
			return errors.New(msg)
		}
		return errors.New("invalid " + verrs[0].Field())
	}
	return err
}
