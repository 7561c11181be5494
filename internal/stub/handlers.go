package stub

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"note-keep/internal/services/notes"
	"note-keep/internal/utils/sanitize"
	"note-keep/internal/utils/validate"
)

// Envelope messages. The client surfaces these verbatim, so changing them
// changes what users see.
const (
	msgNotAuthorised = "Not authorised"
	msgNoteNotFound  = "Note not found"
	msgNoteAdded     = "Note added successfully"
	msgNoteUpdated   = "Note updated successfully"
	msgNoteDeleted   = "Note deleted successfully"
	msgPinUpdated    = "Note pin status updated"
)

// Handlers contains the stub note service HTTP handlers.
type Handlers struct {
	store *memStore
	v     *validator.Validate
	log   *slog.Logger
}

// NewHandlers creates handlers over a fresh in-memory store.
func NewHandlers(v *validator.Validate, log *slog.Logger) *Handlers {
	return &Handlers{
		store: newMemStore(),
		v:     v,
		log:   log,
	}
}

// Domain failures ride a 200 with success:false; only transport-level
// problems produce non-2xx statuses. That matches the service the original
// client was written against.
func envFail(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"success": false, "message": msg})
}

func envOK(c *fiber.Ctx, kv fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range kv {
		body[k] = v
	}
	return c.JSON(body)
}

// Healthz responds to health probes.
func Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handlers) identity(c *fiber.Ctx) string {
	return c.Get(fiber.HeaderAuthorization)
}

// List returns every note owned by the caller, in insertion order.
func (h *Handlers) List(c *fiber.Ctx) error {
	identity := h.identity(c)
	if identity == "" {
		return envFail(c, msgNotAuthorised)
	}
	return envOK(c, fiber.Map{"notes": h.store.list(identity)})
}

func (h *Handlers) parseDraft(c *fiber.Ctx) (notes.Draft, error) {
	var draft notes.Draft
	if err := c.BodyParser(&draft); err != nil {
		return draft, err
	}
	draft.Title = sanitize.Clean(draft.Title)
	draft.Content = sanitize.Clean(draft.Content)
	draft.Tags = sanitize.CleanAll(draft.Tags)
	if err := h.v.Struct(draft); err != nil {
		return draft, validate.Humanize(err)
	}
	return draft, nil
}

// Add creates a note and assigns id and createdAt.
func (h *Handlers) Add(c *fiber.Ctx) error {
	identity := h.identity(c)
	if identity == "" {
		return envFail(c, msgNotAuthorised)
	}
	draft, err := h.parseDraft(c)
	if err != nil {
		return envFail(c, err.Error())
	}
	n := h.store.add(identity, draft)
	h.log.Info("note added", "note_id", n.ID)
	return envOK(c, fiber.Map{"message": msgNoteAdded, "note": n})
}

// Edit replaces the editable fields of an existing note.
func (h *Handlers) Edit(c *fiber.Ctx) error {
	identity := h.identity(c)
	if identity == "" {
		return envFail(c, msgNotAuthorised)
	}
	draft, err := h.parseDraft(c)
	if err != nil {
		return envFail(c, err.Error())
	}
	n, found := h.store.edit(identity, c.Params("id"), draft)
	if !found {
		return envFail(c, msgNoteNotFound)
	}
	h.log.Info("note updated", "note_id", n.ID)
	return envOK(c, fiber.Map{"message": msgNoteUpdated, "note": n})
}

// SetPinned updates the pinned flag of a note.
func (h *Handlers) SetPinned(c *fiber.Ctx) error {
	var body struct {
		IsPinned bool `json:"isPinned"`
	}
	if err := c.BodyParser(&body); err != nil {
		return envFail(c, err.Error())
	}
	if !h.store.setPinned(c.Params("id"), body.IsPinned) {
		return envFail(c, msgNoteNotFound)
	}
	return envOK(c, fiber.Map{"message": msgPinUpdated})
}

// Delete removes a note by id.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if !h.store.remove(c.Params("id")) {
		return envFail(c, msgNoteNotFound)
	}
	return envOK(c, fiber.Map{"message": msgNoteDeleted})
}
