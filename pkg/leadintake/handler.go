package leadintake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mkadlec/leadgate/pkg/config"
	"github.com/mkadlec/leadgate/pkg/eway"
)

// Options parameterizes the handler. The zero value gives the full flow:
// duplicate precheck on, real CRM clients.
type Options struct {
	// SkipDuplicateCheck turns off the GetContacts precheck and always
	// creates a contact.
	SkipDuplicateCheck bool

	// ClientFactory overrides how a per-request CRM client is built.
	ClientFactory func() eway.ContactAPI
}

// Handler accepts one lead submission per request. Every request gets its own
// CRM client so no session state is ever shared across submissions.
type Handler struct {
	cfg            *config.Config
	logger         *zap.Logger
	skipDuplicates bool
	newClient      func() eway.ContactAPI
}

func NewHandler(cfg *config.Config, logger *zap.Logger) *Handler {
	return NewHandlerWithOptions(cfg, logger, Options{})
}

func NewHandlerWithOptions(cfg *config.Config, logger *zap.Logger, opts Options) *Handler {
	newClient := opts.ClientFactory
	if newClient == nil {
		newClient = func() eway.ContactAPI {
			return eway.NewClientWithLogger(cfg, logger)
		}
	}
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		skipDuplicates: opts.SkipDuplicateCheck,
		newClient:      newClient,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	// A body that does not parse is treated as an empty submission and left
	// to validation, which will reject it field by field.
	var lead LeadSubmission
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.logger.Debug("Unparsable request body", zap.Error(err))
		lead = LeadSubmission{}
	}

	if errs := lead.Validate(); len(errs) > 0 {
		h.writeJSON(w, http.StatusBadRequest, validationResponse{Success: false, Errors: errs})
		return
	}

	// Test mode acknowledges the submission without touching the CRM, before
	// any client exists.
	if h.cfg.TestMode {
		h.logger.Info("Test mode, skipping CRM", zap.String("email", lead.Email))
		h.writeJSON(w, http.StatusOK, successResponse{
			Success:  true,
			Message:  "Test mode: submission accepted",
			TestMode: true,
		})
		return
	}

	if !h.cfg.HasCredentials() {
		// The response stays opaque; which credential is missing is an
		// operator concern, not a caller concern.
		h.logger.Error("CRM credentials missing from configuration")
		h.writeJSON(w, http.StatusInternalServerError, serverErrorResponse{
			Success: false,
			Error:   "server configuration error",
		})
		return
	}

	ctx := r.Context()
	client := h.newClient()
	// The session is released even when the caller has gone away.
	defer client.LogOut(context.WithoutCancel(ctx))

	if !h.skipDuplicates {
		if existing := client.FindContactByEmail(ctx, lead.Email); existing != nil {
			h.logger.Info("Duplicate lead, skipping contact creation",
				zap.String("email", lead.Email))
			h.writeJSON(w, http.StatusOK, successResponse{
				Success:   true,
				Message:   "Contact already exists",
				Duplicate: true,
			})
			return
		}
	}

	data, err := client.SaveContact(ctx, lead.ContactRecord())
	if err != nil {
		var authErr *eway.AuthError
		if errors.As(err, &authErr) {
			h.logger.Error("CRM authentication failed", zap.Error(err))
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{
				Error:   "CRM authentication failed",
				Details: authErr.Body,
			})
			return
		}

		h.logger.Error("Contact creation failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, serverErrorResponse{
			Success: false,
			Error:   "failed to create contact",
		})
		return
	}

	h.logger.Info("Lead submitted", zap.String("email", lead.Email))
	h.writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Lead submitted",
		Data:    data,
	})
}
