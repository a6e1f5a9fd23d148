package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
	"github.com/benbol/backend/internal/service"
)

// NewsletterHandler handles public newsletter signups.
type NewsletterHandler struct {
	subscriberService service.SubscriberService
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(subscriberService service.SubscriberService) *NewsletterHandler {
	return &NewsletterHandler{subscriberService: subscriberService}
}

// subscribeRequest is the expected JSON body for POST /api/newsletter.
type subscribeRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Subscribe handles POST /api/newsletter.
// A duplicate email answers 409 so the form can tell the visitor they are
// already subscribed.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "email_invalid")
		return
	}

	sub := &model.NewsletterSubscriber{
		Email:    req.Email,
		FullName: req.FullName,
	}
	err := h.subscriberService.Subscribe(r.Context(), sub)
	if errors.Is(err, repository.ErrDuplicate) {
		writeError(w, http.StatusConflict, "already_subscribed")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "subscribe_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": sub.ID})
}
