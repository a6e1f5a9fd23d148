package handler

import (
	"encoding/json"
	"net/http"

	"github.com/benbol/backend/internal/chatbot"
	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/service"
)

// ChatHandler handles the public chat widget endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a ChatHandler with the given service.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Start handles POST /api/chat/sessions. It opens a conversation and
// returns the session ID together with the bot's greeting.
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{
		"session_id": h.chatService.StartSession(),
		"greeting":   chatbot.Greeting,
	})
}

// sendRequest is the expected JSON body for POST /api/chat/messages.
type sendRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// sendResponse carries the stored bot reply back to the widget.
type sendResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Send handles POST /api/chat/messages. An omitted session_id starts a
// new conversation.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message_required")
		return
	}

	visitor := &model.ChatMessage{
		SessionID: req.SessionID,
		Message:   req.Message,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
	}
	reply, err := h.chatService.Send(r.Context(), visitor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "send_failed")
		return
	}

	writeJSON(w, http.StatusCreated, sendResponse{
		SessionID: reply.SessionID,
		Reply:     reply.Message,
	})
}

// History handles GET /api/chat/sessions/{sessionID}. Messages come back
// in chronological order.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id_required")
		return
	}

	messages, err := h.chatService.History(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "history_failed")
		return
	}
	if messages == nil {
		messages = []*model.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
