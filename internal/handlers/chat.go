package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/tifyai/website/internal/models"
	"github.com/tifyai/website/internal/relay"
)

// maxChatBodyBytes limits the size of a chat request body.
const maxChatBodyBytes = 64 << 10

// Relayer forwards a chat message. *relay.Client implements it.
type Relayer interface {
	Forward(ctx context.Context, msg models.ChatMessage) relay.Result
}

type ChatHandler struct {
	relay Relayer
}

func NewChatHandler(r Relayer) *ChatHandler {
	return &ChatHandler{relay: r}
}

// chatRequest uses pointers so that absent fields can be told apart from empty ones.
type chatRequest struct {
	Message    *string `json:"message"`
	PageSource *string `json:"pageSource"`
	Timestamp  *string `json:"timestamp"`
}

// Send validates the message and relays it. Only a malformed request
// produces an error status: the relay outcome is logged by the relay and
// the user always gets a reply.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	msg, details := decodeChatMessage(w, r)
	if len(details) > 0 {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{
			Error:   "Invalid message format",
			Details: details,
		})
		return
	}

	res := h.relay.Forward(r.Context(), msg)
	writeJSON(w, r, http.StatusOK, models.ChatReply{Message: res.ReplyOrFallback()})
}

func decodeChatMessage(w http.ResponseWriter, r *http.Request) (models.ChatMessage, []fieldError) {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		return models.ChatMessage{}, []fieldError{{Field: "body", Message: "Content-Type must be application/json"}}
	}

	var req chatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return models.ChatMessage{}, []fieldError{decodeError(err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.ChatMessage{}, []fieldError{decodeError(err)}
		}
		return models.ChatMessage{}, []fieldError{{Field: "body", Message: "Body must contain a single JSON object"}}
	}

	var details []fieldError
	if req.Message == nil {
		details = append(details, fieldError{Field: "message", Message: "Required"})
	} else if *req.Message == "" {
		details = append(details, fieldError{Field: "message", Message: "Message must not be empty"})
	}
	if req.PageSource == nil {
		details = append(details, fieldError{Field: "pageSource", Message: "Required"})
	}
	if req.Timestamp == nil {
		details = append(details, fieldError{Field: "timestamp", Message: "Required"})
	}
	if len(details) > 0 {
		return models.ChatMessage{}, details
	}

	return models.ChatMessage{
		Message:    *req.Message,
		PageSource: *req.PageSource,
		Timestamp:  *req.Timestamp,
	}, nil
}

func decodeError(err error) fieldError {
	var typeErr *json.UnmarshalTypeError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fieldError{Field: typeErr.Field, Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type, typeErr.Value)}
	case errors.As(err, &tooLarge):
		return fieldError{Field: "body", Message: fmt.Sprintf("Body exceeds %d bytes", tooLarge.Limit)}
	default:
		return fieldError{Field: "body", Message: "Body must be a JSON object"}
	}
}
