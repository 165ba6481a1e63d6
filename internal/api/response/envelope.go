// Package response defines the uniform reply envelope every endpoint uses,
// success and failure alike, plus the typed API error the central error
// handler renders through it.
package response

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeSuccess = "success"
	MessageTypeError   = "error"
	MessageTypeInfo    = "info"
)

// Envelope is the canonical wire shape of every API response.
type Envelope struct {
	Status  Status  `json:"status"`
	Data    any     `json:"data"`
	Error   Failure `json:"error"`
	Message Message `json:"message"`
	Meta    Meta    `json:"meta"`
}

type Status struct {
	Code      int    `json:"code"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

// Failure carries the machine-readable error slot. Code is null, not "",
// when no stable code applies.
type Failure struct {
	Display bool    `json:"display"`
	Code    *string `json:"code"`
	Text    string  `json:"text"`
}

type Message struct {
	Display bool   `json:"display"`
	Type    string `json:"type"`
	Text    string `json:"text"`
}

// Meta holds per-response diagnostics. Pagination and Metadata are emitted
// only when supplied.
type Meta struct {
	RequestID  string `json:"requestId"`
	Pagination any    `json:"pagination,omitempty"`
	Metadata   any    `json:"metadata,omitempty"`
}

// Pagination is the conventional shape for Meta.Pagination on list endpoints.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Options tunes the envelope slots that are not derivable from
// (success, statusCode, data) alone.
type Options struct {
	ErrorMessage   string
	ErrorCode      string
	DisplayError   bool
	SuccessMessage string
	MessageType    string
	DisplayMessage bool
	Pagination     any
	Metadata       any
}

// New builds an envelope. It is a pure total function: given identical
// inputs the output differs only in Status.Timestamp and Meta.RequestID.
//
// Defaults: error.display is forced true on failure, message.display is
// forced true on success, and message.text falls back to ErrorMessage so
// failures still carry readable text in the message slot.
func New(success bool, statusCode int, data any, opts Options) Envelope {
	messageType := opts.MessageType
	if messageType == "" {
		if success {
			messageType = MessageTypeSuccess
		} else {
			messageType = MessageTypeError
		}
	}

	messageText := opts.SuccessMessage
	if messageText == "" {
		messageText = opts.ErrorMessage
	}

	var errorCode *string
	if opts.ErrorCode != "" {
		errorCode = &opts.ErrorCode
	}

	return Envelope{
		Status: Status{
			Code:      statusCode,
			Success:   success,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Data: data,
		Error: Failure{
			Display: opts.DisplayError || !success,
			Code:    errorCode,
			Text:    opts.ErrorMessage,
		},
		Message: Message{
			Display: opts.DisplayMessage || success,
			Type:    messageType,
			Text:    messageText,
		},
		Meta: Meta{
			RequestID:  newRequestID(),
			Pagination: opts.Pagination,
			Metadata:   opts.Metadata,
		},
	}
}

// newRequestID produces a time-based id with a random suffix. Purely
// diagnostic: never used for idempotency or correlation.
func newRequestID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("req_%d_%s", time.Now().UnixMilli(), suffix)
}
