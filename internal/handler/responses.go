package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/InventarioBot_Go/internal/domain"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload.
// HTML escaping is off so emoji and accented names reach chat clients as-is.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends {"status":"error","message":...}
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResult(message))
}

// mapServiceError maps domain errors to an HTTP status and the message shown
// to the caller. Messages carried by a domain.InventoryError win over the
// generic ones.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, domain.UserMessage(err, domain.ErrMsgMissingParameters)
	case errors.Is(err, domain.ErrUnknownOperation):
		return http.StatusBadRequest, domain.UserMessage(err, domain.ErrMsgUnknownOperation)
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, domain.UserMessage(err, domain.ErrMsgItemNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, domain.UserMessage(err, domain.ErrMsgItemNotFound)
	case errors.Is(err, domain.ErrStoreSave):
		return http.StatusInternalServerError, domain.ErrMsgStoreSave
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusInternalServerError, domain.ErrMsgStoreUnavailable
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
