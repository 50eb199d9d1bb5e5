package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/osse101/InventarioBot_Go/internal/domain"
	"github.com/osse101/InventarioBot_Go/internal/inventory"
	"github.com/osse101/InventarioBot_Go/internal/logger"
)

// HandleInventory runs one inventory operation from the request envelope
// @Summary Inventory operation
// @Description Runs add, get, delete or clear against one bot user's inventory.
// @Description Numeric fields (cantidad, precio) accept numbers or numeric strings.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body domain.Request true "Operation envelope"
// @Success 200 {object} domain.Result
// @Failure 400 {object} domain.Result
// @Failure 404 {object} domain.Result
// @Failure 413 {object} domain.Result
// @Failure 500 {object} domain.Result
// @Router /inventario [post]
func HandleInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, status, msg := decodeInventoryRequest(r)
		if status != http.StatusOK {
			log.Warn(LogMsgInvalidBody, "status", status)
			respondError(w, status, msg)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn(LogMsgValidationFailed, "fields", FormatValidationError(err))
			respondError(w, http.StatusBadRequest, domain.ErrMsgMissingParameters)
			return
		}

		log.Debug(LogMsgInventoryRequest, "type", req.Type, "botID", req.BotID, "userID", req.UserID)

		result, err := svc.Handle(r.Context(), req)
		if err != nil {
			status, msg := mapServiceError(err)
			if status >= http.StatusInternalServerError {
				log.Error(LogMsgOperationFailed, "error", err, "type", req.Type)
			}
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// decodeInventoryRequest reads the envelope. Anything that is not a non-empty
// JSON object is rejected; field values with the wrong shape for an
// identifier are rejected the same way.
func decodeInventoryRequest(r *http.Request) (domain.Request, int, string) {
	var req domain.Request

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge
		}
		return req, http.StatusBadRequest, domain.ErrMsgInvalidBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &fields); err != nil || len(fields) == 0 {
		return req, http.StatusBadRequest, domain.ErrMsgInvalidBody
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, http.StatusBadRequest, domain.ErrMsgInvalidBody
	}

	return req, http.StatusOK, ""
}
