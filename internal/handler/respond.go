package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/admin"
	"github.com/AlexZinkM/share-a-care/internal/model"
	"github.com/AlexZinkM/share-a-care/internal/store"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorCode(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}

// writeError maps domain errors to HTTP status codes and error codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, address.ErrInvalidAddress):
		writeErrorCode(w, http.StatusBadRequest, "invalid_address", err.Error())
	case errors.Is(err, admin.ErrInvalidInput):
		writeErrorCode(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, wallet.ErrProviderUnavailable):
		writeErrorCode(w, http.StatusServiceUnavailable, "provider_unavailable", "no wallet provider detected")
	case errors.Is(err, wallet.ErrUserRejected):
		writeErrorCode(w, http.StatusForbidden, "user_rejected", err.Error())
	case errors.Is(err, wallet.ErrNoAccounts):
		writeErrorCode(w, http.StatusConflict, "no_accounts", err.Error())
	case errors.Is(err, admin.ErrNotAuthorized):
		writeErrorCode(w, http.StatusForbidden, "not_authorized", err.Error())
	case errors.Is(err, admin.ErrDuplicatePublisher):
		writeErrorCode(w, http.StatusConflict, "duplicate_publisher", err.Error())
	case errors.Is(err, admin.ErrCannotRemovePrimary):
		writeErrorCode(w, http.StatusConflict, "cannot_remove_primary", err.Error())
	case errors.Is(err, admin.ErrPublisherNotFound), errors.Is(err, store.ErrNotFound):
		writeErrorCode(w, http.StatusNotFound, "not_found", err.Error())
	case store.IsStoreError(err):
		writeErrorCode(w, http.StatusServiceUnavailable, "store_error", "temporary storage failure, please try again")
	default:
		writeErrorCode(w, http.StatusInternalServerError, "", err.Error())
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_body", err.Error())
		return false
	}
	return true
}

// decodeBody decodes an optional JSON body; an empty body leaves v untouched
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
