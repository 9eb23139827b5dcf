package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ErrorResponse - тело ответа с ошибкой проверки
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON - ответ в формате JSON
func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logger.Errorw("Failed to encode JSON response:", zap.Error(err))
	}
}

// decodeJSON - разбор тела запроса; при ошибке ответ уже отправлен
func decodeJSON(w http.ResponseWriter, r *http.Request, value interface{}) bool {
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Errorw("Error to close body:", zap.Error(err))
		}
	}()
	if err := json.NewDecoder(r.Body).Decode(value); err != nil {
		logger.Warn("Failed to decode request", err)
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return false
	}
	return true
}

// validate - проверка тегов validate; при ошибке отвечает 422
func validate(w http.ResponseWriter, value interface{}) bool {
	err := validators.Struct(value)
	if err == nil {
		return true
	}
	var fieldsErr *validators.FieldsError
	if errors.As(err, &fieldsErr) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: fieldsErr.Fields})
		return false
	}
	logger.Errorw("Validation error", zap.Error(err))
	http.Error(w, "Server error", http.StatusInternalServerError)
	return false
}

// idParam - положительный числовой параметр пути
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageParam - номер страницы из query, по умолчанию 1
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
