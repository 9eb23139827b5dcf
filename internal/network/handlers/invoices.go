package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/services"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StatusRequest struct {
	Status string `json:"appointment_status" validate:"required"`
}

// writeInvoiceError - ответ на ошибку работы со счётом
func writeInvoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "Invoice not found", http.StatusNotFound)
	case errors.Is(err, services.ErrAlreadyCancelled), errors.Is(err, services.ErrAppointmentCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.Errorw("Failed to process invoice:", zap.Error(err))
		http.Error(w, "Server Error", http.StatusInternalServerError)
	}
}

// GetInvoiceHandler - счёт для страницы подтверждения
func GetInvoiceHandler(a services.AppointmentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoice, err := a.GetInvoice(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			writeInvoiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewInvoiceResponse(*invoice))
	})
}

// CancelInvoiceHandler - отмена записи клиентом
func CancelInvoiceHandler(a services.AppointmentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoice, err := a.CancelAppointment(r.Context(), chi.URLParam(r, "number"))
		if err != nil {
			writeInvoiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewInvoiceResponse(*invoice))
	})
}

// ListInvoicesHandler - счета для администратора, новые первыми
func ListInvoicesHandler(a services.AppointmentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := a.ListInvoices(r.Context(), r.URL.Query().Get("status"), pageParam(r))
		if err != nil {
			writeInvoiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	})
}

// UpdateStatusHandler - смена статуса записи администратором
func UpdateStatusHandler(a services.AppointmentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req StatusRequest
		if !decodeJSON(w, r, &req) || !validate(w, req) {
			return
		}
		invoice, err := a.UpdateAppointmentStatus(r.Context(), chi.URLParam(r, "number"), req.Status)
		if err != nil {
			writeInvoiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewInvoiceResponse(*invoice))
	})
}

// StaffListHandler - все мастера салона
func StaffListHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staff, err := c.ListStaff(r.Context())
		if err != nil {
			logger.Errorw("Failed to list staff:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, staff)
	})
}
