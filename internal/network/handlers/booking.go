package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/helpers"
	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/order"
	"github.com/denmor86/ya-beautystudio/internal/search"
	"github.com/denmor86/ya-beautystudio/internal/services"
	"github.com/denmor86/ya-beautystudio/internal/sessions"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader - заголовок для повторной отправки заказа без дублей
	IdempotencyKeyHeader = "Idempotency-Key"
	// SessionParam - параметр пути с id сессии
	SessionParam = "sid"
)

// SessionResponse - состояние сессии бронирования
type SessionResponse struct {
	ID    string              `json:"id"`
	Order order.Snapshot      `json:"order"`
	Staff services.StaffState `json:"staff"`
}

type ServiceRequest struct {
	ServiceID int64 `json:"service_id" validate:"gte=0"`
}

type StaffRequest struct {
	StaffID int64 `json:"staff_id" validate:"gte=0"`
}

type AppointmentRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,clock"`
}

type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=32"`
}

// Действия навигации по шагам
const (
	StepNext = "next"
	StepPrev = "prev"
	StepGoTo = "goto"
)

type StepRequest struct {
	Action string `json:"action" validate:"required,oneof=next prev goto"`
	Step   int    `json:"step"`
}

func newSessionResponse(s *sessions.Session) SessionResponse {
	return SessionResponse{ID: s.ID, Order: s.Order.Snapshot(), Staff: s.Staff.State()}
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, SessionParam)
}

// loadSession - сессия из пути; при ошибке ответ уже отправлен
func loadSession(w http.ResponseWriter, r *http.Request, store *sessions.Store) (*sessions.Session, bool) {
	session, err := store.Get(sessionID(r))
	if err != nil {
		http.Error(w, "Booking session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// writeLookupError - ответ на ошибку поиска услуги/товара
func writeLookupError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, what+" not found", http.StatusNotFound)
		return
	}
	logger.Errorw("Failed to get "+what+":", zap.Error(err))
	http.Error(w, "Server Error", http.StatusInternalServerError)
}

// CreateSessionHandler - новая сессия бронирования; service_id сразу выбирает услугу
func CreateSessionHandler(store *sessions.Store, c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var service *models.Service
		if raw := r.URL.Query().Get("service_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				http.Error(w, "Invalid service id", http.StatusBadRequest)
				return
			}
			service, err = c.GetService(r.Context(), id)
			if err != nil {
				writeLookupError(w, err, "Service")
				return
			}
		}
		session := store.Create()
		if service != nil {
			session.Order.SetSelectedService(service)
		}
		logger.Info("Booking session started", session.ID)
		writeJSON(w, http.StatusCreated, newSessionResponse(session))
	})
}

// GetSessionHandler - текущее состояние заказа
func GetSessionHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// DeleteSessionHandler - закрытие сессии
func DeleteSessionHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(sessionID(r)); err != nil {
			http.Error(w, "Booking session not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// SetCustomerHandler - контактные данные клиента
func SetCustomerHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		var customer models.Customer
		if !decodeJSON(w, r, &customer) || !validate(w, customer) {
			return
		}
		session.Order.SetCustomer(customer)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// SetServiceHandler - выбор основной услуги; service_id = 0 снимает выбор
func SetServiceHandler(store *sessions.Store, c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		var req ServiceRequest
		if !decodeJSON(w, r, &req) || !validate(w, req) {
			return
		}
		if req.ServiceID == 0 {
			session.Order.SetSelectedService(nil)
			writeJSON(w, http.StatusOK, newSessionResponse(session))
			return
		}
		service, err := c.GetService(r.Context(), req.ServiceID)
		if err != nil {
			writeLookupError(w, err, "Service")
			return
		}
		session.Order.SetSelectedService(service)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// ToggleServiceHandler - добавление/снятие услуги в мультивыборе
func ToggleServiceHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		id, ok := idParam(r, "serviceID")
		if !ok {
			http.Error(w, "Invalid service id", http.StatusBadRequest)
			return
		}
		session.Order.ToggleService(id)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// SetStaffHandler - выбор мастера из последнего результата поиска мастеров.
// Мастер назначается на услугу, для которой шёл поиск.
func SetStaffHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		var req StaffRequest
		if !decodeJSON(w, r, &req) || !validate(w, req) {
			return
		}
		if req.StaffID == 0 {
			session.Order.SetSelectedStaff(nil)
			writeJSON(w, http.StatusOK, newSessionResponse(session))
			return
		}

		state := session.Staff.State()
		var staff *models.Staff
		for i := range state.Staff {
			if state.Staff[i].ID == req.StaffID {
				staff = &state.Staff[i]
				break
			}
		}
		if staff == nil {
			logger.Warn("Staff is not available for the service", req.StaffID, state.ServiceID)
			http.Error(w, "Staff is not available", http.StatusUnprocessableEntity)
			return
		}

		snapshot := session.Order.Snapshot()
		if snapshot.SelectedService != nil && snapshot.SelectedService.ID == state.ServiceID {
			session.Order.SetSelectedStaff(staff)
		}
		session.Order.AddServiceProvider(state.ServiceID, staff.FullName)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// SetAppointmentHandler - дата и время записи
func SetAppointmentHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		var req AppointmentRequest
		if !decodeJSON(w, r, &req) || !validate(w, req) {
			return
		}
		date, err := time.Parse(order.DateLayout, req.Date)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}
		session.Order.SetAppointmentDate(date)
		session.Order.SetAppointmentTime(req.Time)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// SetPaymentHandler - способ оплаты
func SetPaymentHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		var req PaymentRequest
		if !decodeJSON(w, r, &req) || !validate(w, req) {
			return
		}
		session.Order.SetPaymentMethod(req.PaymentMethod)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// AddProductHandler - товар в заказ; повторное добавление ничего не меняет
func AddProductHandler(store *sessions.Store, c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		id, ok := idParam(r, "productID")
		if !ok {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		product, err := c.GetProduct(r.Context(), id)
		if err != nil {
			writeLookupError(w, err, "Product")
			return
		}
		session.Order.AddProduct(*product)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// RemoveProductHandler - товар из заказа; отсутствующий id не ошибка
func RemoveProductHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		id, ok := idParam(r, "productID")
		if !ok {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		session.Order.RemoveProduct(id)
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// ProductsHandler - поиск товаров; more=true подгружает следующую порцию
func ProductsHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		query := r.URL.Query()
		var (
			result search.Result[models.Product]
			err    error
		)
		more, _ := strconv.ParseBool(query.Get("more"))
		if more && session.Products.Loaded() {
			result, err = session.Products.LoadMore(r.Context())
		} else {
			result, err = session.Products.Search(r.Context(), query.Get("search"))
		}
		if err != nil && !errors.Is(err, search.ErrStale) {
			logger.Errorw("Failed to load products:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}

// StepHandler - навигация по шагам оформления
func StepHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		var req StepRequest
		if !decodeJSON(w, r, &req) || !validate(w, req) {
			return
		}
		switch req.Action {
		case StepNext:
			session.Order.NextStep()
		case StepPrev:
			session.Order.PrevStep()
		case StepGoTo:
			session.Order.GoToStep(req.Step)
		}
		writeJSON(w, http.StatusOK, newSessionResponse(session))
	})
}

// StaffHandler - мастера на услугу и дату. По умолчанию берутся выбранные в заказе.
func StaffHandler(store *sessions.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		query := r.URL.Query()
		snapshot := session.Order.Snapshot()

		var serviceID int64
		if raw := query.Get("service_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "Invalid service id", http.StatusBadRequest)
				return
			}
			serviceID = id
		} else if snapshot.SelectedService != nil {
			serviceID = snapshot.SelectedService.ID
		}

		rawDate := query.Get("date")
		if rawDate == "" && snapshot.AppointmentDate != nil {
			rawDate = *snapshot.AppointmentDate
		}
		date, err := time.Parse(order.DateLayout, rawDate)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}

		state, err := session.Staff.Fetch(r.Context(), serviceID, date)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, state)
		case errors.Is(err, services.ErrInvalidServiceID):
			http.Error(w, "Invalid service id", http.StatusBadRequest)
		case errors.Is(err, services.ErrStaleResponse):
			writeJSON(w, http.StatusConflict, state)
		default:
			writeJSON(w, http.StatusBadGateway, state)
		}
	})
}

// SubmitHandler - оформление заказа: счёт со статусом waiting, заказ сессии завершается
func SubmitHandler(store *sessions.Store, checkout services.CheckoutService, collector *services.RequestInfoCollector) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := loadSession(w, r, store)
		if !ok {
			return
		}
		snapshot := session.Order.Snapshot()
		if !validate(w, snapshot.Customer) {
			return
		}

		info := collector.Collect(r.Context(), helpers.ClientIP(r), r.UserAgent())
		invoice, err := checkout.Submit(r.Context(), snapshot, info, r.Header.Get(IdempotencyKeyHeader))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyOrder):
				http.Error(w, "No service selected", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrOrderCompleted):
				http.Error(w, "Order already submitted", http.StatusConflict)
			default:
				logger.Errorw("Failed to submit order:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		session.Order.CompleteOrder(invoice.Number)
		writeJSON(w, http.StatusCreated, models.NewInvoiceResponse(*invoice))
	})
}
