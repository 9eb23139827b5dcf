// Package order хранит состояние оформляемого заказа одной сессии бронирования.
//
// Состояние передаётся явным указателем в обработчики шагов. Ошибок операции
// не возвращают: все изменения локальные и синхронные, сбои возможны только
// у внешних участников (поиск мастеров, запись счёта).
package order

import (
	"sync"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/shopspring/decimal"
)

// Шаги оформления
const (
	FirstStep = 1
	LastStep  = 4
)

// DateLayout - формат даты записи
const DateLayout = "2006-01-02"

// Listener - подписчик на изменения состояния
type Listener func(Snapshot)

type subscriber struct {
	id int
	fn Listener
}

// Order - состояние заказа одной сессии
type Order struct {
	mu sync.Mutex

	step             int
	customer         models.Customer
	selectedService  *models.Service
	selectedServices *keyedList[int64, struct{}]
	selectedStaff    *models.Staff
	selectedProducts *keyedList[int64, models.Product]
	appointmentDate  *time.Time
	appointmentTime  *string
	paymentMethod    *string
	serviceProviders *keyedList[int64, models.ServiceProvider]
	orderID          *string

	subscribers []subscriber
	nextSubID   int
}

// New - создание пустого заказа на первом шаге
func New() *Order {
	o := &Order{}
	o.resetLocked()
	return o
}

func (o *Order) resetLocked() {
	o.step = FirstStep
	o.customer = models.Customer{}
	o.selectedService = nil
	o.selectedServices = newKeyedList[int64, struct{}]()
	o.selectedStaff = nil
	o.selectedProducts = newKeyedList[int64, models.Product]()
	o.appointmentDate = nil
	o.appointmentTime = nil
	o.paymentMethod = nil
	o.serviceProviders = newKeyedList[int64, models.ServiceProvider]()
	o.orderID = nil
}

// update применяет изменение под блокировкой и уведомляет подписчиков, если что-то поменялось
func (o *Order) update(fn func() bool) {
	o.mu.Lock()
	if !fn() || len(o.subscribers) == 0 {
		o.mu.Unlock()
		return
	}
	snapshot := o.snapshotLocked()
	subscribers := make([]subscriber, len(o.subscribers))
	copy(subscribers, o.subscribers)
	o.mu.Unlock()

	for _, s := range subscribers {
		s.fn(snapshot)
	}
}

// Subscribe - подписка на изменения. Возвращает функцию отписки.
func (o *Order) Subscribe(fn Listener) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextSubID
	o.nextSubID++
	o.subscribers = append(o.subscribers, subscriber{id: id, fn: fn})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subscribers {
			if s.id == id {
				o.subscribers = append(o.subscribers[:i], o.subscribers[i+1:]...)
				return
			}
		}
	}
}

// SetCustomer - заменяет данные клиента целиком. Валидация выполняется до вызова.
func (o *Order) SetCustomer(customer models.Customer) {
	o.update(func() bool {
		o.customer = customer
		return true
	})
}

// AddProduct - добавляет товар, если его ещё нет в заказе
func (o *Order) AddProduct(product models.Product) {
	o.update(func() bool {
		return o.selectedProducts.Add(product.ID, product)
	})
}

// RemoveProduct - убирает товар по id
func (o *Order) RemoveProduct(productID int64) {
	o.update(func() bool {
		return o.selectedProducts.Remove(productID)
	})
}

// ToggleProduct - повторный выбор товара убирает его из заказа. Возвращает true, если товар теперь выбран.
func (o *Order) ToggleProduct(product models.Product) bool {
	var selected bool
	o.update(func() bool {
		if o.selectedProducts.Remove(product.ID) {
			return true
		}
		selected = o.selectedProducts.Add(product.ID, product)
		return selected
	})
	return selected
}

// SetSelectedService - выбранная услуга
func (o *Order) SetSelectedService(service *models.Service) {
	o.update(func() bool {
		if service == nil {
			o.selectedService = nil
			return true
		}
		s := *service
		o.selectedService = &s
		return true
	})
}

// ToggleService - отметка услуги в мультивыборе. Возвращает true, если услуга теперь отмечена.
func (o *Order) ToggleService(serviceID int64) bool {
	var selected bool
	o.update(func() bool {
		if o.selectedServices.Remove(serviceID) {
			return true
		}
		selected = o.selectedServices.Add(serviceID, struct{}{})
		return selected
	})
	return selected
}

// SetSelectedStaff - выбранный мастер
func (o *Order) SetSelectedStaff(staff *models.Staff) {
	o.update(func() bool {
		if staff == nil {
			o.selectedStaff = nil
			return true
		}
		s := *staff
		o.selectedStaff = &s
		return true
	})
}

// SetAppointmentDate - дата записи (без проверки доступности мастера)
func (o *Order) SetAppointmentDate(date time.Time) {
	o.update(func() bool {
		d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		o.appointmentDate = &d
		return true
	})
}

// SetAppointmentTime - время записи
func (o *Order) SetAppointmentTime(value string) {
	o.update(func() bool {
		o.appointmentTime = &value
		return true
	})
}

// SetPaymentMethod - способ оплаты
func (o *Order) SetPaymentMethod(method string) {
	o.update(func() bool {
		o.paymentMethod = &method
		return true
	})
}

// AddServiceProvider - назначает мастера на услугу; одна запись на serviceID
func (o *Order) AddServiceProvider(serviceID int64, staffName string) {
	o.update(func() bool {
		o.serviceProviders.Upsert(serviceID, models.ServiceProvider{ServiceID: serviceID, Name: staffName})
		return true
	})
}

// CalculateTotal - цена выбранной услуги плюс цены товаров. Без услуги - 0.
func (o *Order) CalculateTotal() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.totalLocked()
}

func (o *Order) totalLocked() decimal.Decimal {
	if o.selectedService == nil {
		return decimal.Zero
	}
	total := o.selectedService.Price
	for _, p := range o.selectedProducts.Values() {
		total = total.Add(p.Price)
	}
	return total
}

// NextStep - следующий шаг, на последнем ничего не делает
func (o *Order) NextStep() {
	o.update(func() bool {
		return o.goToLocked(o.step + 1)
	})
}

// PrevStep - предыдущий шаг, на первом ничего не делает
func (o *Order) PrevStep() {
	o.update(func() bool {
		return o.goToLocked(o.step - 1)
	})
}

// GoToStep - переход на шаг n; вне [1,4] ничего не делает
func (o *Order) GoToStep(n int) {
	o.update(func() bool {
		return o.goToLocked(n)
	})
}

func (o *Order) goToLocked(n int) bool {
	if n < FirstStep || n > LastStep || n == o.step {
		return false
	}
	o.step = n
	return true
}

// CurrentStep - текущий шаг
func (o *Order) CurrentStep() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.step
}

// Reset - возвращает все поля к значениям по умолчанию
func (o *Order) Reset() {
	o.update(func() bool {
		o.resetLocked()
		return true
	})
}

// CompleteOrder - отмечает заказ оформленным; остальные поля сохраняются для экрана подтверждения
func (o *Order) CompleteOrder(id string) {
	o.update(func() bool {
		o.orderID = &id
		return true
	})
}

// Snapshot - копия текущего состояния
func (o *Order) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Order) snapshotLocked() Snapshot {
	s := Snapshot{
		CurrentStep:      o.step,
		Customer:         o.customer,
		SelectedServices: o.selectedServices.Keys(),
		SelectedProducts: o.selectedProducts.Values(),
		ServiceProviders: o.serviceProviders.Values(),
		TotalAmount:      o.totalLocked(),
	}
	if o.selectedService != nil {
		service := *o.selectedService
		s.SelectedService = &service
	}
	if o.selectedStaff != nil {
		staff := *o.selectedStaff
		s.SelectedStaff = &staff
	}
	if o.appointmentDate != nil {
		date := o.appointmentDate.Format(DateLayout)
		s.AppointmentDate = &date
	}
	if o.appointmentTime != nil {
		value := *o.appointmentTime
		s.AppointmentTime = &value
	}
	if o.paymentMethod != nil {
		method := *o.paymentMethod
		s.PaymentMethod = &method
	}
	if o.orderID != nil {
		id := *o.orderID
		s.OrderID = &id
	}
	return s
}
