package order

import (
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/shopspring/decimal"
)

// Snapshot - неизменяемая копия состояния заказа
type Snapshot struct {
	CurrentStep      int                      `json:"current_step"`
	Customer         models.Customer          `json:"customer"`
	SelectedService  *models.Service          `json:"selected_service"`
	SelectedServices []int64                  `json:"selected_services"`
	SelectedStaff    *models.Staff            `json:"selected_staff"`
	SelectedProducts []models.Product         `json:"selected_products"`
	AppointmentDate  *string                  `json:"appointment_date"`
	AppointmentTime  *string                  `json:"appointment_time"`
	PaymentMethod    *string                  `json:"payment_method"`
	ServiceProviders []models.ServiceProvider `json:"service_providers"`
	OrderID          *string                  `json:"order_id"`
	TotalAmount      decimal.Decimal          `json:"total_amount"`
}

// Completed - заказ оформлен (есть номер счёта)
func (s Snapshot) Completed() bool {
	return s.OrderID != nil
}

// ProviderFor - имя мастера, назначенного на услугу
func (s Snapshot) ProviderFor(serviceID int64) (string, bool) {
	for _, p := range s.ServiceProviders {
		if p.ServiceID == serviceID {
			return p.Name, true
		}
	}
	return "", false
}
