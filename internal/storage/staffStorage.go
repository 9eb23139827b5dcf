package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/models"
)

const (
	GetAvailableStaff = `SELECT user_id, full_name FROM get_available_staff_by_service_and_date($1, $2::date);`
	ListStaff         = `SELECT id, full_name FROM USERS WHERE role = 'staff' ORDER BY full_name;`
)

type StaffDatabase struct {
	DB *Database
}

// Создание хранилища
func NewStaffStorage(db *Database) StaffStorage {
	return &StaffDatabase{DB: db}
}

// GetAvailableStaff - мастера, которые выполняют услугу и работают в указанный день
func (s *StaffDatabase) GetAvailableStaff(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error) {
	return s.queryStaff(ctx, GetAvailableStaff, serviceID, date.Format("2006-01-02"))
}

func (s *StaffDatabase) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return s.queryStaff(ctx, ListStaff)
}

func (s *StaffDatabase) queryStaff(ctx context.Context, query string, args ...any) ([]models.Staff, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	defer rows.Close()

	staff := []models.Staff{}
	for rows.Next() {
		var member models.Staff
		if err := rows.Scan(&member.ID, &member.FullName); err != nil {
			return staff, fmt.Errorf("failed scan staff data: %w", err)
		}
		staff = append(staff, member)
	}
	return staff, rows.Err()
}
