package get_day_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из параметров пути и query
func ToServiceRequest(userID int64, dateStr, statusStr, includeInactiveStr string) (*models.GetDayBookingsRequest, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	req := &models.GetDayBookingsRequest{
		UserID:          userID,
		Date:            date,
		IncludeInactive: false, // По умолчанию только занимающие бокс
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
