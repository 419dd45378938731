package userservice

import "strings"

// Vehicle модель мотоцикла/автомобиля из UserService
type Vehicle struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	IsSelected   bool   `json:"is_selected"`
}

// Describe возвращает описание для поля vehicle бронирования, например "Honda CBR600RR (A123BC)"
func (v *Vehicle) Describe() string {
	name := strings.TrimSpace(v.Brand + " " + v.Model)
	if v.LicensePlate == "" {
		return name
	}
	if name == "" {
		return v.LicensePlate
	}
	return name + " (" + v.LicensePlate + ")"
}
