package domain

// StaffSet набор ID сотрудников мастерской из конфигурации
type StaffSet map[int64]struct{}

// NewStaffSet создает набор сотрудников
func NewStaffSet(ids []int64) StaffSet {
	set := make(StaffSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// IsStaff проверяет, является ли пользователь сотрудником мастерской
func (s StaffSet) IsStaff(userID int64) bool {
	_, ok := s[userID]
	return ok
}
