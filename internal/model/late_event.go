package model

// LateEvent records an employee being late on a given date. Events are
// append-only.
type LateEvent struct {
	ID           uint    `gorm:"primaryKey"`
	Employee     string  `gorm:"not null;index"`
	EmployeeName *string
	LateTime     *string
	Date         string `gorm:"not null;index"`
	MessageText  *string
	CreatedBy    *string
	CreatedAt    string `gorm:"not null"`
}

func (LateEvent) TableName() string {
	return "late_employees"
}

// DisplayName prefers the human name over the handle.
func (e LateEvent) DisplayName() string {
	if e.EmployeeName != nil && *e.EmployeeName != "" {
		return *e.EmployeeName
	}
	return e.Employee
}

// Optional converts an empty string into a NULL column value.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Value dereferences an optional column.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
