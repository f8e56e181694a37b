package model

// Task is a unit of work assigned to an employee. Deadline is always stored in
// the canonical DD.MM.YYYY form.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"column:task;not null"`
	Deadline    string `gorm:"not null"`
	Assignee    string `gorm:"column:employee;not null"`
	Completed   bool   `gorm:"not null;default:false"`
	CreatedAt   string `gorm:"not null"`
}

// TableName keeps the schema compatible with existing databases.
func (Task) TableName() string {
	return "tasks"
}

// TaskUpdate describes a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Completed   *bool
	Description *string
	Deadline    *string
	Assignee    *string
}

// Empty reports whether the update changes nothing.
func (u TaskUpdate) Empty() bool {
	return u.Completed == nil && u.Description == nil && u.Deadline == nil && u.Assignee == nil
}
