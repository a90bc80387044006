package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	PositionID   *uuid.UUID `gorm:"type:uuid"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index"`

	EmployeeNumber   string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName         string    `gorm:"type:varchar(200);not null"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Phone            string    `gorm:"type:varchar(30)"`
	HireDate         time.Time `gorm:"type:date;not null"`
	EmploymentStatus string    `gorm:"type:varchar(20);not null;default:'active'"`

	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	Position   *EmployeePosition   `gorm:"foreignKey:PositionID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeePosition struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeePosition) TableName() string {
	return "positions"
}
