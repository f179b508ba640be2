package core

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	EmployeeId uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code       string  `gorm:"uniqueIndex;size:20" json:"code"`
	Name       string  `gorm:"size:120;not null" json:"name"`
	Email      *string `gorm:"index" json:"email"`
	Department string  `gorm:"size:60" json:"department"`
	Role       string  `gorm:"size:30;default:employee" json:"role"`
	Status     string  `gorm:"size:20;default:active" json:"status"`
	StartDate  *time.Time
	EndDate    *time.Time
	CreatedAt  time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt  time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Employee) TableName() string {
	return "employees"
}

func FindEmployeeByID(db *gorm.DB, id uint) (*Employee, error) {
	var emp Employee
	result := db.First(&emp, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}
