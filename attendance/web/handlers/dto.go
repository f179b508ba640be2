package handlers

import (
	"time"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
)

type EmployeeDTO struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
}

type AttendanceWithEmployeeDTO struct {
	ID             int32               `json:"id"`
	Date           time.Time           `json:"date"`
	Sessions       attendance.Sessions `json:"sessions"`
	IsWorking      bool                `json:"isWorking"`
	Status         attendance.Status   `json:"status"`
	TotalWorkHours float64             `json:"totalWorkHours"`
	Employee       EmployeeDTO         `json:"employee"`
}

func toAttendanceWithEmployeeDTO(d model.AttendanceDay) AttendanceWithEmployeeDTO {
	return AttendanceWithEmployeeDTO{
		ID:             d.ID,
		Date:           d.Date,
		Sessions:       d.SessionList(),
		IsWorking:      d.IsWorking,
		Status:         d.Status,
		TotalWorkHours: d.TotalWorkHours,
		Employee: EmployeeDTO{
			ID:         d.Employee.EmployeeId,
			Name:       d.Employee.Name,
			Email:      d.Employee.Email,
			Department: d.Employee.Department,
			Role:       d.Employee.Role,
		},
	}
}
