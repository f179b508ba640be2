package model

import (
	"time"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/core"
	"gorm.io/datatypes"
)

// AttendanceDay is one employee's ledger for one calendar day. The
// date column holds the zone-normalized midnight instant and forms the
// natural key together with the employee.
type AttendanceDay struct {
	ID             int32                                   `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID     uint                                    `gorm:"column:employee_id;not null;uniqueIndex:idx_employee_date" json:"employeeId"`
	Date           time.Time                               `gorm:"column:date;type:datetime;not null;uniqueIndex:idx_employee_date" json:"date"`
	Sessions       datatypes.JSONType[attendance.Sessions] `gorm:"column:sessions" json:"sessions"`
	IsWorking      bool                                    `gorm:"column:is_working;not null" json:"isWorking"`
	Status         attendance.Status                       `gorm:"column:status;type:varchar(20);not null" json:"status"`
	TotalWorkHours float64                                 `gorm:"column:total_work_hours;type:decimal(10,2)" json:"totalWorkHours"`
	CreatedAt      time.Time                               `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
	UpdatedAt      time.Time                               `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"-"`

	Employee core.Employee `gorm:"foreignKey:EmployeeID;references:EmployeeId" json:"-"`
}

func (AttendanceDay) TableName() string {
	return "attendance_days"
}

func (d *AttendanceDay) SessionList() attendance.Sessions {
	return d.Sessions.Data()
}

func (d *AttendanceDay) SetSessions(ss attendance.Sessions) {
	d.Sessions = datatypes.NewJSONType(ss)
}
