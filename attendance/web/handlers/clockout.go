package handlers

import (
	"errors"
	"net/http"
	"time"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (ep *Endpoint) ClockOut(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}

	now := time.Now().In(ep.cutoffs.Zone)
	today := ep.cutoffs.DayStart(now)

	var day model.AttendanceDay
	var totalHours float64

	err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("employee_id = ? AND date = ?", employeeID, today).
				First(&day).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return attendance.ErrNoRecord
			}
			if err != nil {
				return err
			}

			sessions := day.SessionList()
			if err := sessions.CloseLast(now); err != nil {
				return err
			}
			day.SetSessions(sessions)
			day.IsWorking = false

			total := sessions.TotalWorked(now)
			day.Status = attendance.ResolveFinalStatus(total)
			totalHours = attendance.RoundHours(total)
			day.TotalWorkHours = totalHours

			return tx.Omit(clause.Associations).Save(&day).Error
		})
	})

	switch {
	case errors.Is(err, attendance.ErrNoRecord):
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No clock-in record found"))
		return
	case errors.Is(err, attendance.ErrNoActiveSession):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("No active session found to clock out"))
		return
	case err != nil:
		common.Internal(c, "clock-out", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Clock-out successful",
		"attendance": day,
		"totalHours": totalHours,
	})
}
