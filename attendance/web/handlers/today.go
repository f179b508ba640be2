package handlers

import (
	"errors"
	"net/http"
	"time"

	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (ep *Endpoint) Today(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}

	now := time.Now().In(ep.cutoffs.Zone)
	today := ep.cutoffs.DayStart(now)

	var day model.AttendanceDay
	err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Where("employee_id = ? AND date = ?", employeeID, today).
			First(&day).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, ep.cutoffs.ProjectToday(nil, false, now))
		return
	}
	if err != nil {
		common.Internal(c, "today-attendance", err)
		return
	}

	c.JSON(http.StatusOK, ep.cutoffs.ProjectToday(day.SessionList(), day.IsWorking, now))
}
