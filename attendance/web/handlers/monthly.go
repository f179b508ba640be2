package handlers

import (
	"net/http"
	"strconv"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/utils"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (ep *Endpoint) Monthly(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}

	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Year and month are required"))
		return
	}

	start, end, err := ep.cutoffs.MonthRange(year, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	var days []model.AttendanceDay
	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Where("employee_id = ? AND date BETWEEN ? AND ?", employeeID, start, end).
			Order("date").
			Find(&days).Error
	}); err != nil {
		common.Internal(c, "monthly-attendance", err)
		return
	}

	records := utils.Map(days, func(d model.AttendanceDay) attendance.DayRecord {
		return attendance.DayRecord{
			Date:           d.Date,
			Status:         d.Status,
			TotalWorkHours: d.TotalWorkHours,
		}
	})

	c.JSON(http.StatusOK, gin.H{
		"year":       year,
		"month":      month,
		"attendance": ep.cutoffs.ProjectMonth(records),
	})
}
