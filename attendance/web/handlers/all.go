package handlers

import (
	"net/http"

	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/utils"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// All returns every ledger with the employee joined, newest day first.
// Admin only; registered behind RequireAdmin.
func (ep *Endpoint) All(c *gin.Context) {
	var days []model.AttendanceDay
	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Preload("Employee").
			Order("date DESC").
			Find(&days).Error
	}); err != nil {
		common.Internal(c, "all-attendance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendances": utils.Map(days, toAttendanceWithEmployeeDTO),
	})
}
