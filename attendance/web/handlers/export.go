package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Export writes the month's ledgers as an xlsx workbook, one row per
// (employee, day). Admin only.
func (ep *Endpoint) Export(c *gin.Context) {
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
		return db.Preload("Employee").
			Where("date BETWEEN ? AND ?", start, end).
			Order("date, employee_id").
			Find(&days).Error
	}); err != nil {
		common.Internal(c, "export-attendance", err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Date", "Employee", "Code", "Department", "Status", "Hours", "Sessions"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		common.Internal(c, "export-attendance", err)
		return
	}

	for i, d := range days {
		row := []interface{}{
			d.Date.In(ep.cutoffs.Zone).Format("2006-01-02"),
			d.Employee.Name,
			d.Employee.Code,
			d.Employee.Department,
			string(d.Status),
			d.TotalWorkHours,
			len(d.SessionList()),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			common.Internal(c, "export-attendance", err)
			return
		}
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", year, month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		common.Internal(c, "export-attendance", err)
	}
}
