package handlers

import (
	"errors"
	"net/http"

	attendance "attendly.com/attendly/attendance/core"
	"attendly.com/attendly/core"
	"attendly.com/attendly/web/common"
	"attendly.com/attendly/web/middlewares"
	"github.com/gin-gonic/gin"
)

// errUnknownEmployee marks a token whose subject has no employee row.
var errUnknownEmployee = errors.New("unknown employee identity")

type Endpoint struct {
	dm      *core.DatabaseManager
	cutoffs attendance.CutoffConfig
}

func Register(r *gin.RouterGroup, admin *gin.RouterGroup, dm *core.DatabaseManager, cutoffs attendance.CutoffConfig) {
	ep := &Endpoint{dm: dm, cutoffs: cutoffs}
	r.POST("/attendance/clock-in", ep.ClockIn)
	r.POST("/attendance/clock-out", ep.ClockOut)
	r.GET("/attendance/today", ep.Today)
	r.GET("/attendance/monthly", ep.Monthly)
	admin.GET("/attendance/all", ep.All)
	admin.GET("/attendance/export", ep.Export)
}

func requireEmployee(c *gin.Context) (uint, bool) {
	id, ok := middlewares.EmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("missing employee identity"))
	}
	return id, ok
}
