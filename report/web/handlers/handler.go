package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"attendly.com/attendly/core"
	"attendly.com/attendly/infrastructure/communication"
	"attendly.com/attendly/report/model"
	"attendly.com/attendly/web/common"
	"attendly.com/attendly/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Endpoint struct {
	dm       *core.DatabaseManager
	notifier *communication.Slack
	bucket   string
}

func Register(r *gin.RouterGroup, admin *gin.RouterGroup, dm *core.DatabaseManager, notifier *communication.Slack, bucket string) {
	ep := &Endpoint{dm: dm, notifier: notifier, bucket: bucket}
	r.POST("/reports/new-report", ep.Create)
	r.GET("/reports/get-all-reports", ep.List)
	r.DELETE("/reports/:id", ep.Delete)
	r.POST("/reports/:id/attachment", ep.UploadAttachment)
	r.GET("/reports/:id/attachment", ep.DownloadAttachment)
	admin.GET("/attachments", ep.ListAttachments)
}

type NewReportDTO struct {
	DocumentType string `json:"documentType" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}

	var dto NewReportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	report := model.Report{
		EmployeeID:   employeeID,
		DocumentType: dto.DocumentType,
		Message:      dto.Message,
	}

	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Create(&report).Error
	}); err != nil {
		common.Internal(c, "create-report", err)
		return
	}

	// Notification must not affect the response.
	go func(r model.Report) {
		msg := fmt.Sprintf("New %s report from employee %d: %s", r.DocumentType, r.EmployeeID, r.Message)
		if err := ep.notifier.Info(msg); err != nil {
			log.Printf("report notification failed: %v", err)
		}
	}(report)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": report})
}

func (ep *Endpoint) List(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}

	var reports []model.Report
	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Where("employee_id = ?", employeeID).
			Order("sent_at DESC").
			Find(&reports).Error
	}); err != nil {
		common.Internal(c, "list-reports", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reports})
}

func (ep *Endpoint) Delete(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid report id"))
		return
	}

	err = ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		result := db.Where("id = ? AND employee_id = ?", id, employeeID).
			Delete(&model.Report{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Report not found"})
		return
	}
	if err != nil {
		common.Internal(c, "delete-report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report deleted successfully"})
}

func requireEmployee(c *gin.Context) (uint, bool) {
	id, ok := middlewares.EmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("missing employee identity"))
	}
	return id, ok
}
