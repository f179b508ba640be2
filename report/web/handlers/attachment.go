package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"attendly.com/attendly/infrastructure/filesystem"
	"attendly.com/attendly/report/model"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadAttachment stores one supporting document (jpg/jpeg/png/pdf)
// for the caller's report and records its object key.
func (ep *Endpoint) UploadAttachment(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}
	if ep.bucket == "" {
		c.JSON(http.StatusNotImplemented, common.NewErrorResponse("attachments are not configured"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid report id"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Field 'file' is required"))
		return
	}

	ext := filepath.Ext(fileHeader.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf":
	default:
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Only jpg, jpeg, png and pdf attachments are accepted"))
		return
	}

	var report model.Report
	err = ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Where("id = ? AND employee_id = ?", id, employeeID).
			First(&report).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Report not found"})
		return
	}
	if err != nil {
		common.Internal(c, "upload-attachment", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.Internal(c, "upload-attachment", err)
		return
	}
	defer file.Close()

	key := fmt.Sprintf("reports/%s%s", report.ID, ext)
	contentType := mime.TypeByExtension(ext)
	if err := filesystem.WriteFile(ep.bucket, key, c.Request.Context(), contentType, file); err != nil {
		common.Internal(c, "upload-attachment", err)
		return
	}

	if err := ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Model(&model.Report{}).
			Where("id = ?", report.ID).
			Update("attachment_key", key).Error
	}); err != nil {
		common.Internal(c, "upload-attachment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "attachmentKey": key})
}

// ListAttachments enumerates every stored attachment key. Admin only;
// lets an auditor see the uploaded documents without walking each
// report.
func (ep *Endpoint) ListAttachments(c *gin.Context) {
	if ep.bucket == "" {
		c.JSON(http.StatusNotImplemented, common.NewErrorResponse("attachments are not configured"))
		return
	}

	keys, err := filesystem.ListFiles(ep.bucket, "reports/", c.Request.Context())
	if err != nil {
		common.Internal(c, "list-attachments", err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(keys))
}

// DownloadAttachment streams the stored attachment back to the caller.
func (ep *Endpoint) DownloadAttachment(c *gin.Context) {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return
	}
	if ep.bucket == "" {
		c.JSON(http.StatusNotImplemented, common.NewErrorResponse("attachments are not configured"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid report id"))
		return
	}

	var report model.Report
	err = ep.dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return db.Where("id = ? AND employee_id = ?", id, employeeID).
			First(&report).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && report.AttachmentKey == nil) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Attachment not found"})
		return
	}
	if err != nil {
		common.Internal(c, "download-attachment", err)
		return
	}

	ext := filepath.Ext(*report.AttachmentKey)
	c.Header("Content-Type", mime.TypeByExtension(ext))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(*report.AttachmentKey)))
	if err := filesystem.ReadFile(ep.bucket, *report.AttachmentKey, c.Request.Context(), c.Writer); err != nil {
		common.Internal(c, "download-attachment", err)
	}
}
