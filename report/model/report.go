package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

type Report struct {
	ID            uuid.UUID    `gorm:"primaryKey;type:char(36)" json:"id"`
	EmployeeID    uint         `gorm:"column:employee_id;not null;index" json:"employeeId"`
	DocumentType  string       `gorm:"column:document_type;type:varchar(100);not null" json:"documentType"`
	Message       string       `gorm:"type:text" json:"message"`
	Status        ReportStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	SentAt        time.Time    `gorm:"column:sent_at;not null;index" json:"sentAt"`
	AttachmentKey *string      `gorm:"column:attachment_key;type:varchar(255)" json:"attachmentKey,omitempty"`
	CreatedAt     time.Time    `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
	UpdatedAt     time.Time    `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.SentAt.IsZero() {
		r.SentAt = time.Now()
	}
	if r.Status == "" {
		r.Status = ReportStatusPending
	}
	return nil
}
