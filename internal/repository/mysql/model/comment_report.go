package model

import (
	"time"

	"github.com/gamewire/gamewire/domain"
)

// CommentReport is one abuse report row. The composite unique index on
// (comment_id, reporter_id) makes the insert an atomic insert-if-absent,
// so the same reporter can never end up with two rows even under
// concurrent requests.
type CommentReport struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CommentID  int64     `gorm:"column:comment_id;not null;uniqueIndex:idx_report_comment_reporter"`
	ReporterID int64     `gorm:"column:reporter_id;not null;uniqueIndex:idx_report_comment_reporter"`
	Reason     string    `gorm:"size:200;not null"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (CommentReport) TableName() string {
	return "comment_report"
}

func NewCommentReportFromDomain(commentID int64, r domain.Report) *CommentReport {
	return &CommentReport{
		CommentID:  commentID,
		ReporterID: r.ReporterID,
		Reason:     r.Reason,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *CommentReport) ToDomain() domain.Report {
	return domain.Report{
		ReporterID: m.ReporterID,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
	}
}
