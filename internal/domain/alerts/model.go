package alerts

import "time"

const (
	StatusPending = "Pending"
	StatusSent    = "Sent"
)

type Alert struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	MedicineID string    `gorm:"type:uuid;index;not null" json:"medicine_id"`
	AlertDate  time.Time `gorm:"type:date;not null" json:"alert_date"`
	Status     string    `gorm:"not null;default:Pending" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
