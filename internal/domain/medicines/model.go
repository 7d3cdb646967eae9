package medicines

import "time"

type Medicine struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	ExpiryDate time.Time `gorm:"type:date;not null" json:"expiry_date"`
	CategoryID string    `gorm:"type:uuid;index;not null" json:"category_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type AddMedicineInput struct {
	Name       string
	ExpiryDate time.Time
	CategoryID string
	Quantity   int
}

// AlertPolicy controls how AddMedicine schedules alerts.
type AlertPolicy struct {
	// LeadDays is how many days before expiry the alert is dated.
	LeadDays int
	// ReuseOnMerge skips alert creation on a quantity merge when the
	// medicine already has a pending alert.
	ReuseOnMerge bool
}

const DefaultAlertLeadDays = 7

func DefaultAlertPolicy() AlertPolicy {
	return AlertPolicy{LeadDays: DefaultAlertLeadDays}
}
