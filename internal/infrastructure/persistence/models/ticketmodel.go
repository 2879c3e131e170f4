package models

type TicketModel struct {
	ID              uint    `gorm:"primaryKey"`
	OpenerKind      *string `gorm:"size:20;index"`
	OpenerID        *uint   `gorm:"index"`
	AssignedTo      *uint   `gorm:"index"`
	Priority        string  `gorm:"size:20;not null;index"`
	AssetID         uint    `gorm:"not null;index"`
	Description     string  `gorm:"type:text;not null"`
	Status          string  `gorm:"size:20;not null;index"`
	TechApproved    bool    `gorm:"not null;default:false"`
	Approval        string  `gorm:"size:20;not null;index"`
	RejectionReason string  `gorm:"type:text"`
	StartTime       *int64
	EndTime         *int64
	TimerMinutes    *int
	Version         int   `gorm:"not null;default:1"`
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
