package models

type WorkOrderModel struct {
	ID                uint   `gorm:"primaryKey"`
	TicketID          uint   `gorm:"uniqueIndex;not null"`
	Kind              string `gorm:"size:20;not null;index"`
	Status            string `gorm:"size:20;not null;index"`
	RequireSpareParts bool   `gorm:"not null;default:false"`
	SparePartIDs      string `gorm:"type:json"`
	ReportID          *uint  `gorm:"index"`
	RejectReportID    *uint  `gorm:"index"`
	Note              string `gorm:"type:text"`
	CrocaType         *string `gorm:"size:30"`
	CrocaCost         *string `gorm:"size:50"`
	CrocaPhotoURL     *string `gorm:"size:500"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (WorkOrderModel) TableName() string {
	return "work_orders"
}
