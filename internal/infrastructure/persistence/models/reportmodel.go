package models

type ReportModel struct {
	ID             uint   `gorm:"primaryKey"`
	Description    string `gorm:"type:text;not null"`
	BeforePhotoURL string `gorm:"size:500;not null"`
	AfterPhotoURL  string `gorm:"size:500;not null"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReportModel) TableName() string {
	return "reports"
}
