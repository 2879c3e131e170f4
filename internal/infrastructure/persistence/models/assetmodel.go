package models

type AssetModel struct {
	ID                      uint    `gorm:"primaryKey"`
	AssetNo                 string  `gorm:"uniqueIndex;size:50;not null"`
	Name                    string  `gorm:"size:200;not null"`
	Description             string  `gorm:"type:text"`
	Latitude                float64 `gorm:"not null"`
	Longitude               float64 `gorm:"not null"`
	InstallationDate        int64   `gorm:"not null"`
	CleaningIntervalDays    int     `gorm:"not null"`
	CleaningNextDate        int64   `gorm:"not null;index"`
	MaintenanceIntervalDays int     `gorm:"not null"`
	MaintenanceNextDate     int64   `gorm:"not null;index"`
	Version                 int     `gorm:"not null;default:1"`
	CreatedAt               int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt               int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (AssetModel) TableName() string {
	return "assets"
}
