package models

type SparePartModel struct {
	ID           uint   `gorm:"primaryKey"`
	PartNo       string `gorm:"uniqueIndex;size:50;not null"`
	PartName     string `gorm:"size:200;not null"`
	PartBarcode  string `gorm:"uniqueIndex;size:100;not null"`
	Quantity     int    `gorm:"not null;default:0"`
	MinStock     int    `gorm:"not null;default:0"`
	MaxStock     int    `gorm:"not null;default:0"`
	ExpiryDate   *int64
	LeadTimeDays int    `gorm:"not null;default:0"`
	StorageType  string `gorm:"size:20;not null;index"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SparePartModel) TableName() string {
	return "spare_parts"
}
