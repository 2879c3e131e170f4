package dto

import (
	"time"

	"mantis/internal/domain/inventory"
)

type SparePartDTO struct {
	ID           uint       `json:"id"`
	PartNo       string     `json:"part_no"`
	PartName     string     `json:"part_name"`
	PartBarcode  string     `json:"part_barcode"`
	Quantity     int        `json:"quantity"`
	MinStock     int        `json:"min_stock"`
	MaxStock     int        `json:"max_stock"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	LeadTimeDays int        `json:"lead_time_days"`
	StorageType  string     `json:"storage_type"`
	BelowMin     bool       `json:"below_min_stock"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromSparePart(p *inventory.SparePart) *SparePartDTO {
	return &SparePartDTO{
		ID:           p.ID(),
		PartNo:       p.PartNo(),
		PartName:     p.PartName(),
		PartBarcode:  p.PartBarcode(),
		Quantity:     p.Quantity(),
		MinStock:     p.MinStock(),
		MaxStock:     p.MaxStock(),
		ExpiryDate:   p.ExpiryDate(),
		LeadTimeDays: p.LeadTimeDays(),
		StorageType:  p.StorageType().String(),
		BelowMin:     p.IsBelowMinStock(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func FromSpareParts(parts []*inventory.SparePart) []*SparePartDTO {
	out := make([]*SparePartDTO, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromSparePart(p))
	}
	return out
}
