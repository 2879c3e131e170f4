package mappers

import (
	"fmt"
	"time"

	"mantis/internal/domain/inventory"
	"mantis/internal/infrastructure/persistence/models"
)

// SparePartMapper handles the conversion between SparePart domain entities and persistence models.
type SparePartMapper interface {
	ToModel(p *inventory.SparePart) *models.SparePartModel
	ToDomain(model *models.SparePartModel) (*inventory.SparePart, error)
}

type SparePartMapperImpl struct{}

func NewSparePartMapper() SparePartMapper {
	return &SparePartMapperImpl{}
}

func (m *SparePartMapperImpl) ToModel(p *inventory.SparePart) *models.SparePartModel {
	model := &models.SparePartModel{
		ID:           p.ID(),
		PartNo:       p.PartNo(),
		PartName:     p.PartName(),
		PartBarcode:  p.PartBarcode(),
		Quantity:     p.Quantity(),
		MinStock:     p.MinStock(),
		MaxStock:     p.MaxStock(),
		LeadTimeDays: p.LeadTimeDays(),
		StorageType:  p.StorageType().String(),
		Version:      p.Version(),
		CreatedAt:    p.CreatedAt().UnixMilli(),
		UpdatedAt:    p.UpdatedAt().UnixMilli(),
	}

	if p.ExpiryDate() != nil {
		expiry := p.ExpiryDate().UnixMilli()
		model.ExpiryDate = &expiry
	}

	return model
}

func (m *SparePartMapperImpl) ToDomain(model *models.SparePartModel) (*inventory.SparePart, error) {
	storageType, err := inventory.NewStorageType(model.StorageType)
	if err != nil {
		return nil, fmt.Errorf("spare part %d: %w", model.ID, err)
	}

	var expiryDate *time.Time
	if model.ExpiryDate != nil {
		ts := convertMillisToTime(*model.ExpiryDate)
		expiryDate = &ts
	}

	return inventory.ReconstructSparePart(
		model.ID,
		model.PartNo,
		model.PartName,
		model.PartBarcode,
		model.Quantity,
		model.MinStock,
		model.MaxStock,
		expiryDate,
		model.LeadTimeDays,
		storageType,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
