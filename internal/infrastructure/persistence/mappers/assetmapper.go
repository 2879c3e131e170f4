package mappers

import (
	"fmt"

	"mantis/internal/domain/asset"
	"mantis/internal/infrastructure/persistence/models"
)

// AssetMapper handles the conversion between Asset domain entities and persistence models.
type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:                      a.ID(),
		AssetNo:                 a.AssetNo(),
		Name:                    a.Name(),
		Description:             a.Description(),
		Latitude:                a.Coordinates().Lat,
		Longitude:               a.Coordinates().Lng,
		InstallationDate:        a.InstallationDate().UnixMilli(),
		CleaningIntervalDays:    a.CleaningSchedule().IntervalDays(),
		CleaningNextDate:        a.CleaningSchedule().NextDate().UnixMilli(),
		MaintenanceIntervalDays: a.MaintenanceSchedule().IntervalDays(),
		MaintenanceNextDate:     a.MaintenanceSchedule().NextDate().UnixMilli(),
		Version:                 a.Version(),
		CreatedAt:               a.CreatedAt().UnixMilli(),
		UpdatedAt:               a.UpdatedAt().UnixMilli(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	cleaning, err := asset.ReconstructSchedule(model.CleaningIntervalDays, convertMillisToTime(model.CleaningNextDate))
	if err != nil {
		return nil, fmt.Errorf("asset %d: cleaning schedule: %w", model.ID, err)
	}
	maintenance, err := asset.ReconstructSchedule(model.MaintenanceIntervalDays, convertMillisToTime(model.MaintenanceNextDate))
	if err != nil {
		return nil, fmt.Errorf("asset %d: maintenance schedule: %w", model.ID, err)
	}

	return asset.ReconstructAsset(
		model.ID,
		model.AssetNo,
		model.Name,
		model.Description,
		asset.Coordinates{Lat: model.Latitude, Lng: model.Longitude},
		convertMillisToTime(model.InstallationDate),
		cleaning,
		maintenance,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
