package dto

import (
	"time"

	"mantis/internal/domain/asset"
)

type ScheduleDTO struct {
	IntervalDays int       `json:"interval_days"`
	NextDate     time.Time `json:"next_date"`
}

type AssetDTO struct {
	ID                  uint        `json:"id"`
	AssetNo             string      `json:"asset_no"`
	Name                string      `json:"name"`
	Description         string      `json:"description,omitempty"`
	Lat                 float64     `json:"lat"`
	Lng                 float64     `json:"lng"`
	InstallationDate    time.Time   `json:"installation_date"`
	CleaningSchedule    ScheduleDTO `json:"cleaning_schedule"`
	MaintenanceSchedule ScheduleDTO `json:"maintenance_schedule"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

func FromAsset(a *asset.Asset) *AssetDTO {
	return &AssetDTO{
		ID:               a.ID(),
		AssetNo:          a.AssetNo(),
		Name:             a.Name(),
		Description:      a.Description(),
		Lat:              a.Coordinates().Lat,
		Lng:              a.Coordinates().Lng,
		InstallationDate: a.InstallationDate(),
		CleaningSchedule: ScheduleDTO{
			IntervalDays: a.CleaningSchedule().IntervalDays(),
			NextDate:     a.CleaningSchedule().NextDate(),
		},
		MaintenanceSchedule: ScheduleDTO{
			IntervalDays: a.MaintenanceSchedule().IntervalDays(),
			NextDate:     a.MaintenanceSchedule().NextDate(),
		},
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func FromAssets(assets []*asset.Asset) []*AssetDTO {
	out := make([]*AssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, FromAsset(a))
	}
	return out
}
