package asset

import (
	"fmt"
	"time"
)

// Coordinates is the asset's physical location.
type Coordinates struct {
	Lat float64
	Lng float64
}

func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %f out of range", c.Lng)
	}
	return nil
}

type Asset struct {
	id                  uint
	assetNo             string
	name                string
	description         string
	coordinates         Coordinates
	installationDate    time.Time
	cleaningSchedule    Schedule
	maintenanceSchedule Schedule
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

// NewAsset creates an asset and seeds both schedules from the
// installation date.
func NewAsset(
	assetNo string,
	name string,
	description string,
	coordinates Coordinates,
	installationDate time.Time,
	cleaningIntervalDays int,
	maintenanceIntervalDays int,
	now time.Time,
) (*Asset, error) {
	if len(assetNo) == 0 {
		return nil, fmt.Errorf("asset number is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("asset name is required")
	}
	if err := coordinates.Validate(); err != nil {
		return nil, err
	}
	if installationDate.IsZero() {
		return nil, fmt.Errorf("installation date is required")
	}

	cleaning, err := NewSchedule(cleaningIntervalDays, installationDate, now)
	if err != nil {
		return nil, fmt.Errorf("cleaning schedule: %w", err)
	}
	maintenance, err := NewSchedule(maintenanceIntervalDays, installationDate, now)
	if err != nil {
		return nil, fmt.Errorf("maintenance schedule: %w", err)
	}

	return &Asset{
		assetNo:             assetNo,
		name:                name,
		description:         description,
		coordinates:         coordinates,
		installationDate:    installationDate,
		cleaningSchedule:    cleaning,
		maintenanceSchedule: maintenance,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructAsset(
	id uint,
	assetNo string,
	name string,
	description string,
	coordinates Coordinates,
	installationDate time.Time,
	cleaningSchedule Schedule,
	maintenanceSchedule Schedule,
	version int,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if len(assetNo) == 0 {
		return nil, fmt.Errorf("asset number is required")
	}

	return &Asset{
		id:                  id,
		assetNo:             assetNo,
		name:                name,
		description:         description,
		coordinates:         coordinates,
		installationDate:    installationDate,
		cleaningSchedule:    cleaningSchedule,
		maintenanceSchedule: maintenanceSchedule,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (a *Asset) ID() uint {
	return a.id
}

func (a *Asset) AssetNo() string {
	return a.assetNo
}

func (a *Asset) Name() string {
	return a.name
}

func (a *Asset) Description() string {
	return a.description
}

func (a *Asset) Coordinates() Coordinates {
	return a.coordinates
}

func (a *Asset) InstallationDate() time.Time {
	return a.installationDate
}

func (a *Asset) CleaningSchedule() Schedule {
	return a.cleaningSchedule
}

func (a *Asset) MaintenanceSchedule() Schedule {
	return a.maintenanceSchedule
}

func (a *Asset) Version() int {
	return a.version
}

func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Asset) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

// AdvanceCleaningSchedule reseeds the cleaning schedule from the trigger time.
func (a *Asset) AdvanceCleaningSchedule(now time.Time) {
	a.cleaningSchedule = a.cleaningSchedule.Advance(now)
	a.updatedAt = now
	a.version++
}

// AdvanceMaintenanceSchedule reseeds the maintenance schedule from the trigger time.
func (a *Asset) AdvanceMaintenanceSchedule(now time.Time) {
	a.maintenanceSchedule = a.maintenanceSchedule.Advance(now)
	a.updatedAt = now
	a.version++
}
