package usecases

import (
	"context"
	"time"

	"mantis/internal/application/asset/dto"
	"mantis/internal/domain/asset"
	"mantis/internal/shared/biztime"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CreateAssetCommand struct {
	AssetNo                 string
	Name                    string
	Description             string
	Lat                     float64
	Lng                     float64
	InstallationDate        time.Time
	CleaningIntervalDays    int
	MaintenanceIntervalDays int
}

type CreateAssetResult struct {
	Asset *dto.AssetDTO
}

// CreateAssetUseCase registers an asset and seeds both recurring-work
// schedules from its installation date.
type CreateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewCreateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*CreateAssetResult, error) {
	uc.logger.Infow("executing create asset use case",
		"asset_no", cmd.AssetNo,
		"name", cmd.Name,
	)

	if existing, err := uc.assetRepo.GetByAssetNo(ctx, cmd.AssetNo); err == nil && existing != nil {
		return nil, errors.NewConflictError("asset number already exists")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	a, err := asset.NewAsset(
		cmd.AssetNo,
		cmd.Name,
		cmd.Description,
		asset.Coordinates{Lat: cmd.Lat, Lng: cmd.Lng},
		cmd.InstallationDate,
		cmd.CleaningIntervalDays,
		cmd.MaintenanceIntervalDays,
		biztime.NowUTC(),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to save asset", "asset_no", cmd.AssetNo, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset created",
		"asset_id", a.ID(),
		"asset_no", a.AssetNo(),
		"cleaning_next", a.CleaningSchedule().NextDate(),
		"maintenance_next", a.MaintenanceSchedule().NextDate(),
	)

	return &CreateAssetResult{Asset: dto.FromAsset(a)}, nil
}
