package usecases

import (
	"context"
	"fmt"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/notification"
	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	wovo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/biztime"
	"mantis/internal/shared/db"
	"mantis/internal/shared/logger"
)

// RunCleaningSweepUseCase is the cleaning twin of the maintenance sweep:
// same scan-create-advance loop over the cleaning schedule.
type RunCleaningSweepUseCase struct {
	assetRepo     asset.Repository
	ticketRepo    ticket.Repository
	workOrderRepo workorder.Repository
	txMgr         db.Tx
	publisher     notification.Publisher
	logger        logger.Interface
}

func NewRunCleaningSweepUseCase(
	assetRepo asset.Repository,
	ticketRepo ticket.Repository,
	workOrderRepo workorder.Repository,
	txMgr db.Tx,
	publisher notification.Publisher,
	logger logger.Interface,
) *RunCleaningSweepUseCase {
	return &RunCleaningSweepUseCase{
		assetRepo:     assetRepo,
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		txMgr:         txMgr,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *RunCleaningSweepUseCase) Execute(ctx context.Context) (*SweepResult, error) {
	now := biztime.NowUTC()
	today := biztime.StartOfDayUTC(now)

	uc.logger.Infow("running cleaning sweep", "today", today)

	due, err := uc.assetRepo.ListCleaningDue(ctx, today)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Scanned: len(due)}
	for _, a := range due {
		if err := uc.sweepAsset(ctx, a); err != nil {
			uc.logger.Errorw("cleaning sweep failed for asset",
				"asset_id", a.ID(),
				"asset_no", a.AssetNo(),
				"error", err,
			)
			result.Skipped++
			continue
		}
		result.Created++
	}

	uc.logger.Infow("cleaning sweep finished",
		"scanned", result.Scanned,
		"created", result.Created,
		"skipped", result.Skipped,
	)

	return result, nil
}

func (uc *RunCleaningSweepUseCase) sweepAsset(ctx context.Context, a *asset.Asset) error {
	t, err := ticket.NewScheduledTicket(a.ID())
	if err != nil {
		return err
	}
	wo, err := workorder.NewCleaning("", wovo.StatusOpen)
	if err != nil {
		return err
	}

	a.AdvanceCleaningSchedule(biztime.NowUTC())

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}
		if err := wo.BindToTicket(t.ID()); err != nil {
			return err
		}
		if err := uc.workOrderRepo.Save(txCtx, wo); err != nil {
			return err
		}
		return uc.assetRepo.Update(txCtx, a)
	})
	if err != nil {
		return err
	}

	event := notification.NewEvent(
		"Scheduled cleaning",
		fmt.Sprintf("Cleaning is due for asset %s; ticket #%d was created", a.AssetNo(), t.ID()),
		fmt.Sprintf("tickets/%d", t.ID()),
	)
	if err := uc.publisher.Notify(ctx, notification.AllAdmins(), event); err != nil {
		uc.logger.Warnw("failed to notify admins of scheduled cleaning",
			"ticket_id", t.ID(),
			"error", err,
		)
	}

	return nil
}
