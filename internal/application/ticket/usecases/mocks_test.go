package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/inventory"
	"mantis/internal/domain/notification"
	"mantis/internal/domain/report"
	"mantis/internal/domain/ticket"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc      func(ctx context.Context, ticketID uint) error
	GetByIDFunc     func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ClaimFunc       func(ctx context.Context, ticketID uint, techID uint) error
	MarkStartedFunc func(ctx context.Context, ticketID uint, startedAt time.Time) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Claim(ctx context.Context, ticketID uint, techID uint) error {
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, ticketID, techID)
	}
	return nil
}

func (m *mockTicketRepository) MarkStarted(ctx context.Context, ticketID uint, startedAt time.Time) error {
	if m.MarkStartedFunc != nil {
		return m.MarkStartedFunc(ctx, ticketID, startedAt)
	}
	return nil
}

type mockWorkOrderRepository struct {
	SaveFunc          func(ctx context.Context, w *workorder.WorkOrder) error
	UpdateFunc        func(ctx context.Context, w *workorder.WorkOrder) error
	DeleteFunc        func(ctx context.Context, workOrderID uint) error
	GetByIDFunc       func(ctx context.Context, workOrderID uint) (*workorder.WorkOrder, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) (*workorder.WorkOrder, error)
	ListFunc          func(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error)
}

func (m *mockWorkOrderRepository) Save(ctx context.Context, w *workorder.WorkOrder) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkOrderRepository) Update(ctx context.Context, w *workorder.WorkOrder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkOrderRepository) Delete(ctx context.Context, workOrderID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, workOrderID)
	}
	return nil
}

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, workOrderID uint) (*workorder.WorkOrder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, workOrderID)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) GetByTicketID(ctx context.Context, ticketID uint) (*workorder.WorkOrder, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) List(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockInventoryRepository struct {
	SaveFunc         func(ctx context.Context, p *inventory.SparePart) error
	UpdateFunc       func(ctx context.Context, p *inventory.SparePart) error
	DeleteFunc       func(ctx context.Context, partID uint) error
	GetByIDFunc      func(ctx context.Context, partID uint) (*inventory.SparePart, error)
	GetByPartNoFunc  func(ctx context.Context, partNo string) (*inventory.SparePart, error)
	GetByBarcodeFunc func(ctx context.Context, barcode string) (*inventory.SparePart, error)
	ListFunc         func(ctx context.Context, filter inventory.Filter) ([]*inventory.SparePart, int64, error)
	ReserveFunc      func(ctx context.Context, partID uint) (*inventory.Reservation, error)
}

func (m *mockInventoryRepository) Save(ctx context.Context, p *inventory.SparePart) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockInventoryRepository) Update(ctx context.Context, p *inventory.SparePart) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockInventoryRepository) Delete(ctx context.Context, partID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, partID)
	}
	return nil
}

func (m *mockInventoryRepository) GetByID(ctx context.Context, partID uint) (*inventory.SparePart, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, partID)
	}
	return nil, nil
}

func (m *mockInventoryRepository) GetByPartNo(ctx context.Context, partNo string) (*inventory.SparePart, error) {
	if m.GetByPartNoFunc != nil {
		return m.GetByPartNoFunc(ctx, partNo)
	}
	return nil, nil
}

func (m *mockInventoryRepository) GetByBarcode(ctx context.Context, barcode string) (*inventory.SparePart, error) {
	if m.GetByBarcodeFunc != nil {
		return m.GetByBarcodeFunc(ctx, barcode)
	}
	return nil, nil
}

func (m *mockInventoryRepository) List(ctx context.Context, filter inventory.Filter) ([]*inventory.SparePart, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockInventoryRepository) Reserve(ctx context.Context, partID uint) (*inventory.Reservation, error) {
	if m.ReserveFunc != nil {
		return m.ReserveFunc(ctx, partID)
	}
	return &inventory.Reservation{PartID: partID}, nil
}

type mockReportRepository struct {
	SaveFunc    func(ctx context.Context, r *report.Report) error
	UpdateFunc  func(ctx context.Context, r *report.Report) error
	DeleteFunc  func(ctx context.Context, reportID uint) error
	GetByIDFunc func(ctx context.Context, reportID uint) (*report.Report, error)
}

func (m *mockReportRepository) Save(ctx context.Context, r *report.Report) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Update(ctx context.Context, r *report.Report) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Delete(ctx context.Context, reportID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, reportID)
	}
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, reportID uint) (*report.Report, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, reportID)
	}
	return nil, nil
}

type mockAssetRepository struct {
	SaveFunc               func(ctx context.Context, a *asset.Asset) error
	UpdateFunc             func(ctx context.Context, a *asset.Asset) error
	DeleteFunc             func(ctx context.Context, assetID uint) error
	GetByIDFunc            func(ctx context.Context, assetID uint) (*asset.Asset, error)
	GetByAssetNoFunc       func(ctx context.Context, assetNo string) (*asset.Asset, error)
	ListFunc               func(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error)
	ListCleaningDueFunc    func(ctx context.Context, today time.Time) ([]*asset.Asset, error)
	ListMaintenanceDueFunc func(ctx context.Context, today time.Time) ([]*asset.Asset, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, assetID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, assetID)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, assetID)
	}
	return nil, nil
}

func (m *mockAssetRepository) GetByAssetNo(ctx context.Context, assetNo string) (*asset.Asset, error) {
	if m.GetByAssetNoFunc != nil {
		return m.GetByAssetNoFunc(ctx, assetNo)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssetRepository) ListCleaningDue(ctx context.Context, today time.Time) ([]*asset.Asset, error) {
	if m.ListCleaningDueFunc != nil {
		return m.ListCleaningDueFunc(ctx, today)
	}
	return nil, nil
}

func (m *mockAssetRepository) ListMaintenanceDue(ctx context.Context, today time.Time) ([]*asset.Asset, error) {
	if m.ListMaintenanceDueFunc != nil {
		return m.ListMaintenanceDueFunc(ctx, today)
	}
	return nil, nil
}

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockPublisher struct {
	NotifyFunc func(ctx context.Context, audience notification.Audience, event notification.Event) error

	Notified []notification.Audience
	Events   []notification.Event
}

func (m *mockPublisher) Notify(ctx context.Context, audience notification.Audience, event notification.Event) error {
	m.Notified = append(m.Notified, audience)
	m.Events = append(m.Events, event)
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, audience, event)
	}
	return nil
}

func assetNotFoundErr() error {
	return errors.NewNotFoundError("asset not found")
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
