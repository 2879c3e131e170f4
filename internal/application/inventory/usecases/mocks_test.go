package usecases

import (
	"context"

	"mantis/internal/domain/inventory"
	"mantis/internal/shared/logger"
)

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
