package inventory

import "context"

// Reservation is the outcome of one atomic stock decrement.
type Reservation struct {
	PartID uint
	// Remaining is the quantity after the decrement.
	Remaining int
	// CrossedMinStock is true when this decrement moved the quantity from
	// at-or-above minStock to below it. The crossing fires the low-stock
	// notification exactly once.
	CrossedMinStock bool
}

type Repository interface {
	Save(ctx context.Context, p *SparePart) error
	Update(ctx context.Context, p *SparePart) error
	Delete(ctx context.Context, partID uint) error
	GetByID(ctx context.Context, partID uint) (*SparePart, error)
	GetByPartNo(ctx context.Context, partNo string) (*SparePart, error)
	GetByBarcode(ctx context.Context, barcode string) (*SparePart, error)
	List(ctx context.Context, filter Filter) ([]*SparePart, int64, error)

	// Reserve atomically decrements the part's quantity by one with a
	// single conditional update (quantity > 0 -> quantity - 1). It returns
	// a conflict error when the part is out of stock and a not-found error
	// when the ID does not resolve. There is no read-then-write window:
	// concurrent reservations against the same part serialize on the
	// conditional update.
	Reserve(ctx context.Context, partID uint) (*Reservation, error)
}

type Filter struct {
	StorageType   *StorageType
	BelowMinStock bool
	Page          int
	PageSize      int
}
