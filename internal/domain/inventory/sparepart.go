package inventory

import (
	"fmt"
	"time"
)

// StorageType distinguishes cold-chain and regular storage.
type StorageType string

const (
	StorageCold    StorageType = "cold"
	StorageRegular StorageType = "regular"
)

func (s StorageType) IsValid() bool {
	return s == StorageCold || s == StorageRegular
}

func (s StorageType) String() string {
	return string(s)
}

func NewStorageType(v string) (StorageType, error) {
	s := StorageType(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid storage type: %s", v)
	}
	return s, nil
}

// SparePart is an inventory row. Its quantity is the one shared mutable
// resource across concurrent ticket approvals; it is only ever mutated
// through the repository's atomic Reserve operation, never through this
// entity in application code.
type SparePart struct {
	id           uint
	partNo       string
	partName     string
	partBarcode  string
	quantity     int
	minStock     int
	maxStock     int
	expiryDate   *time.Time
	leadTimeDays int
	storageType  StorageType
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSparePart(
	partNo string,
	partName string,
	partBarcode string,
	quantity int,
	minStock int,
	maxStock int,
	expiryDate *time.Time,
	leadTimeDays int,
	storageType StorageType,
) (*SparePart, error) {
	if len(partNo) == 0 {
		return nil, fmt.Errorf("part number is required")
	}
	if len(partName) == 0 {
		return nil, fmt.Errorf("part name is required")
	}
	if len(partBarcode) == 0 {
		return nil, fmt.Errorf("part barcode is required")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if minStock < 0 {
		return nil, fmt.Errorf("min stock cannot be negative")
	}
	if maxStock < minStock {
		return nil, fmt.Errorf("max stock cannot be below min stock")
	}
	if quantity < minStock || quantity > maxStock {
		return nil, fmt.Errorf("quantity %d outside stock bounds [%d, %d]", quantity, minStock, maxStock)
	}
	if leadTimeDays < 0 {
		return nil, fmt.Errorf("lead time cannot be negative")
	}
	if !storageType.IsValid() {
		return nil, fmt.Errorf("invalid storage type: %s", storageType)
	}

	now := time.Now()
	return &SparePart{
		partNo:       partNo,
		partName:     partName,
		partBarcode:  partBarcode,
		quantity:     quantity,
		minStock:     minStock,
		maxStock:     maxStock,
		expiryDate:   expiryDate,
		leadTimeDays: leadTimeDays,
		storageType:  storageType,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructSparePart(
	id uint,
	partNo string,
	partName string,
	partBarcode string,
	quantity int,
	minStock int,
	maxStock int,
	expiryDate *time.Time,
	leadTimeDays int,
	storageType StorageType,
	version int,
	createdAt, updatedAt time.Time,
) (*SparePart, error) {
	if id == 0 {
		return nil, fmt.Errorf("spare part ID cannot be zero")
	}
	if !storageType.IsValid() {
		return nil, fmt.Errorf("invalid storage type: %s", storageType)
	}

	return &SparePart{
		id:           id,
		partNo:       partNo,
		partName:     partName,
		partBarcode:  partBarcode,
		quantity:     quantity,
		minStock:     minStock,
		maxStock:     maxStock,
		expiryDate:   expiryDate,
		leadTimeDays: leadTimeDays,
		storageType:  storageType,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *SparePart) ID() uint {
	return p.id
}

func (p *SparePart) PartNo() string {
	return p.partNo
}

func (p *SparePart) PartName() string {
	return p.partName
}

func (p *SparePart) PartBarcode() string {
	return p.partBarcode
}

func (p *SparePart) Quantity() int {
	return p.quantity
}

func (p *SparePart) MinStock() int {
	return p.minStock
}

func (p *SparePart) MaxStock() int {
	return p.maxStock
}

func (p *SparePart) ExpiryDate() *time.Time {
	return p.expiryDate
}

func (p *SparePart) LeadTimeDays() int {
	return p.leadTimeDays
}

func (p *SparePart) StorageType() StorageType {
	return p.storageType
}

func (p *SparePart) Version() int {
	return p.version
}

func (p *SparePart) CreatedAt() time.Time {
	return p.createdAt
}

func (p *SparePart) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *SparePart) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("spare part ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("spare part ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsBelowMinStock reports whether the current quantity has fallen under
// the low-stock threshold.
func (p *SparePart) IsBelowMinStock() bool {
	return p.quantity < p.minStock
}

// IsOutOfStock reports whether no units remain.
func (p *SparePart) IsOutOfStock() bool {
	return p.quantity <= 0
}

// AdjustQuantity applies a direct administrative stock edit. Reservation
// decrements never go through here.
func (p *SparePart) AdjustQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if quantity > p.maxStock {
		return fmt.Errorf("quantity %d exceeds max stock %d", quantity, p.maxStock)
	}

	p.quantity = quantity
	p.updatedAt = time.Now()
	p.version++

	return nil
}

// UpdateStockBounds replaces the min/max thresholds.
func (p *SparePart) UpdateStockBounds(minStock, maxStock int) error {
	if minStock < 0 {
		return fmt.Errorf("min stock cannot be negative")
	}
	if maxStock < minStock {
		return fmt.Errorf("max stock cannot be below min stock")
	}

	p.minStock = minStock
	p.maxStock = maxStock
	p.updatedAt = time.Now()
	p.version++

	return nil
}
