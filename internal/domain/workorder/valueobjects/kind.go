package valueobjects

import "fmt"

// Kind discriminates the three work-order specializations.
type Kind string

const (
	KindMaintenance Kind = "maintenance"
	KindCleaning    Kind = "cleaning"
	KindAccident    Kind = "accident"
)

var validKinds = map[Kind]bool{
	KindMaintenance: true,
	KindCleaning:    true,
	KindAccident:    true,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

func (k Kind) IsMaintenance() bool {
	return k == KindMaintenance
}

func (k Kind) IsCleaning() bool {
	return k == KindCleaning
}

func (k Kind) IsAccident() bool {
	return k == KindAccident
}

// SupportsSpareParts reports whether this kind participates in the
// spare-parts reservation protocol. Cleaning never touches spare parts.
func (k Kind) SupportsSpareParts() bool {
	return k == KindMaintenance || k == KindAccident
}

// SupportsRejectReport reports whether this kind participates in the
// reject-then-resubmit report flow.
func (k Kind) SupportsRejectReport() bool {
	return k == KindMaintenance || k == KindAccident
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid work order kind: %s", s)
	}
	return k, nil
}
