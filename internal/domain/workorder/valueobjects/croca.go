package valueobjects

import "fmt"

// CrocaType classifies the insurance standing of an accident.
type CrocaType string

const (
	CrocaTypeCroca            CrocaType = "croca"
	CrocaTypeAnonymous        CrocaType = "anonymous"
	CrocaTypeInsuranceExpired CrocaType = "insurance_expired"
)

var validCrocaTypes = map[CrocaType]bool{
	CrocaTypeCroca:            true,
	CrocaTypeAnonymous:        true,
	CrocaTypeInsuranceExpired: true,
}

func (c CrocaType) String() string {
	return string(c)
}

func (c CrocaType) IsValid() bool {
	return validCrocaTypes[c]
}

func NewCrocaType(s string) (CrocaType, error) {
	c := CrocaType(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid croca type: %s", s)
	}
	return c, nil
}

// Croca is the incident/insurance classification attached to an accident
// work order, with its cost bracket and documentary photo.
type Croca struct {
	crocaType CrocaType
	cost      string
	photoURL  *string
}

// DefaultCroca returns the creation-time sentinel value. A croca equal to
// this exact triple is considered not yet filled; there is no separate
// "filled" flag.
func DefaultCroca() Croca {
	return Croca{
		crocaType: CrocaTypeCroca,
		cost:      "0",
		photoURL:  nil,
	}
}

func NewCroca(crocaType CrocaType, cost string, photoURL *string) (Croca, error) {
	if !crocaType.IsValid() {
		return Croca{}, fmt.Errorf("invalid croca type: %s", crocaType)
	}
	if len(cost) == 0 {
		return Croca{}, fmt.Errorf("croca cost is required")
	}
	return Croca{
		crocaType: crocaType,
		cost:      cost,
		photoURL:  photoURL,
	}, nil
}

func (c Croca) Type() CrocaType {
	return c.crocaType
}

func (c Croca) Cost() string {
	return c.cost
}

func (c Croca) PhotoURL() *string {
	return c.photoURL
}

// IsDefault reports whether the croca still equals the creation sentinel,
// meaning no incident data has been supplied yet.
func (c Croca) IsDefault() bool {
	return c.crocaType == CrocaTypeCroca && c.cost == "0" && c.photoURL == nil
}
