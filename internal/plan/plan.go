package plan

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Type string
type Method string

const (
	TypeSilver Type = "silver"
	TypeGold   Type = "gold"

	MethodPix  Method = "pix"
	MethodCard Method = "card"
)

var (
	ErrUnknownPlan   = errors.New("unknown plan type")
	ErrUnknownMethod = errors.New("unknown payment method")
)

// Plan is a static catalog entry. Prices are per payment method: PIX gets
// either a discount (silver) or a lower fixed price (gold) because card
// payments carry the processor fee.
type Plan struct {
	Type      Type
	Title     string
	PixPrice  decimal.Decimal
	CardPrice decimal.Decimal
}

// 5% discount on instant transfer.
var pixDiscount = decimal.NewFromFloat(0.95)

func Plans() []Plan {
	silverBase := decimal.NewFromFloat(9.90)
	return []Plan{
		{
			Type:      TypeSilver,
			Title:     "Simulado PMPA - Plano Silver (3x/dia + Recursos)",
			PixPrice:  silverBase.Mul(pixDiscount),
			CardPrice: silverBase,
		},
		{
			Type:      TypeGold,
			Title:     "Simulado PMPA - Plano Gold (Ilimitado + Tudo)",
			PixPrice:  decimal.NewFromFloat(19.90),
			CardPrice: decimal.NewFromFloat(29.90),
		},
	}
}

func Find(t Type) (Plan, error) {
	for _, p := range Plans() {
		if p.Type == t {
			return p, nil
		}
	}
	return Plan{}, ErrUnknownPlan
}

func ValidMethod(m Method) bool {
	return m == MethodPix || m == MethodCard
}

// Price returns the amount charged for the given method, rounded half away
// from zero to two decimal places (9.405 rounds to 9.41). The same rounded
// value is submitted to the processor and echoed to the caller, so the price
// shown always equals the price charged.
func (p Plan) Price(m Method) decimal.Decimal {
	if m == MethodPix {
		return p.PixPrice.Round(2)
	}
	return p.CardPrice.Round(2)
}

// PriceString is Price formatted with exactly two decimals.
func (p Plan) PriceString(m Method) string {
	return p.Price(m).StringFixed(2)
}
