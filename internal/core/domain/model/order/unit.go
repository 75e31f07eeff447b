package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// Unit is the unit of measure of a line item quantity.
type Unit string

const (
	Kilogram Unit = "kg"
	Piece    Unit = "unidad"
	Dozen    Unit = "docena"
	Tray     Unit = "bandeja"
	Litre    Unit = "litro"
)

// DefaultUnit applies to lines submitted without a unit. Bread is sold by weight.
const DefaultUnit = Kilogram

// ParseUnit maps empty input to DefaultUnit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case "":
		return DefaultUnit, nil
	case Kilogram, Piece, Dozen, Tray, Litre:
		return u, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%q is not a known unit", s))
	}
}

// Origin tells how an order entered the system.
type Origin string

const (
	// OriginManual orders are keyed in by staff on the operations dashboard.
	OriginManual Origin = "manual"
	// OriginSelfService orders are placed by customers on the portal.
	OriginSelfService Origin = "autoservicio"
)

// ParseOrigin maps empty input to OriginManual.
func ParseOrigin(s string) (Origin, error) {
	switch o := Origin(strings.TrimSpace(s)); o {
	case "":
		return OriginManual, nil
	case OriginManual, OriginSelfService:
		return o, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("origin", fmt.Errorf("%q is not a known origin", s))
	}
}
