package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// FurnitureType is one of the product lines the report can be produced for.
type FurnitureType string

const (
	FurnitureChair   FurnitureType = "Chair"
	FurnitureTable   FurnitureType = "Table"
	FurnitureSofa    FurnitureType = "Sofa"
	FurnitureShelf   FurnitureType = "Shelf"
	FurnitureCabinet FurnitureType = "Cabinet"
)

// FurnitureTypes is the ordered list shown in the type dropdown.
var FurnitureTypes = []FurnitureType{
	FurnitureChair,
	FurnitureTable,
	FurnitureSofa,
	FurnitureShelf,
	FurnitureCabinet,
}

// Form defaults and limits. Dimensions are in centimetres.
const (
	DefaultLength   = 50.0
	DefaultWidth    = 40.0
	DefaultHeight   = 90.0
	DefaultQuantity = 1
	MinDimension    = 1.0
	MaxDimension    = 1000.0
	MinQuantity     = 1
)

// ParseFurnitureType matches s case-insensitively against FurnitureTypes.
func ParseFurnitureType(s string) (FurnitureType, error) {
	s = strings.TrimSpace(s)
	for _, ft := range FurnitureTypes {
		if strings.EqualFold(s, string(ft)) {
			return ft, nil
		}
	}
	return "", fmt.Errorf("unknown furniture type %q", s)
}

// OrderRequest is a single form submission. It is passed by value and
// never shared between requests. The json names double as the keys of
// the map returned by FieldErrors, so they must match the form fields.
type OrderRequest struct {
	FurnitureType FurnitureType `json:"furniture_type"`
	Length        float64       `json:"length"`
	Width         float64       `json:"width"`
	Height        float64       `json:"height"`
	Quantity      int           `json:"quantity"`
	ClientName    string        `json:"client_name"`
	ClientEmail   string        `json:"client_email"`
	ClientPhone   string        `json:"client_phone"`
}

// DefaultOrder returns the values the form starts with.
func DefaultOrder() OrderRequest {
	return OrderRequest{
		FurnitureType: FurnitureChair,
		Length:        DefaultLength,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Quantity:      DefaultQuantity,
	}
}

// Validate enforces the form minimums and the furniture enum. The phone
// number is checked separately by PhoneWarning.
func (o OrderRequest) Validate() error {
	types := make([]interface{}, len(FurnitureTypes))
	for i, ft := range FurnitureTypes {
		types[i] = ft
	}
	return validation.ValidateStruct(&o,
		validation.Field(&o.FurnitureType, validation.Required, validation.In(types...)),
		validation.Field(&o.Length, dimensionRules()...),
		validation.Field(&o.Width, dimensionRules()...),
		validation.Field(&o.Height, dimensionRules()...),
		validation.Field(&o.Quantity, validation.Required, validation.Min(MinQuantity)),
	)
}

// NaN slips past Min and Max, so finiteness is checked first.
func dimensionRules() []validation.Rule {
	return []validation.Rule{
		validation.By(finite),
		validation.Required,
		validation.Min(MinDimension),
		validation.Max(MaxDimension),
	}
}

func finite(value interface{}) error {
	v, _ := value.(float64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("must be a finite number")
	}
	return nil
}

// Dimensions renders "L x W x H" the way it appears in the report.
func (o OrderRequest) Dimensions() string {
	return fmt.Sprintf("%s x %s x %s",
		FormatDimension(o.Length), FormatDimension(o.Width), FormatDimension(o.Height))
}

// ValidatePhone reports whether phone is acceptable: empty (nothing typed
// yet) or made of ASCII digits only. Fullwidth and other non-ASCII decimal
// digits are flagged.
func ValidatePhone(phone string) bool {
	return validation.Validate(phone, is.Digit) == nil
}

// PhoneWarning returns the user-facing warning for an invalid phone, or ""
// when there is nothing to flag.
func PhoneWarning(phone string) string {
	if ValidatePhone(phone) {
		return ""
	}
	return "Please enter numbers only for the phone number."
}

// FieldErrors flattens a validation error into field -> message. Errors
// that are not field errors end up under the "form" key.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		out["form"] = err.Error()
		return out
	}
	for field, fe := range errs {
		if fe != nil {
			out[field] = fe.Error()
		}
	}
	return out
}
