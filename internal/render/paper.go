package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"traveldesk-backend/internal/model"
)

// Dimensions is a paper canvas size in millimetres.
type Dimensions struct {
	Width  int
	Height int
}

var paperDimensions = map[string]Dimensions{
	model.PaperA4:     {Width: 210, Height: 297},
	model.PaperA5:     {Width: 148, Height: 210},
	model.PaperB4:     {Width: 250, Height: 353},
	model.PaperB5:     {Width: 176, Height: 250},
	model.PaperLetter: {Width: 216, Height: 279},
}

// PaperDimensions resolves a paper size name. The enum is closed, so an
// unknown value is a configuration error.
func PaperDimensions(size string) (Dimensions, error) {
	dims, ok := paperDimensions[size]
	if !ok {
		return Dimensions{}, fmt.Errorf("unknown paper size %q", size)
	}
	return dims, nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
