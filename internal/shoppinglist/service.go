// Package shoppinglist builds the downloadable shopping list from a
// user's cart: a read-only projection that joins through the cart
// recipes' ingredient rows, sums per distinct ingredient and renders a
// deterministic text export.
package shoppinglist

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Header is the fixed first line of the export.
const Header = "Список продуктов:\n"

// Line is one aggregated ingredient with its summed amount.
type Line struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type Service struct {
	repo *Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepository(db)}
}

// Aggregate groups the raw rows by ingredient and sums amounts. It sums
// whatever it is given, even repeated rows from a single recipe, and does
// not rely on the composition layer's duplicate guard. Output is sorted
// by ingredient name so the export is reproducible.
func Aggregate(items []Item) []Line {
	totals := make(map[uint]*Line, len(items))
	for _, item := range items {
		if line, ok := totals[item.IngredientID]; ok {
			line.Amount += item.Amount
			continue
		}
		totals[item.IngredientID] = &Line{
			Name:            item.Name,
			MeasurementUnit: item.MeasurementUnit,
			Amount:          item.Amount,
		}
	}

	lines := make([]Line, 0, len(totals))
	for _, line := range totals {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].MeasurementUnit < lines[j].MeasurementUnit
	})
	return lines
}

// Render produces the export text: the fixed header followed by one line
// per distinct ingredient.
func Render(lines []Line) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, line := range lines {
		fmt.Fprintf(&b, "%s (%s) - %d\n", line.Name, line.MeasurementUnit, line.Amount)
	}
	return b.String()
}

// Build returns the aggregated lines for the user's cart.
func (s *Service) Build(userID uint) ([]Line, error) {
	items, err := s.repo.CartItems(userID)
	if err != nil {
		return nil, err
	}
	return Aggregate(items), nil
}

// BuildText returns the rendered export for the user's cart. An empty
// cart produces the header only.
func (s *Service) BuildText(userID uint) (string, error) {
	lines, err := s.Build(userID)
	if err != nil {
		return "", err
	}
	return Render(lines), nil
}
