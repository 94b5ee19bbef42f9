package ingredient

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	recipemodel "foodgram/recipe-service/internal/model/recipe"
)

// ParseCSV reads two-column "name,measurement_unit" rows, skipping the
// header line. No dedup and no validation beyond column presence; the
// file is trusted reference data.
func ParseCSV(r io.Reader) ([]recipemodel.Ingredient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// header row
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var ingredients []recipemodel.Ingredient
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("csv row has %d columns, want 2", len(row))
		}
		ingredients = append(ingredients, recipemodel.Ingredient{
			Name:            row[0],
			MeasurementUnit: row[1],
		})
	}
	return ingredients, nil
}

// ImportCSV bulk-loads an ingredients file into the store.
func (r *IngredientRepository) ImportCSV(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	ingredients, err := ParseCSV(file)
	if err != nil {
		return 0, err
	}
	if err := r.BulkCreate(ingredients); err != nil {
		return 0, err
	}
	return len(ingredients), nil
}
