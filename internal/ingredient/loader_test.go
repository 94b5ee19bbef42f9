package ingredient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := "name,measurement_unit\n" +
		"абрикосовое варенье,г\n" +
		"мука,г\n" +
		"молоко,мл\n"

	got, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "абрикосовое варенье", got[0].Name)
	assert.Equal(t, "г", got[0].MeasurementUnit)
	assert.Equal(t, "молоко", got[2].Name)
	assert.Equal(t, "мл", got[2].MeasurementUnit)
}

func TestParseCSV_EmptyFile(t *testing.T) {
	got, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("name,measurement_unit\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCSV_TooFewColumns(t *testing.T) {
	input := "name,measurement_unit\n" +
		"мука\n"

	_, err := ParseCSV(strings.NewReader(input))
	assert.ErrorContains(t, err, "columns")
}
