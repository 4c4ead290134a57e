package export

import (
	"bytes"
	"encoding/csv"
	"image/png"
	"testing"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testRows() []domain.ExportRow {
	return []domain.ExportRow{
		{Country: "Brazil", SourceCountry: "Brazil", Year: 2025, MinTemp: 20, MaxTemp: 40, MinPrec: 500, MaxPrec: 1000},
		{Country: "United States", SourceCountry: "United States of America", Year: 2025, MinTemp: 15.5, MaxTemp: 25, MinPrec: 0, MaxPrec: 200},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.ExportHeader, records[0])
	assert.Equal(t, []string{"Brazil", "Brazil", "2025", "20", "40", "500", "1000"}, records[1])
	assert.Equal(t, []string{"United States", "United States of America", "2025", "15.5", "25", "0", "200"}, records[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "country,source_country,year,min_temp,max_temp,min_prec,max_prec\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, 2025, testRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"climate_2025"}, f.GetSheetList())
	rows, err := f.GetRows("climate_2025")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.ExportHeader, rows[0])
	assert.Equal(t, "United States of America", rows[2][1])
	assert.Equal(t, "15.5", rows[2][3])
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "ods", 2025, testRows())
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", ContentType(FormatCSV))
	assert.Contains(t, ContentType(FormatXLSX), "spreadsheetml")
}

func TestWriteLegendPNG(t *testing.T) {
	var buf bytes.Buffer
	mapper := domain.NewColorMapper(domain.RdYlGn{})
	require.NoError(t, WriteLegendPNG(&buf, mapper, LegendWidth, LegendHeight))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
}
