package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Peringkat 12 IPA 1",
		Headers: []string{"Peringkat", "Nama", "Rata-rata"},
		Rows: []map[string]string{
			{"Peringkat": "1", "Nama": "Andi Wijaya", "Rata-rata": "88.3"},
			{"Peringkat": "2", "Nama": "Sari Dewi", "Rata-rata": "78.0"},
		},
		Summary: []string{"Rata-rata kelas: 86.3"},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "Peringkat,Nama,Rata-rata\n1,Andi Wijaya,88.3\n2,Sari Dewi,78.0\n\nRata-rata kelas: 86.3\n", string(out))
}

func TestExportersRequireHeaders(t *testing.T) {
	for _, r := range []Renderer{NewCSVExporter(), NewPDFExporter(), NewXLSXExporter()} {
		_, err := r.Render(Dataset{})
		assert.Error(t, err, r.Extension())
	}
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestXLSXExporterRender(t *testing.T) {
	out, err := NewXLSXExporter().Render(sampleDataset())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	title, err := f.GetCellValue(xlsxSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Peringkat 12 IPA 1", title)

	name, err := f.GetCellValue(xlsxSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", name)

	summary, err := f.GetCellValue(xlsxSheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "Rata-rata kelas: 86.3", summary)
}
