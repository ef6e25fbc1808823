package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Weekly Report",
		Notes:   []string{"Class attendance: 92%"},
		Headers: []string{"ID", "Name", "Attendance (%)"},
		Rows: []map[string]string{
			{"ID": "1", "Name": "Liam Smith", "Attendance (%)": "100"},
			{"ID": "2", "Name": "Emma, Jones", "Attendance (%)": "80"},
		},
		Numeric: map[string]bool{"Attendance (%)": true},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Attendance (%)", lines[0])
	assert.Equal(t, `2,"Emma, Jones",80`, lines[2])

	_, err = NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data := sampleDataset()
	for i := 0; i < 80; i++ {
		data.Rows = append(data.Rows, map[string]string{"ID": "x", "Name": "Filler", "Attendance (%)": "50"})
	}
	out, err := NewPDFExporter().Render(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))

	_, err = NewPDFExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths(sampleDataset())
	sum := 0.0
	for _, w := range widths {
		assert.GreaterOrEqual(t, w, 1.0)
		sum += w
	}
	assert.InDelta(t, pageWidth, sum, 0.001)
}
