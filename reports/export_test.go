package reports

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func testReport() Report {
	orders := []models.Order{order10(), order11()}
	return Report{
		Title:   "Order Statistics",
		Filters: "status=completed",
		Stats:   BuildStatistics(orders),
		Orders:  orders,
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, testReport()))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	var cells []string
	for _, row := range file.Sheets[0].Rows {
		for _, cell := range row.Cells {
			cells = append(cells, cell.String())
		}
	}
	assert.Contains(t, cells, "Order Statistics")
	assert.Contains(t, cells, "Filters: status=completed")
	assert.Contains(t, cells, "30.50")
	assert.Contains(t, cells, "21.25")
	assert.Contains(t, cells, "Cash")
}

func TestWriteXLSXKeepsExactPaymentTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testReport()))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	totals := map[string]string{}
	for _, row := range file.Sheets[0].Rows {
		if len(row.Cells) == 3 && (row.Cells[0].Value == "Card" || row.Cells[0].Value == "Cash") {
			totals[row.Cells[0].Value] = row.Cells[2].Value
		}
	}
	assert.Equal(t, map[string]string{"Card": "20.50", "Cash": "10.00"}, totals)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatPDF, testReport()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "csv", testReport())
	require.Error(t, err)
	assert.Zero(t, buf.Len())

	appErr := utils.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	assert.NoError(t, CheckFormat(FormatXLSX))
	assert.NoError(t, CheckFormat(FormatPDF))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType(FormatPDF))
	assert.Contains(t, ContentType(FormatXLSX), "spreadsheetml")
}
