package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

func sampleTable() Table {
	return Table{
		Name:   "orders",
		Header: []string{"id", "customer", "amount"},
		Rows: [][]string{
			{"ORD-2024-009", "Naivas Supermarket Westlands", "KSh 210,000"},
			{"ORD-2024-002", `Duka "Bora"`, "KSh 185,000"},
		},
	}
}

func TestWriteCSVQuotesGroupedAmounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	want := "id,customer,amount\n" +
		"ORD-2024-009,Naivas Supermarket Westlands,\"KSh 210,000\"\n" +
		"ORD-2024-002,\"Duka \"\"Bora\"\"\",\"KSh 185,000\"\n"
	assert.Equal(t, want, buf.String())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "KSh 210,000", records[1][2])
}

func TestWriteCSVEmptyTableHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Table{Header: []string{"id", "status"}}))
	assert.Equal(t, "id,status\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, XLSX, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("orders")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "customer", "amount"}, rows[0])
	assert.Equal(t, "KSh 185,000", rows[2][2])

	styleID, err := f.GetCellStyle("orders", "B1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	assert.True(t, style.Font.Bold)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, CSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, XLSX, f)

	_, err = ParseFormat("pdf")
	assert.True(t, errorx.IsValidation(err))
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "orders_20240116.csv", Filename("orders", CSV, now))
	assert.Equal(t, "sales-reps_20240116.xlsx", Filename("sales-reps", XLSX, now))
	assert.Equal(t, "text/csv; charset=utf-8", CSV.ContentType())
}
