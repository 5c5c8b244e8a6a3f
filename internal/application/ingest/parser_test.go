package ingest_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/retail-dashboard-api/internal/application/ingest"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
)

var testNow = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func newParser() *ingest.Parser {
	return ingest.NewParser(fixedRand(17), func() time.Time { return testNow })
}

func TestParseCSV_ColumnasYConversiones(t *testing.T) {
	csv := "productName,quantity,price,stock,date,category\n" +
		"Rice Bag,45,1200,85,2024-01-15,Food & Beverages\n" +
		"Milk Packet,150,49.50,180,2024-01-15,Food & Beverages\n"

	res, err := newParser().ParseCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 2, res.Rows)
	r := res.Records[1]
	assert.Equal(t, "Milk Packet", r.ProductName)
	assert.Equal(t, 150, r.Quantity)
	assert.True(t, r.Price.Equal(decimal.RequireFromString("49.5")))
	assert.Equal(t, 180, r.Stock)
	assert.Equal(t, "2024-01-15", r.Date)
	assert.Equal(t, "Food & Beverages", r.Category)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, testNow, r.CreatedAt)
}

func TestParseCSV_AliasSinDistinguirMayusculas(t *testing.T) {
	csv := "Product Name, QUANTITY ,Price,Stock\n" +
		"Tea Pack,25,120,15\n"

	res, err := newParser().ParseCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Tea Pack", res.Records[0].ProductName)
	assert.Equal(t, 25, res.Records[0].Quantity)

	res, err = newParser().ParseCSV(strings.NewReader("product,quantity\nSoap,3\n"))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Soap", res.Records[0].ProductName)
}

func TestParseCSV_ValoresPorDefecto(t *testing.T) {
	res, err := newParser().ParseCSV(strings.NewReader("productName,quantity\nGarlic,6\n"))

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	r := res.Records[0]
	assert.Equal(t, 67, r.Stock, "50 + valor aleatorio")
	assert.Equal(t, "2024-03-09", r.Date)
	assert.Equal(t, "General", r.Category)
	assert.True(t, r.Price.IsZero())
}

func TestParseCSV_DescartaFilasInvalidas(t *testing.T) {
	csv := "productName,quantity,price,stock\n" +
		"Cero,0,10,10\n" +
		",5,10,10\n" +
		"Negativo,-2,10,10\n" +
		"Texto,abc,10,10\n" +
		"Valido,2,10,10\n"

	res, err := newParser().ParseCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Valido", res.Records[0].ProductName)
	assert.Equal(t, 5, res.Rows)
	assert.Equal(t, 4, res.Skipped())
}

func TestParseCSV_NumerosConTextoFinal(t *testing.T) {
	csv := "productName,quantity,price,stock\nOil,12 uds,160.75 INR,0\n"

	res, err := newParser().ParseCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 12, res.Records[0].Quantity)
	assert.True(t, res.Records[0].Price.Equal(decimal.RequireFromString("160.75")))
	assert.Equal(t, 0, res.Records[0].Stock, "un cero explícito se respeta")
}

func TestParseCSV_BOMyLatin1(t *testing.T) {
	withBOM := "\xEF\xBB\xBFproductName,quantity\nBread,4\n"
	res, err := newParser().ParseCSV(strings.NewReader(withBOM))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	latin1 := []byte("productName,quantity,category\nCaf\xe9 Molido,3,Bebidas\n")
	res, err = newParser().ParseCSV(bytes.NewReader(latin1))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Café Molido", res.Records[0].ProductName)
}

func TestParseCSV_Vacio(t *testing.T) {
	res, err := newParser().ParseCSV(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestParseCSV_MalFormado(t *testing.T) {
	csv := "productName,quantity\n\"Rice,45\nMilk,\"150\n"

	_, err := newParser().ParseCSV(strings.NewReader(csv))

	assert.ErrorIs(t, err, domain.ErrMalformedFile)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Product Name", "Quantity", "Price", "Stock", "Category"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Rice Bag", 45, 1200, 85, "Food & Beverages"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Sin ventas", 0, 10, 10, "General"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	res, err := newParser().ParseFile("ventas.xlsx", buf)

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Rice Bag", res.Records[0].ProductName)
	assert.Equal(t, 45, res.Records[0].Quantity)
	assert.Equal(t, 85, res.Records[0].Stock)
	assert.Equal(t, 2, res.Rows)
}

func TestParseFile_ExtensionNoSoportada(t *testing.T) {
	_, err := newParser().ParseFile("ventas.pdf", strings.NewReader("x"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
}
