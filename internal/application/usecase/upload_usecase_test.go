package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUpload_ReemplazaColeccionYPublica(t *testing.T) {
	f := newFixture(true)
	path := writeTemp(t, "123-ventas.csv", "productName,quantity,price,stock\n"+
		"Rice,45,1200,85\n"+
		"Milk,150,50,180\n"+
		"Vacio,0,10,10\n")

	out, err := f.uploader().ProcessFile("ventas.csv", path)

	require.NoError(t, err)
	assert.Equal(t, 2, out.RecordsProcessed)
	assert.Equal(t, 2, out.TotalRecords)
	require.NotNil(t, out.DashboardStats)
	require.NotNil(t, out.InventoryStats)
	assert.Equal(t, int64(61500), out.DashboardStats.TotalSales)
	assert.Equal(t, int64(83025), out.DashboardStats.ForecastedGrowth)
	assert.Equal(t, 2, f.sales.Len(), "sin mezclar con los datos anteriores")

	assert.Equal(t, []string{ports.EventSalesDataUploaded, ports.EventDashboardUpdate, ports.EventInventoryUpdate}, f.bus.names())
	summary, _ := f.bus.last(ports.EventSalesDataUploaded)
	assert.Equal(t, dto.UploadResult{RecordsProcessed: 2, TotalRecords: 2}, summary)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "el archivo temporal se elimina")
}

func TestUpload_ArchivoMalFormadoConservaDatos(t *testing.T) {
	f := newFixture(true)
	before := f.snapshots.Current()
	path := writeTemp(t, "roto.csv", "productName,quantity\n\"Rice,45\nMilk,\"150\n")

	_, err := f.uploader().ProcessFile("roto.csv", path)

	assert.ErrorIs(t, err, domain.ErrMalformedFile)
	assert.Equal(t, 25, f.sales.Len())
	assert.Equal(t, before, f.snapshots.Current())
	assert.Empty(t, f.bus.names())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpload_SinFilasValidasDejaColeccionVacia(t *testing.T) {
	f := newFixture(true)
	path := writeTemp(t, "vacio.csv", "productName,quantity\n,3\nX,0\n")

	out, err := f.uploader().ProcessFile("vacio.csv", path)

	require.NoError(t, err)
	assert.Zero(t, out.RecordsProcessed)
	assert.Zero(t, f.sales.Len())
	assert.Equal(t, int64(250000), out.DashboardStats.TotalSales, "colección vacía muestra valores de ejemplo")
}
