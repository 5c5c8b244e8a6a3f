package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/retail-dashboard-api/internal/application/dto"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ingest"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/memory"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/realtime"
	apphttp "github.com/jhoicas/retail-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return testNow }

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

type testEnv struct {
	app       *fiber.App
	hub       *realtime.Hub
	sales     *memory.SalesStore
	uploadDir string
}

// envelope respuesta {success, message, data} con data tipado.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

// newTestEnv arma la aplicación completa sobre almacenes en memoria con los
// 25 productos de ejemplo.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	log := logger.Nop()
	hub := realtime.NewHub(32, log)
	t.Cleanup(hub.Close)

	sales := memory.NewSalesStore(memory.SampleSalesRecords(testNow))
	settings := memory.NewSettingsStore()
	snapshots := usecase.NewSnapshotService(sales, hub, clock, log)
	uploadDir := t.TempDir()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Snapshots:  snapshots,
		InsightsUC: usecase.NewInsightsUseCase(snapshots, fixedRand(0), clock),
		UploadUC:   usecase.NewUploadUseCase(ingest.NewParser(fixedRand(0), clock), snapshots, log),
		ProductUC:  usecase.NewProductUseCase(memory.NewProductStore(), snapshots, clock),
		BusinessUC: usecase.NewBusinessUseCase(memory.NewBusinessStore(), hub, clock),
		SettingsUC: usecase.NewSettingsUseCase(settings, hub, clock),
		ReportUC:   usecase.NewReportUseCase(snapshots, settings, pdf.NewMarotoPDFGenerator(), clock),
		Hub:        hub,
		UploadDir:  uploadDir,
		Log:        log,
	})
	return testEnv{app: app, hub: hub, sales: sales, uploadDir: uploadDir}
}

func (e testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, e testEnv, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.do(t, req)
}

func decode[T any](t *testing.T, resp *http.Response) envelope[T] {
	t.Helper()
	defer resp.Body.Close()
	var out envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func multipartUpload(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// events drena el buffer del suscriptor y devuelve los nombres de evento.
func events(t *testing.T, sub *realtime.Subscriber) []string {
	t.Helper()
	var names []string
	for {
		select {
		case frame := <-sub.Messages():
			var msg struct {
				Event string `json:"event"`
			}
			require.NoError(t, json.Unmarshal(frame, &msg))
			names = append(names, msg.Event)
		default:
			return names
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard(t *testing.T) {
	e := newTestEnv(t)
	want := analytics.Compute(memory.SampleSalesRecords(testNow), testNow).Dashboard

	resp := doJSON(t, e, http.MethodGet, "/api/dashboard", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardSnapshot](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, want.TotalSales, out.Data.TotalSales)
	assert.Equal(t, want.ForecastedGrowth, out.Data.ForecastedGrowth)
	require.NotNil(t, out.Data.BestSellingProduct)
	assert.Equal(t, want.BestSellingProduct.Name, out.Data.BestSellingProduct.Name)
	assert.Len(t, out.Data.TopProducts, 5)
}

func TestGetInventoryYVentas(t *testing.T) {
	e := newTestEnv(t)

	inv := decode[dto.InventorySnapshot](t, doJSON(t, e, http.MethodGet, "/api/inventory", ""))
	assert.Equal(t, 25, inv.Data.TotalProducts)
	assert.Len(t, inv.Data.Products, 25)

	sales := decode[[]dto.SalesRecordDTO](t, doJSON(t, e, http.MethodGet, "/api/sales", ""))
	assert.Len(t, sales.Data, 25)
	assert.Equal(t, "Rice Bag (Premium Basmati)", sales.Data[0].ProductName)
}

func TestListInventoryProducts_Paginacion(t *testing.T) {
	e := newTestEnv(t)

	resp := doJSON(t, e, http.MethodGet, "/api/inventory/products?limit=3&page=2&sort=name", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.InventoryPage](t, resp)
	assert.Len(t, out.Data.Products, 3)
	assert.Equal(t, 25, out.Data.Page.Total)
	assert.Equal(t, 2, out.Data.Page.Page)
	assert.Equal(t, 9, out.Data.Page.TotalPages)
}

func TestListInventoryProducts_OrdenInvalido(t *testing.T) {
	e := newTestEnv(t)

	resp := doJSON(t, e, http.MethodGet, "/api/inventory/products?sort=random", "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, decode[any](t, resp).Success)
}

func TestVistasPaginadas_PaginaEnorme(t *testing.T) {
	e := newTestEnv(t)

	for _, path := range []string{
		"/api/inventory/products?page=9223372036854775807&limit=100",
		"/api/alerts?page=9223372036854775807&limit=100",
	} {
		resp := doJSON(t, e, http.MethodGet, path, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.True(t, decode[any](t, resp).Success, path)
	}

	out := decode[dto.InventoryPage](t, doJSON(t, e, http.MethodGet, "/api/inventory/products?page=9223372036854775807", ""))
	assert.Empty(t, out.Data.Products)
	assert.Equal(t, 25, out.Data.Page.Total)
}

func TestListAlerts(t *testing.T) {
	e := newTestEnv(t)

	ok := doJSON(t, e, http.MethodGet, "/api/alerts?type=low-stock", "")
	assert.Equal(t, fiber.StatusOK, ok.StatusCode)

	bad := doJSON(t, e, http.MethodGet, "/api/alerts?type=urgent", "")
	assert.Equal(t, fiber.StatusBadRequest, bad.StatusCode)
}

func TestForecastYAnalisis(t *testing.T) {
	e := newTestEnv(t)

	fc := decode[dto.ForecastDTO](t, doJSON(t, e, http.MethodGet, "/api/forecast", ""))
	assert.True(t, fc.Success)
	assert.Len(t, fc.Data.DemandForecast, 5)

	an := doJSON(t, e, http.MethodGet, "/api/analytics/sales", "")
	assert.Equal(t, fiber.StatusOK, an.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras y eventos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_PublicaEventos(t *testing.T) {
	e := newTestEnv(t)
	sub := e.hub.Subscribe()

	resp := doJSON(t, e, http.MethodPost, "/api/products",
		`{"productName":"Mango Box","category":"Food & Beverages","price":250,"stock":40,"quantity":12}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Mango Box", out.Data.ProductName)
	assert.Equal(t, 26, e.sales.Len())
	assert.Equal(t, []string{ports.EventProductAdded, ports.EventDashboardUpdate, ports.EventInventoryUpdate}, events(t, sub))

	list := decode[[]dto.ProductResponse](t, doJSON(t, e, http.MethodGet, "/api/products", ""))
	assert.Len(t, list.Data, 1)
}

func TestCreateProduct_CuerpoInvalido(t *testing.T) {
	e := newTestEnv(t)

	resp := doJSON(t, e, http.MethodPost, "/api/products", `{"productName":`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBusiness(t *testing.T) {
	e := newTestEnv(t)

	missing := doJSON(t, e, http.MethodGet, "/api/business", "")
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)

	invalid := doJSON(t, e, http.MethodPost, "/api/business", `{"businessType":"grocery"}`)
	assert.Equal(t, fiber.StatusBadRequest, invalid.StatusCode)

	sub := e.hub.Subscribe()
	saved := doJSON(t, e, http.MethodPost, "/api/business", `{"businessName":"Fresh Mart","businessType":"grocery"}`)
	assert.Equal(t, fiber.StatusOK, saved.StatusCode)
	assert.Equal(t, []string{ports.EventBusinessUpdate}, events(t, sub))

	got := decode[dto.BusinessResponse](t, doJSON(t, e, http.MethodGet, "/api/business", ""))
	assert.Equal(t, "Fresh Mart", got.Data.BusinessName)
}

func TestSettings(t *testing.T) {
	e := newTestEnv(t)

	cur := decode[dto.SettingsDTO](t, doJSON(t, e, http.MethodGet, "/api/settings", ""))
	require.True(t, cur.Success)
	assert.Equal(t, "Fresh Mart Grocery Store", cur.Data.Business.StoreName)

	next := cur.Data
	next.Inventory.LeadTime = 3
	body, err := json.Marshal(next)
	require.NoError(t, err)
	updated := decode[dto.SettingsDTO](t, doJSON(t, e, http.MethodPut, "/api/settings", string(body)))
	assert.Equal(t, 3, updated.Data.Inventory.LeadTime)

	next.Inventory.StockValuation = "RANDOM"
	body, err = json.Marshal(next)
	require.NoError(t, err)
	bad := doJSON(t, e, http.MethodPut, "/api/settings", string(body))
	assert.Equal(t, fiber.StatusBadRequest, bad.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga de archivos
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_ReemplazaRegistros(t *testing.T) {
	e := newTestEnv(t)
	sub := e.hub.Subscribe()
	csv := "productName,quantity,price,stock,category\n" +
		"Rice,45,1200,85,Food\n" +
		"Milk,150,50,180,Food\n" +
		",10,5,5,Food\n"

	resp := e.do(t, multipartUpload(t, "csvFile", "ventas.csv", csv))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.UploadResult](t, resp)
	assert.Equal(t, "Successfully processed 2 records", out.Message)
	assert.Equal(t, 2, out.Data.RecordsProcessed)
	require.NotNil(t, out.Data.DashboardStats)
	assert.Equal(t, int64(61500), out.Data.DashboardStats.TotalSales)
	assert.Equal(t, int64(83025), out.Data.DashboardStats.ForecastedGrowth)
	assert.Equal(t, 2, e.sales.Len())
	assert.Equal(t, []string{ports.EventSalesDataUploaded, ports.EventDashboardUpdate, ports.EventInventoryUpdate}, events(t, sub))

	left, err := os.ReadDir(e.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, left, "el archivo temporal se elimina")
}

func TestUpload_SinArchivo(t *testing.T) {
	e := newTestEnv(t)

	resp := doJSON(t, e, http.MethodPost, "/api/upload-csv", "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[any](t, resp)
	assert.False(t, out.Success)
	assert.Equal(t, "No file uploaded", out.Message)
}

func TestUpload_TipoNoSoportado(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, multipartUpload(t, "csvFile", "ventas.pdf", "%PDF-1.4"))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[any](t, resp)
	assert.Equal(t, "Error processing CSV file", out.Message)
	assert.NotEmpty(t, out.Error)
	assert.Equal(t, 25, e.sales.Len(), "los datos anteriores quedan intactos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte y tiempo real
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryReport(t *testing.T) {
	e := newTestEnv(t)

	resp := doJSON(t, e, http.MethodGet, "/api/reports/inventory", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestWebSocket_SinUpgrade(t *testing.T) {
	e := newTestEnv(t)

	resp := doJSON(t, e, http.MethodGet, "/ws", "")

	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

// readEvent lee una trama del socket y devuelve su nombre de evento.
func readEvent(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg struct {
		Event string `json:"event"`
	}
	require.NoError(t, json.Unmarshal(frame, &msg))
	return msg.Event
}

func TestWebSocket_EstadoInicialYEventos(t *testing.T) {
	e := newTestEnv(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = e.app.Listener(ln) }()
	t.Cleanup(func() { _ = e.app.Shutdown() })

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, ports.EventDashboardUpdate, readEvent(t, conn))
	assert.Equal(t, ports.EventInventoryUpdate, readEvent(t, conn))
	assert.Equal(t, 1, e.hub.Count())

	resp := doJSON(t, e, http.MethodPost, "/api/business", `{"businessName":"Fresh Mart"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, ports.EventBusinessUpdate, readEvent(t, conn))
}
