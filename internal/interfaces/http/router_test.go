package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/infrastructure/storage"
	apphttp "github.com/tu-usuario/bodega-api/internal/interfaces/http"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubReportGen evita generar un PDF real en los tests de rutas.
type stubReportGen struct{}

func (stubReportGen) GenerateInventoryReport(_ context.Context, _ *entity.WineryData, _ time.Time) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// buildTestApp monta la API completa sobre un fichero temporal, con la misma
// cadena de dependencias que cmd/api.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "bodega.json"), logger.Nop())
	uc, err := inventory.NewUseCase(store, logger.Nop())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC: uc,
		DashboardUC: analytics.NewDashboardUseCase(uc),
		ReportGen:   stubReportGen{},
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// crea una partida de botellas y devuelve su id
func createFinished(t *testing.T, app *fiber.App, name string, quantity float64) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/items", map[string]any{
		"type": "finished", "name": name, "winery": "Bodega del Valle",
		"vintage": 2021, "varietal": "Malbec", "region": "Mendoza",
		"format": "750ml", "location": "A-1", "quantity": quantity,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	item := body["item"].(map[string]any)
	return item["id"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_UvaConEntradaImplicita(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/items", map[string]any{
		"type": "grape", "variety": "Garnacha", "vineyard": "Cuartel 2",
		"harvest_date": "2025-03-12", "weight": 1200.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	item := body["item"].(map[string]any)
	assert.Regexp(t, `^grape-Gar-\d+$`, item["id"])
	assert.Empty(t, body["warning"], "con el disco sano no hay aviso")

	// el alta asienta su entrada en el libro
	resp = doJSON(t, app, http.MethodGet, "/api/movements", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	movs := decodeBody(t, resp)
	require.EqualValues(t, 1, movs["total"])
	first := movs["movements"].([]any)[0].(map[string]any)
	assert.Equal(t, "Alta inicial", first["reason"])
	assert.Equal(t, "sistema", first["user"])
	assert.Equal(t, "IN", first["type"])
}

func TestCreateItem_FamiliaDesconocida(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/items", map[string]any{"type": "cerveza", "name": "no"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
}

func TestListItems_FiltraPorFamilia(t *testing.T) {
	app := buildTestApp(t)
	createFinished(t, app, "Gran Reserva", 24)

	resp := doJSON(t, app, http.MethodGet, "/api/items?type=finished", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "finished", body["type"])
	assert.Len(t, body["items"].([]any), 1)

	resp = doJSON(t, app, http.MethodGet, "/api/items?type=grape", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody(t, resp)["items"])

	resp = doJSON(t, app, http.MethodGet, "/api/items?type=barrica", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteItem_ConservaElLibro(t *testing.T) {
	app := buildTestApp(t)
	id := createFinished(t, app, "Crianza 2020", 12)

	resp := doJSON(t, app, http.MethodDelete, "/api/items/"+id+"?type=finished", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// la colección queda vacía pero el asiento de alta sobrevive
	resp = doJSON(t, app, http.MethodGet, "/api/items?type=finished", nil)
	assert.Empty(t, decodeBody(t, resp)["items"])

	resp = doJSON(t, app, http.MethodGet, "/api/movements?item_id="+id, nil)
	assert.EqualValues(t, 1, decodeBody(t, resp)["total"])
}

func TestDeleteItem_NoExiste(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodDelete, "/api/items/fantasma?type=finished", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestAdjustStock_RecortaACero(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/items", map[string]any{
		"type": "material", "name": "Cápsulas", "supplier": "Insumos SA", "quantity": 5.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["item"].(map[string]any)["id"].(string)

	// un descuento mayor que el stock se recorta, no se rechaza
	resp = doJSON(t, app, http.MethodPost, "/api/items/"+id+"/adjust", map[string]any{
		"kind": "material", "delta": -20.0, "user": "Aurelia",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mov := decodeBody(t, resp)["movement"].(map[string]any)
	assert.Equal(t, "OUT", mov["type"])
	assert.EqualValues(t, 20, mov["quantity"], "el asiento registra la magnitud pedida")

	resp = doJSON(t, app, http.MethodGet, "/api/items?type=material", nil)
	item := decodeBody(t, resp)["items"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 0, item["quantity"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	id := createFinished(t, app, "Gran Reserva", 24)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"item_id": id, "type": "OUT", "quantity": 10.0, "reason": "Venta", "user": "Aurelia",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decodeBody(t, resp)["movement"].(map[string]any)
	assert.Equal(t, "Gran Reserva", mov["itemName"])

	resp = doJSON(t, app, http.MethodGet, "/api/items?type=finished", nil)
	item := decodeBody(t, resp)["items"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 14, item["quantity"])
}

func TestRegisterMovement_StockInsuficiente(t *testing.T) {
	app := buildTestApp(t)
	id := createFinished(t, app, "Gran Reserva", 5)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"item_id": id, "type": "OUT", "quantity": 100.0, "reason": "Venta", "user": "Aurelia",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeBody(t, resp)["code"])

	// rechazo entero: el stock no se movió un gramo
	resp = doJSON(t, app, http.MethodGet, "/api/items?type=finished", nil)
	item := decodeBody(t, resp)["items"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 5, item["quantity"])
}

func TestRegisterMovement_ItemDesconocido(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"item_id": "fantasma", "type": "IN", "quantity": 1.0, "reason": "Compra", "user": "Aurelia",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestMovementReasons_Catalogo(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/movements/reasons?type=OUT", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["reasons"], "Merma")

	resp = doJSON(t, app, http.MethodGet, "/api/movements/reasons", nil)
	body = decodeBody(t, resp)
	assert.Contains(t, body["in"], "Compra")
	assert.Contains(t, body["out"], "Venta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot (export / import)
// ──────────────────────────────────────────────────────────────────────────────

func TestExportImport_Ciclo(t *testing.T) {
	app := buildTestApp(t)
	createFinished(t, app, "Gran Reserva", 24)

	resp := doJSON(t, app, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "bodega_")
	blob, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	// el blob exportado se puede reimportar sobre otra bodega
	other := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/import?confirm=true", bytes.NewReader(blob))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	importResp, err := other.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, importResp.StatusCode)
	importResp.Body.Close()

	resp = doJSON(t, other, http.MethodGet, "/api/items?type=finished", nil)
	assert.Len(t, decodeBody(t, resp)["items"].([]any), 1)
}

func TestImport_SinConfirmacion(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/import", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CONFIRM_REQUIRED", decodeBody(t, resp)["code"])
}

func TestImport_BlobMalformado(t *testing.T) {
	app := buildTestApp(t)
	createFinished(t, app, "Intocable", 7)

	req := httptest.NewRequest(http.MethodPost, "/api/import?confirm=true", strings.NewReader("{{basura"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_FORMAT", decodeBody(t, resp)["code"])

	// todo-o-nada: la bodega anterior sigue intacta
	resp = doJSON(t, app, http.MethodGet, "/api/items?type=finished", nil)
	assert.Len(t, decodeBody(t, resp)["items"].([]any), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard e informes
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary(t *testing.T) {
	app := buildTestApp(t)
	createFinished(t, app, "Gran Reserva", 24)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	finished := body["finished"].(map[string]any)
	assert.EqualValues(t, 1, finished["count"])
	assert.EqualValues(t, 24, finished["total_stock"])
}

func TestInventoryReportPDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/reports/inventory", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
