package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/ingest"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/usecase"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/sqlite"
	apphttp "github.com/sandroescobar/MiamiSmokeShopWebPage/internal/interfaces/http"
)

const sampleExport = "Name,Qty On Hand,Price,Category\nRAZZ LTX BLUE RAZZ ICE,12,$19.99,Nicotine Vape\nZYN COOL MINT 6MG,3,6.49,Tobacco\n"

// buildTestApp arma la API completa sobre SQLite en un directorio temporal.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.EnsureSchema(ctx, db))

	stores := sqlite.NewStoreRepository(db)
	engine := ingest.NewEngine(stores, sqlite.NewCategoryRepository(db), sqlite.NewTxRunner(db), ingest.EngineOptions{AdoptParent: true}, zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		IngestUC: ingest.NewUseCase(engine, ingest.DefaultLoadOptions(), nil, "CigarPOS"),
		StoreUC:  usecase.NewStoreUseCase(stores, sqlite.NewProductInventoryRepository(db)),
		Log:      zerolog.Nop(),
	})
	return app
}

func multipartRequest(t *testing.T, url string, fields map[string]string, csv string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if csv != "" {
		part, err := w.CreateFormFile("file", "export.csv")
		require.NoError(t, err)
		_, err = io.WriteString(part, csv)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request, out any) int {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func createStore(t *testing.T, app *fiber.App, name string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/stores", strings.NewReader(`{"name":"`+name+`"}`))
	req.Header.Set("Content-Type", "application/json")
	return do(t, app, req, nil)
}

func TestStores_CreateAndList(t *testing.T) {
	app := buildTestApp(t)

	assert.Equal(t, fiber.StatusCreated, createStore(t, app, "CALLE 8"))
	assert.Equal(t, fiber.StatusConflict, createStore(t, app, "CALLE 8"))

	var list dto.StoreListResponse
	status := do(t, app, httptest.NewRequest(http.MethodGet, "/api/stores", nil), &list)
	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "CALLE 8", list.Items[0].Name)
}

func TestIngestion_RunAndInventory(t *testing.T) {
	app := buildTestApp(t)
	require.Equal(t, fiber.StatusCreated, createStore(t, app, "CALLE 8"))

	var report dto.RunReport
	status := do(t, app, multipartRequest(t, "/api/ingestions", map[string]string{"store": "CALLE 8"}, sampleExport), &report)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "CALLE 8", report.Store)
	assert.Equal(t, "CigarPOS", report.Supplier)
	assert.EqualValues(t, 2, report.ProductsUpserted)
	assert.EqualValues(t, 2, report.InventoryUpserted)

	var inv dto.StoreInventoryResponse
	status = do(t, app, httptest.NewRequest(http.MethodGet, "/api/stores/CALLE%208/inventory?limit=1", nil), &inv)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, inv.Page.Total)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "RAZ LTX 25K BLUE RAZZ ICE", inv.Items[0].Name)
	assert.Equal(t, "RAZ LTX 25K", inv.Items[0].Category)
}

func TestIngestion_Errors(t *testing.T) {
	app := buildTestApp(t)
	require.Equal(t, fiber.StatusCreated, createStore(t, app, "MKT"))

	tests := []struct {
		name   string
		fields map[string]string
		csv    string
		status int
		code   string
	}{
		{"sin tienda", map[string]string{}, sampleExport, fiber.StatusBadRequest, "VALIDATION"},
		{"sin archivo", map[string]string{"store": "MKT"}, "", fiber.StatusBadRequest, "INVALID_FILE"},
		{"tienda desconocida", map[string]string{"store": "NOPE"}, sampleExport, fiber.StatusNotFound, "STORE_NOT_FOUND"},
		{"sin columna de nombre", map[string]string{"store": "MKT"}, "SKU,Qty\n1,2\n", fiber.StatusBadRequest, "MISSING_NAME_COLUMN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out dto.ErrorResponse
			status := do(t, app, multipartRequest(t, "/api/ingestions", tt.fields, tt.csv), &out)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, out.Code)
		})
	}
}

func TestIngestion_Preview(t *testing.T) {
	app := buildTestApp(t)

	var out dto.PreviewResponse
	status := do(t, app, multipartRequest(t, "/api/ingestions/preview", nil, sampleExport), &out)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, out.Records, 2)
	assert.Equal(t, "RAZ LTX 25K", out.Records[0].Subcategory)
	assert.Equal(t, "TOBACCO PRODUCTS", out.Records[1].ParentCategory)
}

func TestInventory_UnknownStore(t *testing.T) {
	app := buildTestApp(t)
	var out dto.ErrorResponse
	status := do(t, app, httptest.NewRequest(http.MethodGet, "/api/stores/NOPE/inventory", nil), &out)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "STORE_NOT_FOUND", out.Code)
}

func TestStoreLocks_TryLock(t *testing.T) {
	locks := apphttp.NewStoreLocks()

	unlock, ok := locks.TryLock("calle 8")
	require.True(t, ok)

	_, ok = locks.TryLock("CALLE  8")
	assert.False(t, ok, "misma tienda con otro formato")

	other, ok := locks.TryLock("MKT")
	require.True(t, ok)
	other()

	unlock()
	again, ok := locks.TryLock("CALLE 8")
	require.True(t, ok)
	again()
}
