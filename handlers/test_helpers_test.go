package handlers

import (
	"encoding/json"
	"escritorio_app_go/config"
	"escritorio_app_go/db"
	"escritorio_app_go/models"
	"escritorio_app_go/services"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 6, 20, 10, 30, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique in-memory database per test
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.Session{}))

	db.DB = testDB
	t.Cleanup(func() { db.DB = nil })
	return testDB
}

// setupLedger points the handlers at a fresh ledger seeded in a temp dir
func setupLedger(t *testing.T) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "dados", "processos.xlsx")

	Ledger = services.NewLedger(services.NewSpreadsheetStore(path), services.WithClock(func() time.Time { return fixedNow }))
	services.Storage = services.NewLocalStorage(filepath.Join(dir, "backups"))
	clock = func() time.Time { return fixedNow }

	t.Cleanup(func() {
		Ledger = nil
		services.Storage = nil
		clock = time.Now
	})
	return dir
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

// newServer returns an echo instance with every route registered
func newServer(authEnabled bool) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	RegisterRoutes(e, authEnabled)
	return e
}

type envelope struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message"`
	Error     string                `json:"error"`
	Processos []models.Processo     `json:"processos"`
	Prazos    []models.Prazo        `json:"prazos"`
	Relatorio *models.Relatorio     `json:"relatorio"`
	Status    json.RawMessage       `json:"status"`
	Usuario   *models.PerfilUsuario `json:"usuario"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
