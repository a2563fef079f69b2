package handlers

import (
	"errors"
	"escritorio_app_go/models"
	"escritorio_app_go/services"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProcessosHandler(t *testing.T) {
	setupLedger(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/processos", nil)
	require.NoError(t, ListProcessosHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	require.Len(t, body.Processos, 2)
	assert.Equal(t, "001/2025", body.Processos[0].Numero)
	assert.Equal(t, "002/2025", body.Processos[1].Numero)
}

func TestCreateProcessoHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "Success",
			body:       `{"numero":"003/2025","cliente":"Maria","advogado":"Dr. Silva","tipo":"Cível","dataIntimacao":"2025-06-18","diasPrazo":10}`,
			wantStatus: http.StatusOK,
			wantMsg:    "Processo 003/2025 adicionado com sucesso.",
		},
		{
			name:       "Duplicate",
			body:       `{"numero":"001/2025","cliente":"Outro"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Processo 001/2025 já existe na base de dados.",
		},
		{
			name:       "Missing number",
			body:       `{"cliente":"Maria"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid date",
			body:       `{"numero":"004/2025","dataIntimacao":"18/06/2025"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed JSON",
			body:       `{"numero":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLedger(t)

			_, c, rec := setupEcho(http.MethodPost, "/api/processos", strings.NewReader(tt.body))
			require.NoError(t, CreateProcessoHandler(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantStatus == http.StatusOK, body.Success)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantMsg, body.Message)
			} else {
				assert.NotEmpty(t, body.Error)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, body.Error)
				}
			}
		})
	}
}

func TestCreateProcessoHandlerDefaultsAndSanitizes(t *testing.T) {
	setupLedger(t)

	_, c, rec := setupEcho(http.MethodPost, "/api/processos",
		strings.NewReader(`{"numero":"005/2025","cliente":"<script>x</script>Ana <b>Lima</b>"}`))
	require.NoError(t, CreateProcessoHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	proc, err := Ledger.Get("005/2025")
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", proc.Cliente)
	assert.Equal(t, "2025-06-20", proc.DataCadastro)
	assert.Equal(t, "2025-06-20", proc.DataIntimacao)
	assert.Equal(t, 15, proc.DiasPrazo)
	assert.Equal(t, "Ativo", proc.Status)
}

func TestUpdateProcessoHandler(t *testing.T) {
	t.Run("Success with encoded number", func(t *testing.T) {
		setupLedger(t)

		_, c, rec := setupEcho(http.MethodPut, "/", strings.NewReader(`{"status":"Arquivado","diasPrazo":30}`))
		c.SetParamNames("numero")
		c.SetParamValues("001%2F2025")

		require.NoError(t, UpdateProcessoHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Processo 001/2025 atualizado com sucesso.", decode(t, rec).Message)

		proc, err := Ledger.Get("001/2025")
		require.NoError(t, err)
		assert.Equal(t, "Arquivado", proc.Status)
		assert.Equal(t, 30, proc.DiasPrazo)
		assert.Equal(t, "Cliente Exemplo 1", proc.Cliente)
	})

	t.Run("Not found", func(t *testing.T) {
		setupLedger(t)

		_, c, rec := setupEcho(http.MethodPut, "/", strings.NewReader(`{"status":"Arquivado"}`))
		c.SetParamNames("numero")
		c.SetParamValues("999%2F2025")

		require.NoError(t, UpdateProcessoHandler(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "Processo 999/2025 não encontrado.", body.Error)
	})

	t.Run("Not found with an invalid date", func(t *testing.T) {
		setupLedger(t)

		_, c, rec := setupEcho(http.MethodPut, "/", strings.NewReader(`{"dataIntimacao":"ontem"}`))
		c.SetParamNames("numero")
		c.SetParamValues("999%2F2025")

		require.NoError(t, UpdateProcessoHandler(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Processo 999/2025 não encontrado.", decode(t, rec).Error)
	})

	t.Run("Invalid date", func(t *testing.T) {
		setupLedger(t)

		_, c, rec := setupEcho(http.MethodPut, "/", strings.NewReader(`{"dataIntimacao":"ontem"}`))
		c.SetParamNames("numero")
		c.SetParamValues("001%2F2025")

		require.NoError(t, UpdateProcessoHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// unwritableStore loads fine but cannot save
type unwritableStore struct{}

func (unwritableStore) Load() services.LoadResult {
	return services.Loaded([]models.Processo{{Numero: "001/2025", Cliente: "Maria"}})
}

func (unwritableStore) Save(records []models.Processo) error {
	return errors.New("failed to replace spreadsheet: rename /srv/dados/processos.xlsx: permission denied")
}

func TestProcessoHandlersHideStorageErrors(t *testing.T) {
	setupLedger(t)
	Ledger = services.NewLedger(unwritableStore{})

	tests := []struct {
		name    string
		method  string
		body    string
		handler func(c echo.Context) error
	}{
		{"Create", http.MethodPost, `{"numero":"002/2025"}`, CreateProcessoHandler},
		{"Update", http.MethodPut, `{"status":"Arquivado"}`, UpdateProcessoHandler},
		{"Delete", http.MethodDelete, "", DeleteProcessoHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			_, c, rec := setupEcho(tt.method, "/", body)
			c.SetParamNames("numero")
			c.SetParamValues("001%2F2025")

			require.NoError(t, tt.handler(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, "Erro ao salvar a base de dados", resp.Error)
			assert.NotContains(t, rec.Body.String(), "/srv/dados")
		})
	}
}

func TestDeleteProcessoHandler(t *testing.T) {
	setupLedger(t)

	_, c, rec := setupEcho(http.MethodDelete, "/", nil)
	c.SetParamNames("numero")
	c.SetParamValues("002%2F2025")

	require.NoError(t, DeleteProcessoHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processo 002/2025 removido com sucesso.", decode(t, rec).Message)
	assert.Equal(t, 1, Ledger.Len())

	_, c, rec = setupEcho(http.MethodDelete, "/", nil)
	c.SetParamNames("numero")
	c.SetParamValues("002%2F2025")

	require.NoError(t, DeleteProcessoHandler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuscarProcessosHandler(t *testing.T) {
	tests := []struct {
		termo string
		want  []string
	}{
		{"", []string{"001/2025", "002/2025"}},
		{"santos", []string{"002/2025"}},
		{"CÍVEL", []string{"001/2025"}},
		{"001", []string{"001/2025"}},
		{"nada", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.termo, func(t *testing.T) {
			setupLedger(t)

			_, c, rec := setupEcho(http.MethodGet, "/api/buscar?termo="+url.QueryEscape(tt.termo), nil)
			require.NoError(t, BuscarProcessosHandler(c))
			require.Equal(t, http.StatusOK, rec.Code)

			got := []string{}
			for _, p := range decode(t, rec).Processos {
				got = append(got, p.Numero)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessoRoutes(t *testing.T) {
	setupLedger(t)
	e := newServer(false)

	req := httptest.NewRequest(http.MethodPut, "/api/processos/001%2F2025", strings.NewReader(`{"cliente":"Novo Nome"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	proc, err := Ledger.Get("001/2025")
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", proc.Cliente)

	req = httptest.NewRequest(http.MethodDelete, "/api/processos/001%2F2025", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, Ledger.Len())
}
