package handlers

import (
	"bytes"
	"escritorio_app_go/services"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BackupHandler snapshots the ledger to a workbook, stores it and streams
// it back as a download
func BackupHandler(c echo.Context) error {
	buf, err := services.Encode(Ledger.ListAll())
	if err != nil {
		log.Printf("[ERROR] Failed to encode backup: %v", err)
		return respondError(c, http.StatusInternalServerError, "Erro ao gerar backup")
	}
	data := buf.Bytes()

	now := clock()
	key := services.BackupKey(now)
	if services.Storage == nil || !services.Storage.IsConfigured() {
		return respondError(c, http.StatusInternalServerError, "Armazenamento de backups não configurado")
	}
	if _, err := services.Storage.Put(c.Request().Context(), key, bytes.NewReader(data), services.XLSXContentType, int64(len(data))); err != nil {
		log.Printf("[ERROR] Failed to store backup %s: %v", key, err)
		return respondError(c, http.StatusInternalServerError, "Erro ao salvar backup")
	}
	log.Printf("[LEDGER] Backup stored at %s", key)

	setAttachment(c, services.BackupFilename(now))
	return c.Blob(http.StatusOK, services.XLSXContentType, data)
}
