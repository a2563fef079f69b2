package services

import (
	"bytes"
	"errors"
	"escritorio_app_go/models"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet columns, in the order they are written
const (
	ColNumero        = "Numero_Processo"
	ColCliente       = "Cliente"
	ColAdvogado      = "Advogado_Responsavel"
	ColTipo          = "Tipo_Acao"
	ColDataCadastro  = "Data_Cadastro"
	ColDataIntimacao = "Data_Intimacao"
	ColDiasPrazo     = "Dias_Prazo"
	ColStatus        = "Status"
)

// LedgerColumns is the header row of the backing spreadsheet
var LedgerColumns = []string{
	ColNumero,
	ColCliente,
	ColAdvogado,
	ColTipo,
	ColDataCadastro,
	ColDataIntimacao,
	ColDiasPrazo,
	ColStatus,
}

// LedgerSheetName is the sheet written by Save and Encode. Load reads the
// first sheet whatever its name.
const LedgerSheetName = "Processos"

// SpreadsheetStore keeps the ledger in a single xlsx file
type SpreadsheetStore struct {
	path string
}

// NewSpreadsheetStore creates a store backed by the xlsx file at path
func NewSpreadsheetStore(path string) *SpreadsheetStore {
	return &SpreadsheetStore{path: path}
}

// Path returns the backing file location
func (s *SpreadsheetStore) Path() string {
	return s.path
}

// Load reads every row of the backing file
func (s *SpreadsheetStore) Load() LoadResult {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Absent()
		}
		return Corrupt(fmt.Errorf("failed to stat spreadsheet: %w", err))
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return Corrupt(fmt.Errorf("failed to open spreadsheet: %w", err))
	}
	defer f.Close()

	records, err := readFirstSheet(f)
	if err != nil {
		return Corrupt(err)
	}
	return Loaded(records)
}

// DecodeWorkbook reads the records of a workbook held in r, such as a backup
func DecodeWorkbook(r io.Reader) ([]models.Processo, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readFirstSheet(f)
}

func readFirstSheet(f *excelize.File) ([]models.Processo, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return DecodeRows(rows)
}

// Save overwrites the backing file with records. The workbook is written
// to a temporary file next to the target and renamed over it.
func (s *SpreadsheetStore) Save(records []models.Processo) error {
	buf, err := Encode(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".processos-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace spreadsheet: %w", err)
	}
	return nil
}

// Encode builds the ledger workbook in memory
func Encode(records []models.Processo) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LedgerSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(LedgerColumns))
	for i, col := range LedgerColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(LedgerSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			rec.Numero,
			rec.Cliente,
			rec.Advogado,
			rec.Tipo,
			rec.DataCadastro,
			rec.DataIntimacao,
			diasCell(rec),
			rec.Status,
		}
		if err := f.SetSheetRow(LedgerSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(LedgerSheetName, "A1", "H1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(LedgerSheetName, "A", "H", 22); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}

// DecodeRows converts sheet rows (header first) into records. Columns are
// located by header name; blank rows are skipped.
func DecodeRows(rows [][]string) ([]models.Processo, error) {
	records := make([]models.Processo, 0)
	if len(rows) == 0 {
		return records, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range LedgerColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %s", col)
		}
	}

	for i, row := range rows[1:] {
		cell := func(col string) string {
			pos := index[col]
			if pos >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[pos])
		}

		numero := cell(ColNumero)
		if numero == "" {
			continue
		}

		rec := models.Processo{
			Numero:        numero,
			Cliente:       cell(ColCliente),
			Advogado:      cell(ColAdvogado),
			Tipo:          cell(ColTipo),
			DataCadastro:  normalizeCellDate(cell(ColDataCadastro)),
			DataIntimacao: normalizeCellDate(cell(ColDataIntimacao)),
			Status:        cell(ColStatus),
		}

		dias, err := parseDiasPrazo(cell(ColDiasPrazo))
		if err != nil {
			log.Printf("[WARNING] Row %d (processo %s): %v", i+2, numero, err)
			rec.DiasPrazoInvalido = cell(ColDiasPrazo)
		} else {
			rec.DiasPrazo = dias
		}

		records = append(records, rec)
	}
	return records, nil
}

// diasCell is the Dias_Prazo value written for rec. An unparsed cell is
// written back unchanged.
func diasCell(rec models.Processo) interface{} {
	if rec.DiasPrazoInvalido != "" {
		return rec.DiasPrazoInvalido
	}
	return rec.DiasPrazo
}

func parseDiasPrazo(value string) (int, error) {
	if value == "" {
		return models.DefaultDiasPrazo, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid %s value %q", ColDiasPrazo, value)
	}
	return int(f), nil
}

// normalizeCellDate turns an Excel date serial (a date cell typed by hand in
// a spreadsheet editor) into the ledger format. Text is returned unchanged.
func normalizeCellDate(value string) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}
	return FormatDate(t)
}
