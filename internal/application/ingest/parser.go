// Package ingest convierte archivos de ventas (CSV o XLSX) en registros.
//
// Reglas por fila:
//   - columnas reconocidas sin distinguir mayúsculas: productName | Product Name | product,
//     quantity, price, stock, date, category;
//   - quantity y stock toman el entero inicial del texto, price el decimal inicial;
//   - stock ausente o ilegible recibe un valor aleatorio en [50, 250);
//   - date vacía es la fecha de hoy (YYYY-MM-DD), category vacía es "General";
//   - se descartan las filas sin nombre o con quantity ≤ 0.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/domain"
	"github.com/jhoicas/retail-dashboard-api/internal/domain/entity"
)

const (
	defaultCategory   = "General"
	stockFallbackMin  = 50
	stockFallbackSpan = 200
	sniffBytes        = 4096
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type field int

const (
	fieldName field = iota
	fieldQuantity
	fieldPrice
	fieldStock
	fieldDate
	fieldCategory
	fieldCount
)

// aliases por campo, en orden de prioridad.
var aliases = [fieldCount][]string{
	fieldName:     {"productname", "product name", "product"},
	fieldQuantity: {"quantity"},
	fieldPrice:    {"price"},
	fieldStock:    {"stock"},
	fieldDate:     {"date"},
	fieldCategory: {"category"},
}

var (
	leadingInt     = regexp.MustCompile(`^[+-]?\d+`)
	leadingDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Result registros aceptados y filas leídas (sin contar la cabecera).
type Result struct {
	Records []entity.SalesRecord
	Rows    int
}

// Skipped filas descartadas.
func (r Result) Skipped() int { return r.Rows - len(r.Records) }

// Parser convierte filas en SalesRecord. No es seguro para uso concurrente si
// la fuente aleatoria no lo es.
type Parser struct {
	rnd   ports.RandomSource
	now   func() time.Time
	newID func() string
}

// NewParser construye el parser. now fija la fecha por defecto y CreatedAt.
func NewParser(rnd ports.RandomSource, now func() time.Time) *Parser {
	return &Parser{rnd: rnd, now: now, newID: uuid.NewString}
}

// ParseFile elige el formato por la extensión del nombre original.
func (p *Parser) ParseFile(filename string, r io.Reader) (Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt", "":
		return p.ParseCSV(r)
	case ".xlsx":
		return p.ParseXLSX(r)
	default:
		return Result{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, filepath.Ext(filename))
	}
}

// ParseCSV lee un CSV con cabecera. Acepta BOM UTF-8 y archivos en ISO-8859-1.
func (p *Parser) ParseCSV(r io.Reader) (Result, error) {
	cr := csv.NewReader(decodeText(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Result{Records: []entity.SalesRecord{}}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("%w: cabecera: %v", domain.ErrMalformedFile, err)
	}
	m := newRowMapper(header)

	res := Result{Records: make([]entity.SalesRecord, 0)}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", domain.ErrMalformedFile, err)
		}
		res.Rows++
		if rec, ok := p.toRecord(m, row); ok {
			res.Records = append(res.Records, rec)
		}
	}
	return res, nil
}

// ParseXLSX lee la primera hoja de un libro Excel; la primera fila es la cabecera.
func (p *Parser) ParseXLSX(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: xlsx: %v", domain.ErrMalformedFile, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Result{}, fmt.Errorf("%w: xlsx: %v", domain.ErrMalformedFile, err)
	}
	res := Result{Records: make([]entity.SalesRecord, 0)}
	if len(rows) == 0 {
		return res, nil
	}
	m := newRowMapper(rows[0])
	for _, row := range rows[1:] {
		res.Rows++
		if rec, ok := p.toRecord(m, row); ok {
			res.Records = append(res.Records, rec)
		}
	}
	return res, nil
}

// ── Filas ─────────────────────────────────────────────────────────────────────

// rowMapper índices de columna por campo, en orden de prioridad de alias.
type rowMapper [fieldCount][]int

func newRowMapper(header []string) rowMapper {
	var m rowMapper
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	for f := field(0); f < fieldCount; f++ {
		for _, alias := range aliases[f] {
			for i, h := range normalized {
				if h == alias {
					m[f] = append(m[f], i)
				}
			}
		}
	}
	return m
}

// value primer valor no vacío del campo.
func (m rowMapper) value(row []string, f field) string {
	for _, i := range m[f] {
		if i < len(row) {
			if v := strings.TrimSpace(row[i]); v != "" {
				return v
			}
		}
	}
	return ""
}

func (p *Parser) toRecord(m rowMapper, row []string) (entity.SalesRecord, bool) {
	name := m.value(row, fieldName)
	quantity, _ := parseLeadingInt(m.value(row, fieldQuantity))
	if name == "" || quantity <= 0 {
		return entity.SalesRecord{}, false
	}

	now := p.now()
	stock, ok := parseLeadingInt(m.value(row, fieldStock))
	if !ok {
		stock = stockFallbackMin + p.rnd.IntN(stockFallbackSpan)
	}
	date := m.value(row, fieldDate)
	if date == "" {
		date = now.Format("2006-01-02")
	}
	category := m.value(row, fieldCategory)
	if category == "" {
		category = defaultCategory
	}

	return entity.SalesRecord{
		ID:          p.newID(),
		ProductName: name,
		Quantity:    quantity,
		Price:       parseLeadingDecimal(m.value(row, fieldPrice)),
		Stock:       max(0, stock),
		Category:    category,
		Date:        date,
		CreatedAt:   now,
	}, true
}

// parseLeadingInt entero al inicio del texto ("12 uds" → 12). false si no hay dígitos.
func parseLeadingInt(s string) (int, bool) {
	digits := leadingInt.FindString(s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseLeadingDecimal decimal al inicio del texto; cero si no hay número.
func parseLeadingDecimal(s string) decimal.Decimal {
	num := leadingDecimal.FindString(s)
	if num == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ── Codificación ──────────────────────────────────────────────────────────────

// decodeText quita el BOM UTF-8 y, si el comienzo del archivo no es UTF-8
// válido, lo decodifica como ISO-8859-1.
func decodeText(r io.Reader) io.Reader {
	br := bufio.NewReaderSize(r, sniffBytes)
	head, _ := br.Peek(sniffBytes)
	if bytes.HasPrefix(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		return br
	}
	if !validUTF8Prefix(head) {
		return transform.NewReader(br, charmap.ISO8859_1.NewDecoder())
	}
	return br
}

// validUTF8Prefix tolera una runa cortada al final del fragmento.
func validUTF8Prefix(b []byte) bool {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			return len(b) < utf8.UTFMax && !utf8.FullRune(b)
		}
		b = b[size:]
	}
	return true
}
