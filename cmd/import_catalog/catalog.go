package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// catalogRow una fila del CSV ya convertida a request, con su número de línea.
type catalogRow struct {
	Line int
	Req  dto.ProductRequest
}

// decodeReader envuelve r según la codificación indicada (utf8 | latin1).
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf8", "utf-8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
}

// parseCatalog lee filas name;category;unit;targetQuantity;notes. La cabecera es opcional
// y las líneas vacías o que empiezan con # se ignoran.
func parseCatalog(r io.Reader) ([]catalogRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		rows []catalogRow
		errs []error
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rows) == 0 && len(errs) == 0 && isHeader(rec) {
			continue
		}
		if len(rec) < 4 || len(rec) > 5 {
			errs = append(errs, fmt.Errorf("línea %d: se esperan 4 o 5 columnas, hay %d", line, len(rec)))
			continue
		}
		target, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			errs = append(errs, fmt.Errorf("línea %d: targetQuantity inválido %q", line, rec[3]))
			continue
		}
		req := dto.ProductRequest{
			Name:           strings.TrimSpace(rec[0]),
			Category:       entity.Category(strings.ToUpper(strings.TrimSpace(rec[1]))),
			Unit:           entity.Unit(strings.ToUpper(strings.TrimSpace(rec[2]))),
			TargetQuantity: &target,
		}
		if len(rec) == 5 {
			if notes := strings.TrimSpace(rec[4]); notes != "" {
				req.Notes = &notes
			}
		}
		if err := req.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %v", line, err))
			continue
		}
		rows = append(rows, catalogRow{Line: line, Req: req})
	}
	return rows, errors.Join(errs...)
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name")
}
