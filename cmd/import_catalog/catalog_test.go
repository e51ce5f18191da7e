package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
)

func TestParseCatalog(t *testing.T) {
	in := "name;category;unit;targetQuantity;notes\n" +
		"# comentario\n" +
		"Agua embotellada;water;liters;40;rotar cada 6 meses\n" +
		"Arroz;DRY_GOODS;KG;10\n"

	rows, err := parseCatalog(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.CategoryWater, rows[0].Req.Category)
	assert.Equal(t, entity.UnitLiters, rows[0].Req.Unit)
	require.NotNil(t, rows[0].Req.Notes)
	assert.Equal(t, "rotar cada 6 meses", *rows[0].Req.Notes)
	assert.Nil(t, rows[1].Req.Notes)
	assert.Equal(t, 4, rows[1].Line)
}

func TestParseCatalog_ErroresPorLinea(t *testing.T) {
	in := "Agua;WATER;LITERS;abc\n" +
		"Velas;SNACKS;PIECES;3\n" +
		"Solo;dos\n"

	_, err := parseCatalog(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 1")
	assert.Contains(t, err.Error(), "línea 2")
	assert.Contains(t, err.Error(), "línea 3")
}

func TestDecodeReader_Latin1(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String("Atún;PRESERVED_FOOD;CANS;12;despensa baja\n")
	require.NoError(t, err)

	r, err := decodeReader(bytes.NewReader([]byte(latin1)), "latin1")
	require.NoError(t, err)
	rows, err := parseCatalog(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Atún", rows[0].Req.Name)

	_, err = decodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestImportRows(t *testing.T) {
	rows, err := parseCatalog(strings.NewReader("Agua;WATER;LITERS;20\nGas;FUEL;CANS;4\n"))
	require.NoError(t, err)

	uc := usecase.NewProductUseCase(memory.New())
	n, err := importRows(context.Background(), uc, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := uc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
