// import_catalog crea productos a partir de un CSV separado por ';'.
//
// Uso: go run ./cmd/import_catalog [-encoding latin1] [-dry-run] catalogo.csv
// Columnas: name;category;unit;targetQuantity;notes (notes opcional, cabecera opcional).
// Usa la misma configuración que la API (DB_DRIVER, DATABASE_URL, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/storage"
	"github.com/jhoicas/Despensa-api/pkg/config"
	"github.com/jhoicas/Despensa-api/pkg/logger"
)

func main() {
	encoding := flag.String("encoding", "utf8", "codificación del archivo: utf8 | latin1")
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo, no escribe")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_catalog [-encoding latin1] [-dry-run] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, App: "import_catalog"})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	r, err := decodeReader(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}
	rows, err := parseCatalog(r)
	if err != nil {
		log.Fatal().Err(err).Msg("CSV inválido, no se importó nada")
	}
	log.Info().Int("filas", len(rows)).Msg("CSV válido")
	if *dryRun {
		return
	}

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer closeStore()

	n, err := importRows(ctx, usecase.NewProductUseCase(store), rows)
	if err != nil {
		log.Error().Err(err).Int("importados", n).Msg("importación interrumpida")
		closeStore()
		os.Exit(1)
	}
	log.Info().Int("importados", n).Msg("importación completa")
}

func importRows(ctx context.Context, uc *usecase.ProductUseCase, rows []catalogRow) (int, error) {
	for i, row := range rows {
		if _, err := uc.Create(ctx, row.Req); err != nil {
			return i, fmt.Errorf("línea %d (%s): %w", row.Line, row.Req.Name, err)
		}
	}
	return len(rows), nil
}
