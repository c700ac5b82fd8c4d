// seed carga masiva de empleadores y empleados desde archivos CSV.
//
// Uso: go run ./cmd/seed -employers employers.csv -employees employees.csv
// Los CSV pueden venir en ISO-8859-1 (exportes viejos); con -latin1 se
// transcodifican a UTF-8 al leer. Las filas ya existentes se ignoran
// (ON CONFLICT DO NOTHING), así que el comando es re-ejecutable.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tu-usuario/empleos-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/empleos-api/pkg/config"
	"github.com/tu-usuario/empleos-api/pkg/logger"
)

func main() {
	employersPath := flag.String("employers", "employers.csv", "ruta del CSV de empleadores (government_id,employer_name)")
	employeesPath := flag.String("employees", "employees.csv", "ruta del CSV de empleados (personal_id,first_name,last_name,position[,government_id])")
	latin1 := flag.Bool("latin1", false, "los CSV están en ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	nEmployers, err := loadEmployers(ctx, pool, *employersPath, *latin1)
	if err != nil {
		log.Fatal().Err(err).Str("file", *employersPath).Msg("cargar empleadores")
	}
	log.Info().Int64("rows", nEmployers).Msg("empleadores cargados")

	nEmployees, err := loadEmployees(ctx, pool, *employeesPath, *latin1)
	if err != nil {
		log.Fatal().Err(err).Str("file", *employeesPath).Msg("cargar empleados")
	}
	log.Info().Int64("rows", nEmployees).Msg("empleados cargados")
}

// openCSV abre el archivo y devuelve un reader CSV, transcodificando desde
// ISO-8859-1 si hace falta.
func openCSV(path string, latin1 bool) (*csv.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validamos por fila: government_id es opcional en empleados
	return cr, f, nil
}

// loadEmployers copia el CSV a una tabla temporal y hace el upsert en employers.
func loadEmployers(ctx context.Context, pool *pgxpool.Pool, path string, latin1 bool) (int64, error) {
	cr, closer, err := openCSV(path, latin1)
	if err != nil {
		return 0, err
	}
	defer closer.Close()

	var rows [][]any
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("leer CSV línea %d: %w", line+1, err)
		}
		if line == 0 && strings.EqualFold(rec[0], "government_id") {
			continue // encabezado
		}
		if len(rec) < 2 {
			return 0, fmt.Errorf("línea %d: se esperaban 2 columnas", line+1)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("línea %d: government_id inválido: %w", line+1, err)
		}
		rows = append(rows, []any{id, strings.TrimSpace(rec[1])})
	}

	return copyInto(ctx, pool, "employers",
		[]string{"government_id", "employer_name"}, rows)
}

// loadEmployees copia el CSV a una tabla temporal y hace el upsert en employees.
// La quinta columna (government_id) es opcional y puede venir vacía.
func loadEmployees(ctx context.Context, pool *pgxpool.Pool, path string, latin1 bool) (int64, error) {
	cr, closer, err := openCSV(path, latin1)
	if err != nil {
		return 0, err
	}
	defer closer.Close()

	var rows [][]any
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("leer CSV línea %d: %w", line+1, err)
		}
		if line == 0 && strings.EqualFold(rec[0], "personal_id") {
			continue // encabezado
		}
		if len(rec) < 4 {
			return 0, fmt.Errorf("línea %d: se esperaban al menos 4 columnas", line+1)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("línea %d: personal_id inválido: %w", line+1, err)
		}
		var governmentID *int64
		if len(rec) >= 5 && strings.TrimSpace(rec[4]) != "" {
			gid, err := strconv.ParseInt(strings.TrimSpace(rec[4]), 10, 64)
			if err != nil {
				return 0, fmt.Errorf("línea %d: government_id inválido: %w", line+1, err)
			}
			governmentID = &gid
		}
		rows = append(rows, []any{
			id,
			strings.TrimSpace(rec[1]),
			strings.TrimSpace(rec[2]),
			strings.TrimSpace(rec[3]),
			governmentID,
		})
	}

	return copyInto(ctx, pool, "employees",
		[]string{"personal_id", "first_name", "last_name", "position", "government_id"}, rows)
}

// copyInto hace COPY a una tabla temporal con la forma de la destino y luego
// INSERT ... ON CONFLICT DO NOTHING, todo en una transacción.
func copyInto(ctx context.Context, pool *pgxpool.Pool, table string, columns []string, rows [][]any) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tmpTable := "tmp_" + table
	_, err = tx.Exec(ctx, fmt.Sprintf(
		`CREATE TEMP TABLE %s (LIKE %s INCLUDING DEFAULTS) ON COMMIT DROP`, tmpTable, table))
	if err != nil {
		return 0, fmt.Errorf("crear tabla temporal: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{tmpTable}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy a %s: %w", tmpTable, err)
	}

	cols := strings.Join(columns, ", ")
	tag, err := tx.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (%s) SELECT %s FROM %s ON CONFLICT DO NOTHING`,
		table, cols, cols, tmpTable))
	if err != nil {
		return 0, fmt.Errorf("insert en %s: %w", table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return tag.RowsAffected(), nil
}
