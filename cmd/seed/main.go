package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"flickfinder/pkg/config"
	"flickfinder/postgres"

	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

// tableSpec describes one CSV file and how its records map onto an upsert.
type tableSpec struct {
	file    string
	columns []string
	stmt    string
}

var tables = []tableSpec{
	{
		file:    "movies.csv",
		columns: []string{"id", "title", "year"},
		stmt: `
INSERT INTO movies (id, title, year)
VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	year = EXCLUDED.year
`,
	},
	{
		file:    "people.csv",
		columns: []string{"id", "name", "birth"},
		stmt: `
INSERT INTO people (id, name, birth)
VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	birth = EXCLUDED.birth
`,
	},
	{
		file:    "stars.csv",
		columns: []string{"movie_id", "person_id"},
		stmt: `
INSERT INTO stars (movie_id, person_id)
VALUES (?, ?)
ON CONFLICT (movie_id, person_id) DO NOTHING
`,
	},
	{
		file:    "ratings.csv",
		columns: []string{"movie_id", "rating", "votes"},
		stmt: `
INSERT INTO ratings (movie_id, rating, votes)
VALUES (?, ?, ?)
ON CONFLICT (movie_id) DO UPDATE SET
	rating = EXCLUDED.rating,
	votes = EXCLUDED.votes
`,
	},
}

func main() {
	var (
		dataDir string
		limit   int
	)

	flag.StringVar(&dataDir, "dir", "data", "Directory holding movies.csv, people.csv, stars.csv and ratings.csv")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import per table (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	for _, spec := range tables {
		count, err := importTable(context.Background(), db, filepath.Join(dataDir, spec.file), spec, limit)
		if err != nil {
			slog.Error("import failed", "file", spec.file, "error", err)
			os.Exit(1)
		}
		slog.Info("import completed", "file", spec.file, "rows", count)
	}
}

func importTable(ctx context.Context, db *gorm.DB, path string, spec tableSpec, limit int) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	indexes, err := parseHeader(reader, spec.columns)
	if err != nil {
		return 0, err
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	count := 0
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = tx.Rollback()
			return count, err
		}

		values, ok := pickValues(record, indexes)
		if !ok {
			continue
		}

		if err := tx.Exec(spec.stmt, values...).Error; err != nil {
			_ = tx.Rollback()
			return count, err
		}

		count++
	}

	if err := tx.Commit().Error; err != nil {
		return count, err
	}

	return count, nil
}

func parseHeader(reader *csv.Reader, columns []string) ([]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	indexes := make([]int, len(columns))
	for i, column := range columns {
		indexes[i] = -1
		for j, name := range header {
			if strings.TrimSpace(name) == column {
				indexes[i] = j
				break
			}
		}
		if indexes[i] == -1 {
			return nil, fmt.Errorf("missing column %q in csv header", column)
		}
	}

	return indexes, nil
}

func pickValues(record []string, indexes []int) ([]interface{}, bool) {
	values := make([]interface{}, len(indexes))
	for i, idx := range indexes {
		if idx >= len(record) {
			return nil, false
		}
		raw := strings.TrimSpace(record[idx])
		if n, err := strconv.Atoi(raw); err == nil {
			values[i] = n
			continue
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			values[i] = f
			continue
		}
		values[i] = raw
	}
	return values, true
}
