package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"ScentyAI/app/common/snowflake"
	"ScentyAI/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// A tiny helper to seed the candles table from a JSON file.
// Usage:
//   go run ./tools/catalogimport \
//     -dsn  "root:scenty@tcp(mysql:3306)/scenty?charset=utf8mb4&parseTime=true&loc=Local" \
//     -data "manifest/seed/candles.json" \
//     -init -ddl "manifest/sql/catalog.sql"
func main() {
	dsn := flag.String("dsn", "", "MySQL DSN for the catalog database")
	data := flag.String("data", "", "path to a JSON array of candles to import")
	ddl := flag.String("ddl", "manifest/sql/catalog.sql", "path to the candles DDL")
	initTable := flag.Bool("init", false, "create the candles table before import")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("-dsn is required")
	}
	if *data == "" {
		log.Fatal("-data is required")
	}

	conn := sqlx.NewMysql(*dsn)
	ctx := context.Background()

	if *initTable {
		schema, err := os.ReadFile(*ddl)
		if err != nil {
			log.Fatalf("read ddl: %v", err)
		}
		if _, err := conn.ExecCtx(ctx, string(schema)); err != nil {
			log.Fatalf("apply ddl: %v", err)
		}
	}

	raw, err := os.ReadFile(*data)
	if err != nil {
		log.Fatalf("read data: %v", err)
	}

	var rows []seedCandle
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Fatalf("parse data: %v", err)
	}

	// raw insert, no cache layer needed for a one-shot import
	query := "insert into `candles` (`id`, `title`, `notes`, `description`, `tags`) values (?, ?, ?, ?, ?)"
	imported := 0
	for i, row := range rows {
		candle, err := row.toModel()
		if err != nil {
			log.Fatalf("row %d: %v", i, err)
		}
		if _, err := conn.ExecCtx(ctx, query, candle.Id, candle.Title, candle.Notes, candle.Description, candle.Tags); err != nil {
			log.Fatalf("insert %q: %v", candle.Title, err)
		}
		imported++
	}

	fmt.Printf("Imported %d candles.\n", imported)
}

type seedCandle struct {
	Title       string   `json:"title"`
	Notes       string   `json:"notes"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (s seedCandle) toModel() (*catalog.Candles, error) {
	if strings.TrimSpace(s.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(s.Notes) == "" {
		return nil, fmt.Errorf("notes is required")
	}

	tags := make([]string, 0, len(s.Tags))
	for _, t := range s.Tags {
		if trimmed := strings.ToLower(strings.TrimSpace(t)); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	return &catalog.Candles{
		Id:          snowflake.Next(),
		Title:       s.Title,
		Notes:       s.Notes,
		Description: sql.NullString{String: s.Description, Valid: s.Description != ""},
		Tags:        string(encoded),
	}, nil
}
