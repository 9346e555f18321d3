package store

// Repository implementation (SQLite, read-only)

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mcpdictapi/internal/entity"

	_ "modernc.org/sqlite"
)

// Dict provides read-only access to a stamped mcpdict.db artifact. The
// file is immutable for the process lifetime; picking up a new build
// means restarting the process.
type Dict struct {
	db *sql.DB
}

// Open opens the database in read-only URI mode and applies the
// defensive pragmas the service runs with in production.
func Open(path string) (*Dict, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 2000",
		"PRAGMA query_only = ON",
		"PRAGMA trusted_schema = OFF",
		"PRAGMA temp_store = MEMORY",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	return &Dict{db: db}, nil
}

// Close closes the database connection.
func (d *Dict) Close() error {
	return d.db.Close()
}

// Ping reports whether the database is reachable.
func (d *Dict) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Version returns the build marker stamped into the artifact. A missing
// marker is an error: a database without one was never stamped and
// must not be served.
func (d *Dict) Version(ctx context.Context) (string, error) {
	var version string
	err := d.db.QueryRowContext(ctx,
		`SELECT CAST(version AS TEXT) FROM build_version LIMIT 1`,
	).Scan(&version)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("build_version table is empty")
	}
	if err != nil {
		return "", fmt.Errorf("query build version: %w", err)
	}
	return version, nil
}

// ListLanguages returns every language variety ordered by 語言ID. The
// 簡稱='漢字' row holds per-character metadata, not a variety, and is
// excluded the same way the upstream app excludes it.
func (d *Dict) ListLanguages(ctx context.Context) ([]entity.Language, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT ROWID, 語言, 簡稱,
		       地圖集二排序, 地圖集二顏色, 地圖集二分區,
		       音典排序, 音典顏色, 音典分區,
		       陳邡排序, 陳邡顏色, 陳邡分區,
		       地點, 經緯度
		FROM info
		WHERE 簡稱 <> '漢字'
		ORDER BY ROWID ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}
	defer rows.Close()

	var langs []entity.Language
	for rows.Next() {
		var l entity.Language
		cols := make([]sql.NullString, 13)
		dst := make([]any, 0, 14)
		dst = append(dst, &l.ID)
		for i := range cols {
			dst = append(dst, &cols[i])
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		l.Name, l.Abbr = cols[0].String, cols[1].String
		l.Atlas2Sort, l.Atlas2Color, l.Atlas2Area = cols[2].String, cols[3].String, cols[4].String
		l.DictSort, l.DictColor, l.DictArea = cols[5].String, cols[6].String, cols[7].String
		l.ChenSort, l.ChenColor, l.ChenArea = cols[8].String, cols[9].String, cols[10].String
		l.Location, l.Coordinates = cols[11].String, cols[12].String
		langs = append(langs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate languages: %w", err)
	}
	return langs, nil
}

// Readings looks up every queried character in one shot and returns,
// per language, a cell slice aligned with the input order. Languages
// with no reading for any queried character do not appear in the map.
func (d *Dict) Readings(ctx context.Context, chars []string) (map[int64][]entity.ReadingCell, error) {
	if len(chars) == 0 {
		return map[int64][]entity.ReadingCell{}, nil
	}

	// One VALUES row per queried character, joined against the FTS
	// index with a column-scoped phrase query. Quoting the phrase keeps
	// arbitrary input out of the fts5 query syntax.
	placeholders := make([]string, len(chars))
	params := make([]any, 0, 2*len(chars))
	for i, ch := range chars {
		placeholders[i] = "(?, ?)"
		params = append(params, ch, i+1)
	}

	query := fmt.Sprintf(`
		WITH q(字頭, 字頭編號) AS (VALUES %s)
		SELECT r.語言ID, q.字頭編號, l.讀音, COALESCE(l.註釋, '')
		FROM q
		JOIN langs l
		  ON langs MATCH ('字組:"' || REPLACE(q.字頭, '"', '""') || '"')
		JOIN info_rowid r
		  ON l.語言 = r.簡稱
		ORDER BY r.語言ID, q.字頭編號, l.rowid
	`, strings.Join(placeholders, ", "))

	rows, err := d.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]entity.ReadingCell)
	for rows.Next() {
		var (
			langID int64
			pos    int
			r      entity.Reading
		)
		if err := rows.Scan(&langID, &pos, &r.Transcription, &r.Annotation); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		if pos < 1 || pos > len(chars) {
			return nil, fmt.Errorf("reading position %d out of range", pos)
		}
		cells, ok := result[langID]
		if !ok {
			cells = make([]entity.ReadingCell, len(chars))
			result[langID] = cells
		}
		cells[pos-1] = append(cells[pos-1], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}
	return result, nil
}
