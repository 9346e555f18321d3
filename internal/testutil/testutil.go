// Package testutil builds throwaway stamped dictionary databases with
// the same schema the upstream MCPDict build produces.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// FixtureVersion is the build marker stamped into fixture databases.
const FixtureVersion = "1700000000"

// Fixture language IDs (info ROWIDs, insertion order).
const (
	LangAID int64 = 1 // 甲語: 是 -> si5, nothing for 社
	LangBID int64 = 2 // 乙語: 是 -> two annotated readings, 社 -> sɿ1
	LangCID int64 = 3 // 丙語: no readings at all
)

// CreateDictDB writes a stamped fixture database into t.TempDir and
// returns its path. The data covers the shapes the serializer has to
// handle: a bare single reading, an annotated multi-reading cell, an
// empty cell, a reading-less language, and the 漢字 metadata pseudo-row.
func CreateDictDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mcpdict.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE info (
			語言 TEXT, 簡稱 TEXT,
			地圖集二排序 TEXT, 地圖集二顏色 TEXT, 地圖集二分區 TEXT,
			音典排序 TEXT, 音典顏色 TEXT, 音典分區 TEXT,
			陳邡排序 TEXT, 陳邡顏色 TEXT, 陳邡分區 TEXT,
			地點 TEXT, 經緯度 TEXT
		)`,
		`CREATE VIRTUAL TABLE langs USING fts5(語言, 字組, 讀音, 註釋)`,

		`INSERT INTO info VALUES
			('甲語', '甲', '1', '#AA0000', '區一', '1', '#AA0000', '區一', '1', '#AA0000', '區一', '甲地', '120.00,30.00'),
			('乙語', '乙', '2', '#00AA00', '區二', '2', '#00AA00', '區二', '2', '#00AA00', '區二', '乙地', '121.00,31.00'),
			('丙語', '丙', '3', '#0000AA', '區三', '3', '#0000AA', '區三', '3', '#0000AA', '區三', '丙地', '122.00,32.00'),
			('漢字', '漢字', '', '', '', '', '', '', '', '', '', '', '')`,

		`INSERT INTO langs (語言, 字組, 讀音, 註釋) VALUES
			('甲', '是', 'si5', ''),
			('乙', '是', 'sɿ1', '*思*想'),
			('乙', '是', 'sɿ5', '意*思*'),
			('乙', '社', 'sɿ1', '')`,

		`CREATE TABLE info_rowid (簡稱 TEXT PRIMARY KEY, 語言ID INTEGER)`,
		`INSERT INTO info_rowid (簡稱, 語言ID) SELECT 簡稱, info.ROWID FROM info`,

		`CREATE TABLE build_version (version INTEGER DEFAULT (strftime('%s','now')))`,
		`INSERT INTO build_version (version) VALUES (` + FixtureVersion + `)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed fixture db: %v\nstatement: %s", err, stmt)
		}
	}

	return path
}
