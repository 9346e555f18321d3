// Command seed builds a small demo mcpdict.db so the API can run
// locally without the upstream MCPDict build. The schema mirrors the
// upstream artifact: an info table of language varieties and an FTS5
// langs index of per-character readings. The result is stamped with the
// same goose migrations the real build pipeline uses.
package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type language struct {
	name, abbr                          string
	atlas2Sort, atlas2Color, atlas2Area string
	dictSort, dictColor, dictArea       string
	chenSort, chenColor, chenArea       string
	location, coordinates               string
}

type reading struct {
	lang, char, transcription, annotation string
}

var languages = []language{
	{"普通話", "普", "1", "#FF0000", "官話", "1", "#FF0000", "官話", "1", "#FF0000", "官話", "北京", "116.40,39.90"},
	{"上海話", "滬", "2", "#0000FF", "吳語", "2", "#0000FF", "吳語", "2", "#0000FF", "吳語", "上海", "121.47,31.23"},
	{"廣州話", "粵", "3", "#00AA00", "粵語", "3", "#00AA00", "粵語", "3", "#00AA00", "粵語", "廣州", "113.26,23.13"},
	// Character metadata pseudo-row; excluded from list-langs.
	{"漢字", "漢字", "", "", "", "", "", "", "", "", "", "", ""},
}

var readings = []reading{
	{"普", "是", "shi4", ""},
	{"普", "社", "she4", ""},
	{"普", "思", "si1", "*思*想"},
	{"普", "思", "si5", "意*思*"},
	{"滬", "是", "zy3", ""},
	{"滬", "思", "sy1", ""},
	{"粵", "是", "si6", ""},
	{"粵", "社", "se5", ""},
	{"粵", "思", "si1", "*思*考"},
	{"粵", "思", "si3", "意*思*"},
}

func main() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "mcpdict.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}
	defer db.Close()

	log.Printf("Creating schema in %s...", path)
	schema := []string{
		`CREATE TABLE info (
			語言 TEXT, 簡稱 TEXT,
			地圖集二排序 TEXT, 地圖集二顏色 TEXT, 地圖集二分區 TEXT,
			音典排序 TEXT, 音典顏色 TEXT, 音典分區 TEXT,
			陳邡排序 TEXT, 陳邡顏色 TEXT, 陳邡分區 TEXT,
			地點 TEXT, 經緯度 TEXT
		)`,
		`CREATE VIRTUAL TABLE langs USING fts5(語言, 字組, 讀音, 註釋)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	log.Printf("Inserting %d languages...", len(languages))
	for _, l := range languages {
		_, err := db.Exec(`INSERT INTO info VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			l.name, l.abbr,
			l.atlas2Sort, l.atlas2Color, l.atlas2Area,
			l.dictSort, l.dictColor, l.dictArea,
			l.chenSort, l.chenColor, l.chenArea,
			l.location, l.coordinates,
		)
		if err != nil {
			log.Fatalf("Failed to insert language %s: %v", l.name, err)
		}
	}

	log.Printf("Inserting %d readings...", len(readings))
	for _, r := range readings {
		_, err := db.Exec(`INSERT INTO langs (語言, 字組, 讀音, 註釋) VALUES (?, ?, ?, ?)`,
			r.lang, r.char, r.transcription, r.annotation,
		)
		if err != nil {
			log.Fatalf("Failed to insert reading %s/%s: %v", r.lang, r.char, err)
		}
	}

	log.Println("Stamping database...")
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}
	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		log.Fatalf("Failed to stamp database: %v", err)
	}

	log.Println("Seed complete")
}
