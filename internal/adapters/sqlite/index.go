package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"daybook/internal/domain"
	"daybook/internal/ports"

	_ "modernc.org/sqlite"
)

// Index implements ports.EntryIndex over a SQLite database kept next to
// the journal. It is a rebuildable cache of entry content: the entry
// files remain the single source of truth and the database can be
// deleted at any time.
type Index struct {
	db      *sql.DB
	journal ports.Journal
}

var _ ports.EntryIndex = (*Index)(nil)

// Open creates the index database for a journal and ensures the schema.
func Open(journal ports.Journal) (*Index, error) {
	dbPath := filepath.Join(journal.Dir(), ".daybook-index.db")
	if err := os.MkdirAll(journal.Dir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			filename TEXT PRIMARY KEY,
			date     TEXT NOT NULL,
			mtime    INTEGER NOT NULL,
			content  TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup index schema: %w", err)
	}

	return &Index{db: db, journal: journal}, nil
}

// Close releases the database.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// Sync diff-scans the journal directory against the indexed rows:
// entries whose mtime changed are re-read, new files are inserted, and
// rows for deleted files are dropped.
func (idx *Index) Sync() error {
	names, err := idx.journal.ListEntries()
	if err != nil {
		return err
	}

	indexed := map[string]int64{}
	rows, err := idx.db.Query(`SELECT filename, mtime FROM entries`)
	if err != nil {
		return fmt.Errorf("failed to scan index: %w", err)
	}
	for rows.Next() {
		var name string
		var mtime int64
		if err := rows.Scan(&name, &mtime); err != nil {
			rows.Close()
			return err
		}
		indexed[name] = mtime
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	live := map[string]bool{}
	for _, name := range names {
		live[name] = true

		info, err := os.Stat(idx.journal.Path(name))
		if err != nil {
			continue
		}
		mtime := info.ModTime().Unix()
		if prev, ok := indexed[name]; ok && prev == mtime {
			continue
		}

		content, err := idx.journal.Read(name)
		if err != nil {
			return err
		}
		date, _ := domain.DateFromFilename(name)
		_, err = idx.db.Exec(`
			INSERT INTO entries (filename, date, mtime, content)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(filename) DO UPDATE SET mtime = excluded.mtime, content = excluded.content
		`, name, date, mtime, content)
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", name, err)
		}
	}

	for name := range indexed {
		if !live[name] {
			if _, err := idx.db.Exec(`DELETE FROM entries WHERE filename = ?`, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Search returns entries containing the query, newest first, each with
// the first matching line.
func (idx *Index) Search(query string) ([]ports.SearchMatch, error) {
	rows, err := idx.db.Query(`
		SELECT filename, date, content FROM entries
		WHERE content LIKE '%' || ? || '%'
		ORDER BY date DESC
	`, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer rows.Close()

	var matches []ports.SearchMatch
	for rows.Next() {
		var m ports.SearchMatch
		var content string
		if err := rows.Scan(&m.Filename, &m.Date, &content); err != nil {
			return nil, err
		}
		m.LineNo, m.Line = firstMatch(content, query)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// firstMatch locates the first line containing the query,
// case-insensitively matching what LIKE found.
func firstMatch(content, query string) (int, string) {
	lower := strings.ToLower(query)
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), lower) {
			return i + 1, strings.TrimSpace(line)
		}
	}
	return 0, ""
}
