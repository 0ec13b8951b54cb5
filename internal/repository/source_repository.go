package repository

import (
	"database/sql"
	"time"

	"github.com/richardawe/erp-world/internal/model"
)

type SourceRepository struct {
	db *sql.DB
}

func NewSourceRepository(db *sql.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// ListActive returns every active source, read fresh from the store.
func (r *SourceRepository) ListActive() ([]model.Source, error) {
	rows, err := r.db.Query(`
		SELECT id, url, vendor, type, active, last_crawled
		FROM sources
		WHERE active = true
		ORDER BY id
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []model.Source
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sources, nil
}

// GetActiveByID returns the requested source, or nil when it is missing
// or inactive.
func (r *SourceRepository) GetActiveByID(id int64) (*model.Source, error) {
	row := r.db.QueryRow(`
		SELECT id, url, vendor, type, active, last_crawled
		FROM sources
		WHERE id = $1 AND active = true
	`, id)

	s, err := scanSource(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// TouchLastCrawled records a successful fetch attempt of the source,
// whether or not it yielded new articles.
func (r *SourceRepository) TouchLastCrawled(id int64, at time.Time) error {
	_, err := r.db.Exec(`
		UPDATE sources SET last_crawled = $1 WHERE id = $2
	`, at, id)
	return err
}

// Save inserts a source unless its URL is already configured. Used by
// the seed command.
func (r *SourceRepository) Save(source *model.Source) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO sources(url, vendor, type, active)
		VALUES($1, $2, $3, $4)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, source.URL, source.Vendor, source.Type, source.Active).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	source.ID = id
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(row rowScanner) (model.Source, error) {
	var s model.Source
	var lastCrawled sql.NullTime

	err := row.Scan(&s.ID, &s.URL, &s.Vendor, &s.Type, &s.Active, &lastCrawled)
	if err != nil {
		return model.Source{}, err
	}

	if lastCrawled.Valid {
		t := lastCrawled.Time
		s.LastCrawled = &t
	}

	return s, nil
}
