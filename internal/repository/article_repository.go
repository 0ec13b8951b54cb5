package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/richardawe/erp-world/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Upsert writes an article keyed on url. A conflicting URL overwrites
// the stored row entirely (last-write-wins), so replaying a crawl never
// duplicates rows. The article's ID is populated from the store.
func (r *ArticleRepository) Upsert(article *model.Article) error {
	return r.db.QueryRow(`
		INSERT INTO articles(title, summary, content, url, image_url, published_at, vendor, categories, is_ai_related, source_id)
		VALUES($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)
		ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			published_at = EXCLUDED.published_at,
			vendor = EXCLUDED.vendor,
			categories = EXCLUDED.categories,
			is_ai_related = EXCLUDED.is_ai_related,
			source_id = EXCLUDED.source_id
		RETURNING id
	`, article.Title, article.Summary, article.Content, article.URL, article.ImageURL,
		article.PublishedAt, article.Vendor, pq.Array(article.Categories),
		article.IsAIRelated, article.SourceID).Scan(&article.ID)
}

// GetFeed returns persisted articles newest first, optionally filtered
// by vendor, category membership and AI relevance.
func (r *ArticleRepository) GetFeed(limit, offset int, vendor, category string, aiOnly bool) ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, summary, content, url, COALESCE(image_url, ''), published_at, vendor, categories, is_ai_related, source_id
		FROM articles
		WHERE ($3 = '' OR vendor = $3)
		  AND ($4 = '' OR $4 = ANY(categories))
		  AND ($5 = false OR is_ai_related)
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset, vendor, category, aiOnly)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.Content, &a.URL, &a.ImageURL,
			&a.PublishedAt, &a.Vendor, pq.Array(&a.Categories), &a.IsAIRelated, &a.SourceID)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetFeedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM articles
	`).Scan(&total)
	return total, err
}
