package fursan_db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fursan/domain"
	apperrors "fursan/utils/errors"
	"fursan/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const articleColumns = `id, title, content, author, section_id, image_data, image_name, tags, likes_count, created_at, updated_at`

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	err := row.Scan(
		&article.ID, &article.Title, &article.Content, &article.Author,
		&article.SectionID, &article.ImageData, &article.ImageName,
		&article.Tags, &article.LikesCount, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func scanArticles(rows pgx.Rows) ([]domain.Article, error) {
	articles := []domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}

// CreateArticle inserts a new article and returns it.
func (r *Repository) CreateArticle(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	now := time.Now().UTC()
	article := domain.Article{
		ID:        uuid.New().String(),
		Title:     draft.Title,
		Content:   draft.Content,
		Author:    draft.Author,
		SectionID: draft.SectionID,
		ImageData: draft.ImageData,
		ImageName: draft.ImageName,
		Tags:      draft.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	query := `
		INSERT INTO articles (id, title, content, author, section_id, image_data, image_name, tags, likes_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		article.ID, article.Title, article.Content, article.Author,
		article.SectionID, article.ImageData, article.ImageName, article.Tags,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error creating article", "error", err, "title", draft.Title)
		return nil, errors.New("error creating article")
	}

	return &article, nil
}

// FetchArticles returns every article in insertion order.
func (r *Repository) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching articles", "error", err)
		return nil, errors.New("error fetching articles")
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error scanning articles", "error", err)
		return nil, errors.New("error scanning articles")
	}

	return articles, nil
}

// FetchArticleByID returns a single article or ErrArticleNotFound.
func (r *Repository) FetchArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(r.pool.QueryRow(ctx, query, articleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("article %s: %w", articleID, apperrors.ErrArticleNotFound)
		}
		logger.Logger.ErrorContext(ctx, "error fetching article", "error", err, "articleID", articleID)
		return nil, errors.New("error fetching article")
	}

	return article, nil
}

// FetchArticlesBySection returns all articles referencing the given section.
func (r *Repository) FetchArticlesBySection(ctx context.Context, sectionID string) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE section_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, sectionID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching articles by section", "error", err, "sectionID", sectionID)
		return nil, errors.New("error fetching articles by section")
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error scanning articles by section", "error", err)
		return nil, errors.New("error scanning articles by section")
	}

	return articles, nil
}

// UpdateArticle applies a partial update, bumps updated_at and returns the
// updated article.
func (r *Repository) UpdateArticle(ctx context.Context, articleID string, patch domain.ArticlePatch) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	sets := []string{}
	args := []interface{}{}
	arg := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Content != nil {
		appendSet("content", *patch.Content)
	}
	if patch.Author != nil {
		appendSet("author", *patch.Author)
	}
	if patch.SectionID != nil {
		appendSet("section_id", *patch.SectionID)
	}
	if patch.ImageData != nil {
		appendSet("image_data", *patch.ImageData)
	}
	if patch.ImageName != nil {
		appendSet("image_name", *patch.ImageName)
	}
	if patch.Tags != nil {
		appendSet("tags", patch.Tags)
	}
	appendSet("updated_at", time.Now().UTC())

	args = append(args, articleID)
	query := fmt.Sprintf(
		`UPDATE articles SET %s WHERE id = $%d RETURNING `+articleColumns,
		strings.Join(sets, ", "), arg,
	)

	article, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("article %s: %w", articleID, apperrors.ErrArticleNotFound)
		}
		logger.Logger.ErrorContext(ctx, "error updating article", "error", err, "articleID", articleID)
		return nil, errors.New("error updating article")
	}

	return article, nil
}

// DeleteArticle removes an article and cascades to its likes and comments.
func (r *Repository) DeleteArticle(ctx context.Context, articleID string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error starting transaction", "error", err)
		return errors.New("error deleting article")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, articleID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting article", "error", err, "articleID", articleID)
		return errors.New("error deleting article")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", articleID, apperrors.ErrArticleNotFound)
	}

	for _, query := range []string{
		`DELETE FROM likes WHERE article_id = $1`,
		`DELETE FROM comments WHERE article_id = $1`,
	} {
		if _, err := tx.Exec(ctx, query, articleID); err != nil {
			logger.Logger.ErrorContext(ctx, "error cascading article delete", "error", err, "articleID", articleID)
			return errors.New("error deleting article")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "error committing article delete", "error", err, "articleID", articleID)
		return errors.New("error deleting article")
	}

	return nil
}
