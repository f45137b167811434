package article_usecase

import (
	"context"
	"strings"
	"time"

	"fursan/domain"
	"fursan/port/article_port"
	"fursan/port/like_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// ArticleUsecase covers the article publishing surface: creation, reads
// with per-user like resolution, partial updates, and deletion.
type ArticleUsecase struct {
	articlePort  article_port.ArticlePort
	likePort     like_port.LikePort
	queryTimeout time.Duration
}

// NewArticleUsecase creates a new usecase instance.
func NewArticleUsecase(
	articlePort article_port.ArticlePort,
	likePort like_port.LikePort,
	queryTimeout time.Duration,
) *ArticleUsecase {
	return &ArticleUsecase{
		articlePort:  articlePort,
		likePort:     likePort,
		queryTimeout: queryTimeout,
	}
}

// Create publishes a new article.
func (u *ArticleUsecase) Create(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, errors.ValidationError("article title must not be empty", nil)
	}
	if strings.TrimSpace(draft.Content) == "" {
		return nil, errors.ValidationError("article content must not be empty", nil)
	}
	if strings.TrimSpace(draft.SectionID) == "" {
		return nil, errors.ValidationError("article section_id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	article, err := u.articlePort.CreateArticle(ctx, draft)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to create article", "error", err, "title", draft.Title)
		return nil, errors.DatabaseError("failed to create article", err, map[string]interface{}{
			"title": draft.Title,
		})
	}

	logger.SafeInfoContext(ctx, "article created", "article_id", article.ID, "title", article.Title)
	return article, nil
}

// List returns all articles, newest first, with is_liked resolved for an
// authenticated caller.
func (u *ArticleUsecase) List(ctx context.Context) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	articles, err := u.articlePort.FetchArticles(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch articles", "error", err)
		return nil, errors.DatabaseError("failed to fetch articles", err, nil)
	}

	if articles == nil {
		articles = []domain.Article{}
	}
	u.resolveLikes(ctx, articles)
	return articles, nil
}

// Get returns one article by id.
func (u *ArticleUsecase) Get(ctx context.Context, id string) (*domain.Article, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.ValidationError("article id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	article, err := u.articlePort.FetchArticleByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		logger.SafeErrorContext(ctx, "failed to fetch article", "error", err, "article_id", id)
		return nil, errors.DatabaseError("failed to fetch article", err, map[string]interface{}{
			"article_id": id,
		})
	}

	single := []domain.Article{*article}
	u.resolveLikes(ctx, single)
	return &single[0], nil
}

// ListBySection returns the articles in a section, newest first.
func (u *ArticleUsecase) ListBySection(ctx context.Context, sectionID string) ([]domain.Article, error) {
	if strings.TrimSpace(sectionID) == "" {
		return nil, errors.ValidationError("section id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	articles, err := u.articlePort.FetchArticlesBySection(ctx, sectionID)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch section articles", "error", err, "section_id", sectionID)
		return nil, errors.DatabaseError("failed to fetch section articles", err, map[string]interface{}{
			"section_id": sectionID,
		})
	}

	if articles == nil {
		articles = []domain.Article{}
	}
	u.resolveLikes(ctx, articles)
	return articles, nil
}

// Update applies a partial patch. A patch with no changed fields still
// succeeds and returns the current article.
func (u *ArticleUsecase) Update(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.ValidationError("article id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	if !patch.HasChanges() {
		return u.articlePort.FetchArticleByID(ctx, id)
	}

	article, err := u.articlePort.UpdateArticle(ctx, id, patch)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		logger.SafeErrorContext(ctx, "failed to update article", "error", err, "article_id", id)
		return nil, errors.DatabaseError("failed to update article", err, map[string]interface{}{
			"article_id": id,
		})
	}

	logger.SafeInfoContext(ctx, "article updated", "article_id", id)
	return article, nil
}

// Delete removes the article and its likes and comments in one transaction.
func (u *ArticleUsecase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.ValidationError("article id must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	if err := u.articlePort.DeleteArticle(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		logger.SafeErrorContext(ctx, "failed to delete article", "error", err, "article_id", id)
		return errors.DatabaseError("failed to delete article", err, map[string]interface{}{
			"article_id": id,
		})
	}

	logger.SafeInfoContext(ctx, "article deleted", "article_id", id)
	return nil
}

// resolveLikes fills in is_liked for an authenticated caller; failures are
// logged and leave the flags null.
func (u *ArticleUsecase) resolveLikes(ctx context.Context, articles []domain.Article) {
	user := domain.OptionalUserFromContext(ctx)
	if user == nil || len(articles) == 0 {
		return
	}

	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}

	liked, err := u.likePort.FetchLikedArticleIDs(ctx, user.UserID, ids)
	if err != nil {
		logger.SafeWarnContext(ctx, "failed to resolve liked articles", "error", err)
		return
	}

	for i := range articles {
		flag := liked[articles[i].ID]
		articles[i].IsLiked = &flag
	}
}
