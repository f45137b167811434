package fetch_articles_by_tag_usecase

import (
	"context"
	"strings"
	"time"

	"fursan/domain"
	"fursan/port/like_port"
	"fursan/port/tag_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// FetchArticlesByTagUsecase lists the articles carrying a given tag.
type FetchArticlesByTagUsecase struct {
	tagPort      tag_port.ArticlesByTagPort
	likePort     like_port.LikePort
	queryTimeout time.Duration
}

// NewFetchArticlesByTagUsecase creates a new usecase instance.
func NewFetchArticlesByTagUsecase(
	tagPort tag_port.ArticlesByTagPort,
	likePort like_port.LikePort,
	queryTimeout time.Duration,
) *FetchArticlesByTagUsecase {
	return &FetchArticlesByTagUsecase{
		tagPort:      tagPort,
		likePort:     likePort,
		queryTimeout: queryTimeout,
	}
}

// Execute returns every article tagged with tagName, newest first. For an
// authenticated caller each article carries its is_liked flag.
func (u *FetchArticlesByTagUsecase) Execute(ctx context.Context, tagName string) ([]domain.Article, error) {
	tagName = strings.TrimSpace(tagName)
	if tagName == "" {
		return nil, errors.ValidationError("tag name must not be empty", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	articles, err := u.tagPort.FetchArticlesByTag(ctx, tagName)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch articles by tag", "error", err, "tag", tagName)
		return nil, errors.DatabaseError("failed to fetch articles by tag", err, map[string]interface{}{
			"tag": tagName,
		})
	}

	if articles == nil {
		articles = []domain.Article{}
	}

	if user := domain.OptionalUserFromContext(ctx); user != nil && len(articles) > 0 {
		ids := make([]string, 0, len(articles))
		for _, a := range articles {
			ids = append(ids, a.ID)
		}
		liked, err := u.likePort.FetchLikedArticleIDs(ctx, user.UserID, ids)
		if err != nil {
			logger.SafeWarnContext(ctx, "failed to resolve liked articles", "error", err, "tag", tagName)
		} else {
			for i := range articles {
				flag := liked[articles[i].ID]
				articles[i].IsLiked = &flag
			}
		}
	}

	logger.SafeInfoContext(ctx, "articles fetched by tag", "tag", tagName, "count", len(articles))
	return articles, nil
}
