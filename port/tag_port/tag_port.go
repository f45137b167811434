package tag_port

import (
	"context"
	"fursan/domain"
)

// TagVocabularyPort lists every tag in use together with its article count.
type TagVocabularyPort interface {
	FetchTagCounts(ctx context.Context) ([]domain.TagCount, error)
}

// ArticlesByTagPort fetches articles carrying a given tag.
type ArticlesByTagPort interface {
	FetchArticlesByTag(ctx context.Context, tagName string) ([]domain.Article, error)
}
