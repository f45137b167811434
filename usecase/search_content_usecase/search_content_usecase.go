package search_content_usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"fursan/domain"
	"fursan/port/like_port"
	"fursan/port/search_port"
	"fursan/utils/errors"
	"fursan/utils/logger"
)

// SearchContentUsecase runs multi-criteria searches over articles and
// sections and assembles the response envelope.
type SearchContentUsecase struct {
	searchArticlesPort search_port.SearchArticlesPort
	searchSectionsPort search_port.SearchSectionsPort
	likePort           like_port.LikePort
	queryTimeout       time.Duration
}

// NewSearchContentUsecase creates a new usecase instance.
func NewSearchContentUsecase(
	searchArticlesPort search_port.SearchArticlesPort,
	searchSectionsPort search_port.SearchSectionsPort,
	likePort like_port.LikePort,
	queryTimeout time.Duration,
) *SearchContentUsecase {
	return &SearchContentUsecase{
		searchArticlesPort: searchArticlesPort,
		searchSectionsPort: searchSectionsPort,
		likePort:           likePort,
		queryTimeout:       queryTimeout,
	}
}

// Execute compiles and runs the search. An empty term with no section or
// author filter short-circuits to an empty envelope without touching the
// store. Sections are only matched when a term is present. When the caller
// is authenticated, each returned article carries its is_liked flag.
func (u *SearchContentUsecase) Execute(ctx context.Context, query domain.SearchQuery) (domain.SearchResults, error) {
	if query.IsNoOp() {
		logger.SafeInfoContext(ctx, "search short-circuited: no term, section, or author")
		return domain.EmptySearchResults(query), nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()

	start := time.Now()

	var articles []domain.Article
	var sections []domain.Section

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = u.searchArticlesPort.SearchArticles(gctx, query)
		return err
	})
	if query.Term != "" {
		g.Go(func() error {
			var err error
			sections, err = u.searchSectionsPort.SearchSections(gctx, query.Pattern)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			logger.SafeErrorContext(ctx, "search timed out", "term", query.Term, "timeout", u.queryTimeout)
			return domain.SearchResults{}, errors.TimeoutError("search query timed out", err, map[string]interface{}{
				"term": query.Term,
			})
		}
		logger.SafeErrorContext(ctx, "search failed", "error", err, "term", query.Term)
		return domain.SearchResults{}, errors.DatabaseError("failed to execute search", err, map[string]interface{}{
			"term": query.Term,
		})
	}

	if articles == nil {
		articles = []domain.Article{}
	}
	if sections == nil {
		sections = []domain.Section{}
	}

	if err := u.resolveLikes(ctx, articles); err != nil {
		// Like resolution is best-effort; results still go out without flags.
		logger.SafeWarnContext(ctx, "failed to resolve liked articles", "error", err)
	}

	logger.SafeInfoContext(ctx, "search completed",
		"term", query.Term,
		"articles", len(articles),
		"sections", len(sections),
		"duration_ms", time.Since(start).Milliseconds())

	return domain.SearchResults{
		Articles:     articles,
		Sections:     sections,
		TotalResults: len(articles) + len(sections),
		Query:        query.Raw,
		Filters:      query.Filters(),
	}, nil
}

// resolveLikes fills in is_liked for an authenticated caller. Anonymous
// requests leave the flag null.
func (u *SearchContentUsecase) resolveLikes(ctx context.Context, articles []domain.Article) error {
	user := domain.OptionalUserFromContext(ctx)
	if user == nil || len(articles) == 0 {
		return nil
	}

	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}

	liked, err := u.likePort.FetchLikedArticleIDs(ctx, user.UserID, ids)
	if err != nil {
		return err
	}

	for i := range articles {
		flag := liked[articles[i].ID]
		articles[i].IsLiked = &flag
	}
	return nil
}
