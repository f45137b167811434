package di

import (
	"fursan/config"
	"fursan/driver/fursan_db"
	"fursan/gateway/article_gateway"
	"fursan/gateway/comment_gateway"
	"fursan/gateway/like_gateway"
	"fursan/gateway/search_gateway"
	"fursan/gateway/section_gateway"
	"fursan/gateway/settings_gateway"
	"fursan/gateway/suggestion_gateway"
	"fursan/gateway/tag_gateway"
	"fursan/usecase/article_usecase"
	"fursan/usecase/comment_usecase"
	"fursan/usecase/fetch_articles_by_tag_usecase"
	"fursan/usecase/like_usecase"
	"fursan/usecase/list_tags_usecase"
	"fursan/usecase/search_content_usecase"
	"fursan/usecase/section_usecase"
	"fursan/usecase/settings_usecase"
	"fursan/usecase/suggestion_usecase"
)

// ApplicationComponents wires the gateways and usecases of the publishing
// backend.
type ApplicationComponents struct {
	SearchContentUsecase      *search_content_usecase.SearchContentUsecase
	SuggestionUsecase         *suggestion_usecase.SuggestionUsecase
	ListTagsUsecase           *list_tags_usecase.ListTagsUsecase
	FetchArticlesByTagUsecase *fetch_articles_by_tag_usecase.FetchArticlesByTagUsecase
	SectionUsecase            *section_usecase.SectionUsecase
	ArticleUsecase            *article_usecase.ArticleUsecase
	LikeUsecase               *like_usecase.LikeUsecase
	CommentUsecase            *comment_usecase.CommentUsecase
	SettingsUsecase           *settings_usecase.SettingsUsecase
	FursanDBRepository        *fursan_db.Repository
}

// NewApplicationComponents builds the dependency graph from a live pool.
// Accepting the pool interface lets tests substitute a mock connection.
func NewApplicationComponents(pool fursan_db.DBPool, cfg *config.Config) *ApplicationComponents {
	repository := fursan_db.NewRepository(pool)
	queryTimeout := cfg.Database.QueryTimeout

	searchGatewayImpl := search_gateway.NewSearchGateway(repository)
	suggestionGatewayImpl := suggestion_gateway.NewSuggestionGateway(repository)
	tagGatewayImpl := tag_gateway.NewTagGateway(repository)
	articleGatewayImpl := article_gateway.NewArticleGateway(repository)
	sectionGatewayImpl := section_gateway.NewSectionGateway(repository)
	likeGatewayImpl := like_gateway.NewLikeGateway(repository)
	commentGatewayImpl := comment_gateway.NewCommentGateway(repository)
	settingsGatewayImpl := settings_gateway.NewSettingsGateway(repository)

	return &ApplicationComponents{
		SearchContentUsecase:      search_content_usecase.NewSearchContentUsecase(searchGatewayImpl, searchGatewayImpl, likeGatewayImpl, queryTimeout),
		SuggestionUsecase:         suggestion_usecase.NewSuggestionUsecase(suggestionGatewayImpl, queryTimeout),
		ListTagsUsecase:           list_tags_usecase.NewListTagsUsecase(tagGatewayImpl, queryTimeout),
		FetchArticlesByTagUsecase: fetch_articles_by_tag_usecase.NewFetchArticlesByTagUsecase(tagGatewayImpl, likeGatewayImpl, queryTimeout),
		SectionUsecase:            section_usecase.NewSectionUsecase(sectionGatewayImpl, queryTimeout),
		ArticleUsecase:            article_usecase.NewArticleUsecase(articleGatewayImpl, likeGatewayImpl, queryTimeout),
		LikeUsecase:               like_usecase.NewLikeUsecase(likeGatewayImpl, articleGatewayImpl, queryTimeout),
		CommentUsecase:            comment_usecase.NewCommentUsecase(commentGatewayImpl, articleGatewayImpl, queryTimeout),
		SettingsUsecase:           settings_usecase.NewSettingsUsecase(settingsGatewayImpl, queryTimeout),
		FursanDBRepository:        repository,
	}
}
