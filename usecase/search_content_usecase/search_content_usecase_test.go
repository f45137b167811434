package search_content_usecase

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fursan/domain"
	"fursan/utils/errors"
)

type mockSearchArticlesPort struct {
	mock.Mock
}

func (m *mockSearchArticlesPort) SearchArticles(ctx context.Context, query domain.SearchQuery) ([]domain.Article, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

type mockSearchSectionsPort struct {
	mock.Mock
}

func (m *mockSearchSectionsPort) SearchSections(ctx context.Context, pattern string) ([]domain.Section, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Section), args.Error(1)
}

type mockLikePort struct {
	mock.Mock
}

func (m *mockLikePort) LikeArticle(ctx context.Context, userID string, articleID string) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

func (m *mockLikePort) UnlikeArticle(ctx context.Context, userID string, articleID string) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

func (m *mockLikePort) FetchLikedArticleIDs(ctx context.Context, userID string, articleIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, userID, articleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func newUsecase() (*SearchContentUsecase, *mockSearchArticlesPort, *mockSearchSectionsPort, *mockLikePort) {
	articlesPort := &mockSearchArticlesPort{}
	sectionsPort := &mockSearchSectionsPort{}
	likePort := &mockLikePort{}
	uc := NewSearchContentUsecase(articlesPort, sectionsPort, likePort, 5*time.Second)
	return uc, articlesPort, sectionsPort, likePort
}

func TestSearchContentUsecase_NoOpShortCircuit(t *testing.T) {
	uc, articlesPort, sectionsPort, _ := newUsecase()

	query := domain.NewSearchQuery("", "", "", "فقه,عقيدة", "2024-01-01", "", "date_desc")
	require.True(t, query.IsNoOp())

	results, err := uc.Execute(context.Background(), query)
	require.NoError(t, err)

	assert.Empty(t, results.Articles)
	assert.Empty(t, results.Sections)
	assert.Equal(t, 0, results.TotalResults)
	assert.Equal(t, "", results.Query)

	articlesPort.AssertNotCalled(t, "SearchArticles")
	sectionsPort.AssertNotCalled(t, "SearchSections")
}

func TestSearchContentUsecase_TermSearchesArticlesAndSections(t *testing.T) {
	uc, articlesPort, sectionsPort, _ := newUsecase()

	query := domain.NewSearchQuery("توحيد", "", "", "", "", "", "")

	articles := []domain.Article{{ID: "a-1", Title: "توحيد الألوهية"}}
	sections := []domain.Section{{ID: "s-1", Name: "التوحيد"}}

	articlesPort.On("SearchArticles", mock.Anything, query).Return(articles, nil)
	sectionsPort.On("SearchSections", mock.Anything, query.Pattern).Return(sections, nil)

	results, err := uc.Execute(context.Background(), query)
	require.NoError(t, err)

	assert.Len(t, results.Articles, 1)
	assert.Len(t, results.Sections, 1)
	assert.Equal(t, 2, results.TotalResults)
	assert.Equal(t, "توحيد", results.Query)
	assert.Nil(t, results.Articles[0].IsLiked)

	articlesPort.AssertExpectations(t)
	sectionsPort.AssertExpectations(t)
}

func TestSearchContentUsecase_EchoesRawQueryWithPadding(t *testing.T) {
	uc, articlesPort, sectionsPort, _ := newUsecase()

	query := domain.NewSearchQuery(" توحيد ", "", "", "", "", "", "")
	require.Equal(t, "توحيد", query.Term)

	articlesPort.On("SearchArticles", mock.Anything, query).Return([]domain.Article{}, nil)
	sectionsPort.On("SearchSections", mock.Anything, query.Pattern).Return([]domain.Section{}, nil)

	results, err := uc.Execute(context.Background(), query)
	require.NoError(t, err)

	// Matching uses the trimmed term; the envelope echoes the query as sent.
	assert.Equal(t, " توحيد ", results.Query)
}

func TestSearchContentUsecase_FilterOnlySkipsSections(t *testing.T) {
	uc, articlesPort, sectionsPort, _ := newUsecase()

	query := domain.NewSearchQuery("", "sec-1", "", "", "", "", "")
	require.False(t, query.IsNoOp())

	articlesPort.On("SearchArticles", mock.Anything, query).Return([]domain.Article{{ID: "a-1"}}, nil)

	results, err := uc.Execute(context.Background(), query)
	require.NoError(t, err)

	assert.Len(t, results.Articles, 1)
	assert.Empty(t, results.Sections)
	assert.Equal(t, 1, results.TotalResults)

	sectionsPort.AssertNotCalled(t, "SearchSections")
}

func TestSearchContentUsecase_ResolvesLikesForAuthenticatedUser(t *testing.T) {
	uc, articlesPort, _, likePort := newUsecase()

	query := domain.NewSearchQuery("", "sec-1", "", "", "", "", "")
	articles := []domain.Article{{ID: "a-1"}, {ID: "a-2"}}

	articlesPort.On("SearchArticles", mock.Anything, query).Return(articles, nil)
	likePort.On("FetchLikedArticleIDs", mock.Anything, "user-1", []string{"a-1", "a-2"}).
		Return(map[string]bool{"a-1": true}, nil)

	ctx := domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	results, err := uc.Execute(ctx, query)
	require.NoError(t, err)

	require.Len(t, results.Articles, 2)
	require.NotNil(t, results.Articles[0].IsLiked)
	require.NotNil(t, results.Articles[1].IsLiked)
	assert.True(t, *results.Articles[0].IsLiked)
	assert.False(t, *results.Articles[1].IsLiked)

	likePort.AssertExpectations(t)
}

func TestSearchContentUsecase_LikeResolutionFailureIsNonFatal(t *testing.T) {
	uc, articlesPort, _, likePort := newUsecase()

	query := domain.NewSearchQuery("", "sec-1", "", "", "", "", "")
	articlesPort.On("SearchArticles", mock.Anything, query).Return([]domain.Article{{ID: "a-1"}}, nil)
	likePort.On("FetchLikedArticleIDs", mock.Anything, "user-1", []string{"a-1"}).
		Return(nil, stderrors.New("connection reset"))

	ctx := domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	results, err := uc.Execute(ctx, query)
	require.NoError(t, err)
	require.Len(t, results.Articles, 1)
	assert.Nil(t, results.Articles[0].IsLiked)
}

func TestSearchContentUsecase_StoreErrorWrapped(t *testing.T) {
	uc, articlesPort, sectionsPort, _ := newUsecase()

	query := domain.NewSearchQuery("توحيد", "", "", "", "", "", "")
	articlesPort.On("SearchArticles", mock.Anything, query).Return(nil, stderrors.New("connection refused"))
	sectionsPort.On("SearchSections", mock.Anything, query.Pattern).Return([]domain.Section{}, nil)

	_, err := uc.Execute(context.Background(), query)
	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestSearchContentUsecase_FilterEcho(t *testing.T) {
	uc, articlesPort, sectionsPort, _ := newUsecase()

	query := domain.NewSearchQuery("عقيدة", "sec-1", "الشيخ", "", "2024-01-01", "2024-06-30", "date_asc")
	articlesPort.On("SearchArticles", mock.Anything, query).Return([]domain.Article{}, nil)
	sectionsPort.On("SearchSections", mock.Anything, query.Pattern).Return([]domain.Section{}, nil)

	results, err := uc.Execute(context.Background(), query)
	require.NoError(t, err)

	require.NotNil(t, results.Filters.SectionID)
	assert.Equal(t, "sec-1", *results.Filters.SectionID)
	require.NotNil(t, results.Filters.Author)
	assert.Equal(t, "الشيخ", *results.Filters.Author)
	require.NotNil(t, results.Filters.FromDate)
	assert.Equal(t, "2024-01-01", *results.Filters.FromDate)
	require.NotNil(t, results.Filters.ToDate)
	assert.Equal(t, "2024-06-30", *results.Filters.ToDate)
	assert.Equal(t, "date_asc", results.Filters.SortBy)
}
