package like_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fursan/domain"
	"fursan/utils/errors"
)

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

type mockArticlePort struct {
	mock.Mock
}

func (m *mockArticlePort) CreateArticle(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticlePort) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *mockArticlePort) FetchArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticlePort) FetchArticlesBySection(ctx context.Context, sectionID string) ([]domain.Article, error) {
	args := m.Called(ctx, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *mockArticlePort) UpdateArticle(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *mockArticlePort) DeleteArticle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func authedContext(userID string) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func TestLikeUsecase_Like(t *testing.T) {
	likePort := &mockLikePort{}
	articlePort := &mockArticlePort{}
	uc := NewLikeUsecase(likePort, articlePort, 5*time.Second)

	articlePort.On("FetchArticleByID", mock.Anything, "a-1").Return(&domain.Article{ID: "a-1"}, nil)
	likePort.On("LikeArticle", mock.Anything, "user-1", "a-1").Return(nil)

	err := uc.Like(authedContext("user-1"), "a-1")
	require.NoError(t, err)
	likePort.AssertExpectations(t)
}

func TestLikeUsecase_LikeRequiresAuth(t *testing.T) {
	likePort := &mockLikePort{}
	articlePort := &mockArticlePort{}
	uc := NewLikeUsecase(likePort, articlePort, 5*time.Second)

	err := uc.Like(context.Background(), "a-1")
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.ErrCodeAuth, appErr.Code)
	likePort.AssertNotCalled(t, "LikeArticle")
}

func TestLikeUsecase_LikeMissingArticle(t *testing.T) {
	likePort := &mockLikePort{}
	articlePort := &mockArticlePort{}
	uc := NewLikeUsecase(likePort, articlePort, 5*time.Second)

	articlePort.On("FetchArticleByID", mock.Anything, "ghost").Return(nil, errors.ErrArticleNotFound)

	err := uc.Like(authedContext("user-1"), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrArticleNotFound))
	likePort.AssertNotCalled(t, "LikeArticle")
}

func TestLikeUsecase_LikeTwiceReturnsAlreadyLiked(t *testing.T) {
	likePort := &mockLikePort{}
	articlePort := &mockArticlePort{}
	uc := NewLikeUsecase(likePort, articlePort, 5*time.Second)

	articlePort.On("FetchArticleByID", mock.Anything, "a-1").Return(&domain.Article{ID: "a-1"}, nil)
	likePort.On("LikeArticle", mock.Anything, "user-1", "a-1").Return(errors.ErrAlreadyLiked)

	err := uc.Like(authedContext("user-1"), "a-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyLiked))
}

func TestLikeUsecase_UnlikeWithoutLike(t *testing.T) {
	likePort := &mockLikePort{}
	articlePort := &mockArticlePort{}
	uc := NewLikeUsecase(likePort, articlePort, 5*time.Second)

	articlePort.On("FetchArticleByID", mock.Anything, "a-1").Return(&domain.Article{ID: "a-1"}, nil)
	likePort.On("UnlikeArticle", mock.Anything, "user-1", "a-1").Return(errors.ErrNotLiked)

	err := uc.Unlike(authedContext("user-1"), "a-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotLiked))
}

func TestLikeUsecase_Unlike(t *testing.T) {
	likePort := &mockLikePort{}
	articlePort := &mockArticlePort{}
	uc := NewLikeUsecase(likePort, articlePort, 5*time.Second)

	articlePort.On("FetchArticleByID", mock.Anything, "a-1").Return(&domain.Article{ID: "a-1"}, nil)
	likePort.On("UnlikeArticle", mock.Anything, "user-1", "a-1").Return(nil)

	err := uc.Unlike(authedContext("user-1"), "a-1")
	require.NoError(t, err)
	likePort.AssertExpectations(t)
}
