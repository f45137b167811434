package fursan_db

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"fursan/domain"
	"fursan/utils/logger"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests
	var buf bytes.Buffer
	logger.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func articleRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "title", "content", "author", "section_id", "image_data",
		"image_name", "tags", "likes_count", "created_at", "updated_at",
	})
}

func TestRepository_SearchArticles_TermOnly(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	now := time.Now().UTC()
	rows := articleRows().AddRow(
		"a-1", "توحيد الألوهية", "شرح مفصل", "الشيخ محمد", "sec-1",
		nil, nil, []string{"العقيدة"}, 3, now, now,
	)

	q := domain.NewSearchQuery("توحيد", "", "", "", "", "", "")
	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(q.Pattern).
		WillReturnRows(rows)

	articles, err := repo.SearchArticles(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "a-1", articles[0].ID)
	assert.Equal(t, 3, articles[0].LikesCount)
	assert.Nil(t, articles[0].IsLiked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchArticles_AllFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	q := domain.NewSearchQuery("الصلاة", "sec-1", "الشيخ", "الفقه,الطهارة", "2024-01-01", "2024-12-31", "date_desc")

	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(q.Pattern, "sec-1", "الشيخ", q.Tags, *q.From, *q.To).
		WillReturnRows(articleRows())

	articles, err := repo.SearchArticles(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.NotNil(t, articles, "zero matches is a normal empty result")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchArticles_AuthorFilterEscapesLikeMetachars(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	// A wildcard author must bind as a literal, not match every row.
	q := domain.NewSearchQuery("", "", "%", "", "", "", "")
	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(`\%`).
		WillReturnRows(articleRows())

	_, err = repo.SearchArticles(context.Background(), q)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, "الشيخ", escapeLikePattern("الشيخ"))
	assert.Equal(t, `\%`, escapeLikePattern("%"))
	assert.Equal(t, `a\_b`, escapeLikePattern("a_b"))
	assert.Equal(t, `\\\%`, escapeLikePattern(`\%`))
}

func TestRepository_SearchArticles_StoreFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	q := domain.NewSearchQuery("x", "", "", "", "", "", "")
	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs(q.Pattern).
		WillReturnError(assert.AnError)

	_, err = repo.SearchArticles(context.Background(), q)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchSections(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	now := time.Now().UTC()
	desc := "قسم مخصص للعقيدة"
	rows := pgxmock.NewRows([]string{"id", "name", "description", "created_at"}).
		AddRow("sec-1", "العقيدة الإسلامية", &desc, now)

	mock.ExpectQuery("SELECT (.+) FROM sections").
		WithArgs("[اأإآ]لعق[يئ]دة").
		WillReturnRows(rows)

	sections, err := repo.SearchSections(context.Background(), "[اأإآ]لعق[يئ]دة")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "العقيدة الإسلامية", sections[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NilPool(t *testing.T) {
	repo := NewRepository(nil)
	assert.Nil(t, repo)

	var zero *Repository
	_, err := zero.SearchArticles(context.Background(), domain.SearchQuery{})
	assert.Error(t, err)
}
