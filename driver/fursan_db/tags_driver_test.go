package fursan_db

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_FetchTagCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	rows := pgxmock.NewRows([]string{"tag", "count"}).
		AddRow("الفقه", 3).
		AddRow("الطهارة", 1)

	mock.ExpectQuery("SELECT (.+) FROM articles").WillReturnRows(rows)

	tags, err := repo.FetchTagCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "الفقه", tags[0].Name)
	assert.Equal(t, 3, tags[0].Count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchArticlesByTag(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	now := time.Now().UTC()
	rows := articleRows().AddRow(
		"a-1", "فقه الصلاة", "شروط الصلاة", "الشيخ أحمد", "sec-1",
		nil, nil, []string{"الفقه", "الصلاة"}, 0, now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM articles").
		WithArgs("الفقه").
		WillReturnRows(rows)

	articles, err := repo.FetchArticlesByTag(context.Background(), "الفقه")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Contains(t, articles[0].Tags, "الفقه")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchTagCounts_StoreFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM articles").WillReturnError(assert.AnError)

	_, err = repo.FetchTagCounts(context.Background())
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
