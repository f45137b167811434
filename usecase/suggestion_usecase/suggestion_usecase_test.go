package suggestion_usecase

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

type mockSuggestionPort struct {
	mock.Mock
}

func (m *mockSuggestionPort) FetchSuggestionArticles(ctx context.Context, pattern string) ([]domain.SuggestionCandidate, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SuggestionCandidate), args.Error(1)
}

func (m *mockSuggestionPort) FetchSuggestionSectionNames(ctx context.Context, pattern string) ([]string, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newUsecase() (*SuggestionUsecase, *mockSuggestionPort) {
	port := &mockSuggestionPort{}
	return NewSuggestionUsecase(port, 5*time.Second), port
}

func TestSuggestionUsecase_ShortTermReturnsEmpty(t *testing.T) {
	uc, port := newUsecase()

	for _, term := range []string{"", " ", "ت", "  ت  "} {
		results, err := uc.Execute(context.Background(), term)
		require.NoError(t, err)
		assert.Empty(t, results.Suggestions)
	}

	port.AssertNotCalled(t, "FetchSuggestionArticles")
	port.AssertNotCalled(t, "FetchSuggestionSectionNames")
}

func TestSuggestionUsecase_TitlesBeforeAuthorsBeforeSections(t *testing.T) {
	uc, port := newUsecase()

	candidates := []domain.SuggestionCandidate{
		{Title: "توحيد الألوهية", Author: "الشيخ محمد"},
		{Title: "شرح العقيدة", Author: "توفيق السالم"},
	}
	port.On("FetchSuggestionArticles", mock.Anything, mock.Anything).Return(candidates, nil)
	port.On("FetchSuggestionSectionNames", mock.Anything, mock.Anything).Return([]string{"التوحيد"}, nil)

	results, err := uc.Execute(context.Background(), "تو")
	require.NoError(t, err)

	// The matching title comes first, then the matching author, then the
	// section name. "شرح العقيدة" does not match and is skipped.
	assert.Equal(t, []string{"توحيد الألوهية", "توفيق السالم", "التوحيد"}, results.Suggestions)
}

func TestSuggestionUsecase_HamzaVariantsMatch(t *testing.T) {
	uc, port := newUsecase()

	candidates := []domain.SuggestionCandidate{
		{Title: "الإيمان بالله", Author: "الشيخ أحمد"},
	}
	port.On("FetchSuggestionArticles", mock.Anything, mock.Anything).Return(candidates, nil)
	port.On("FetchSuggestionSectionNames", mock.Anything, mock.Anything).Return([]string{}, nil)

	// Plain alif in the query matches the hamza-carrying alif in the title.
	results, err := uc.Execute(context.Background(), "الايمان")
	require.NoError(t, err)
	assert.Equal(t, []string{"الإيمان بالله"}, results.Suggestions)
}

func TestSuggestionUsecase_CaseInsensitiveDedup(t *testing.T) {
	uc, port := newUsecase()

	candidates := []domain.SuggestionCandidate{
		{Title: "Aqeedah Basics", Author: "Author One"},
		{Title: "AQEEDAH BASICS", Author: "Author Two"},
	}
	port.On("FetchSuggestionArticles", mock.Anything, mock.Anything).Return(candidates, nil)
	port.On("FetchSuggestionSectionNames", mock.Anything, mock.Anything).Return([]string{"aqeedah basics"}, nil)

	results, err := uc.Execute(context.Background(), "aqeedah")
	require.NoError(t, err)

	// First-seen casing wins; later variants collapse into it.
	assert.Equal(t, []string{"Aqeedah Basics"}, results.Suggestions)
}

func TestSuggestionUsecase_CapAtTen(t *testing.T) {
	uc, port := newUsecase()

	candidates := make([]domain.SuggestionCandidate, 0, 10)
	titles := []string{
		"توحيد الأسماء", "توحيد الصفات", "توحيد الربوبية", "توحيد الألوهية",
		"توحيد العبادة", "توحيد القصد", "توحيد الاتباع", "توحيد المحبة",
		"توحيد الخوف", "توحيد الرجاء",
	}
	for _, title := range titles {
		candidates = append(candidates, domain.SuggestionCandidate{Title: title, Author: "توفيق"})
	}
	port.On("FetchSuggestionArticles", mock.Anything, mock.Anything).Return(candidates, nil)
	port.On("FetchSuggestionSectionNames", mock.Anything, mock.Anything).Return([]string{"التوحيد"}, nil)

	results, err := uc.Execute(context.Background(), "تو")
	require.NoError(t, err)

	require.Len(t, results.Suggestions, domain.SuggestionCap)
	// All ten slots are taken by titles; the author and section never rank.
	assert.Equal(t, titles, results.Suggestions)
}

func TestSuggestionUsecase_StoreErrorWrapped(t *testing.T) {
	uc, port := newUsecase()

	port.On("FetchSuggestionArticles", mock.Anything, mock.Anything).Return(nil, stderrors.New("connection refused"))

	_, err := uc.Execute(context.Background(), "تو")
	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
}
