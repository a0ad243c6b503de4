package company

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/codex-company-registry/internal/core/result"
	"github.com/ogurasousui/codex-company-registry/internal/core/retry"
	"github.com/ogurasousui/codex-company-registry/internal/core/store"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindAll(ctx context.Context) ([]*Company, error) {
	args := m.Called(ctx)
	return companiesArg(args.Get(0)), args.Error(1)
}

func (m *mockStore) Find(ctx context.Context, where store.Predicate) ([]*Company, error) {
	args := m.Called(ctx, where)
	return companiesArg(args.Get(0)), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, c *Company) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, c *Company) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, where store.Predicate) (bool, error) {
	args := m.Called(ctx, where)
	return args.Bool(0), args.Error(1)
}

func companiesArg(v any) []*Company {
	if v == nil {
		return nil
	}
	return v.([]*Company)
}

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestRepository(s *mockStore) *StoreRepository {
	exec := retry.NewExecutor(retry.Policy{MaxRetries: 3, BaseDelay: time.Millisecond}, nil)
	repo := NewStoreRepository(s, exec, nil, stubClock{now: fixedNow}, nil)
	repo.newID = func() string { return "company-1" }
	return repo
}

func byKey(siteID, code string) store.Predicate {
	return store.Where(store.Eq(FieldSiteID, siteID), store.Eq(FieldCode, code))
}

func byCode(code string) store.Predicate {
	return store.Where(store.Eq(FieldCode, code))
}

func TestStoreRepository_CreateAssignsIdentity(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byKey("S1", "C1")).Return([]*Company{}, nil).Once()
	s.On("Insert", mock.Anything, mock.MatchedBy(func(c *Company) bool {
		return c.ID == "company-1" && c.Status == StatusActive && c.CreatedAt.Equal(fixedNow)
	})).Return(true, nil).Once()

	repo := newTestRepository(s)
	input := &Company{SiteID: "S1", Code: "C1", Name: "Acme"}

	res, err := repo.Create(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, res.IsSuccess)
	assert.Equal(t, "Company details saved successfully.", res.Message)
	assert.Equal(t, fixedNow, res.Timestamp)
	assert.Equal(t, "company-1", input.ID)
	s.AssertExpectations(t)
}

func TestStoreRepository_CreateRejectsDuplicate(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byKey("S1", "C1")).
		Return([]*Company{{ID: "existing", SiteID: "S1", Code: "C1"}}, nil).Once()

	repo := newTestRepository(s)

	res, err := repo.Create(context.Background(), &Company{SiteID: "S1", Code: "C1", Name: "Other"})
	require.NoError(t, err)
	assert.False(t, res.IsSuccess)
	assert.Equal(t, result.ReasonConflict, res.Reason)
	assert.Equal(t, "Company already found with the same company code.", res.Message)
	s.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestStoreRepository_CreateMapsUniqueViolationToConflict(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byKey("S1", "C1")).Return([]*Company{}, nil).Once()
	s.On("Insert", mock.Anything, mock.Anything).Return(false, store.ErrDuplicate).Once()

	repo := newTestRepository(s)

	res, err := repo.Create(context.Background(), &Company{SiteID: "S1", Code: "C1"})
	require.NoError(t, err)
	assert.Equal(t, result.ReasonConflict, res.Reason)
	s.AssertNumberOfCalls(t, "Insert", 1)
}

func TestStoreRepository_CreateReportsRejectedWrite(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, mock.Anything).Return([]*Company{}, nil).Once()
	s.On("Insert", mock.Anything, mock.Anything).Return(false, nil).Once()

	repo := newTestRepository(s)
	input := &Company{SiteID: "S1", Code: "C1"}

	res, err := repo.Create(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, res.IsSuccess)
	assert.Equal(t, "Failed to save company details.", res.Message)
	assert.Empty(t, input.ID)
}

func TestStoreRepository_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	outage := errors.New("connection refused")
	s.On("Find", mock.Anything, mock.Anything).Return(nil, outage)

	repo := newTestRepository(s)

	_, err := repo.Create(context.Background(), &Company{SiteID: "S1", Code: "C1"})
	require.ErrorIs(t, err, outage)
	s.AssertNumberOfCalls(t, "Find", 4)
	s.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestStoreRepository_UpdateTargetMissing(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byCode("C9")).Return([]*Company{}, nil).Once()

	repo := newTestRepository(s)

	res, err := repo.UpdateByCode(context.Background(), "C9", &Company{Name: "X"})
	require.NoError(t, err)
	assert.False(t, res.IsSuccess)
	assert.Equal(t, result.ReasonNotFound, res.Reason)
	assert.Equal(t, "Company not found with the given company code.", res.Message)
	s.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStoreRepository_UpdateIsIdempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming *Company
	}{
		{name: "identical payload", incoming: &Company{SiteID: "S1", Code: "C1", Name: "Acme", Country: "JP"}},
		{name: "partial payload with same values", incoming: &Company{Name: "Acme"}},
		{name: "empty payload", incoming: &Company{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := new(mockStore)
			s.On("Find", mock.Anything, byCode("C1")).
				Return([]*Company{{ID: "id-1", SiteID: "S1", Code: "C1", Name: "Acme", Country: "JP"}}, nil).Once()

			repo := newTestRepository(s)

			res, err := repo.UpdateByCode(context.Background(), "C1", tt.incoming)
			require.NoError(t, err)
			assert.True(t, res.IsSuccess)
			assert.Equal(t, "Same company details already exist.", res.Message)
			assert.Equal(t, result.ReasonUnchanged, res.Reason)
			s.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestStoreRepository_UpdateMergesProvidedFields(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byCode("C1")).
		Return([]*Company{{ID: "id-1", SiteID: "S1", Code: "C1", Name: "Acme", Country: "JP"}}, nil).Once()
	s.On("Update", mock.Anything, mock.MatchedBy(func(c *Company) bool {
		return c.ID == "id-1" && c.Name == "Acme Holdings" && c.Country == "JP" && c.UpdatedAt.Equal(fixedNow)
	})).Return(true, nil).Once()

	repo := newTestRepository(s)

	incoming := &Company{Name: "Acme Holdings"}
	res, err := repo.UpdateByCode(context.Background(), "C1", incoming)
	require.NoError(t, err)
	assert.True(t, res.IsSuccess)
	assert.Equal(t, result.ReasonNone, res.Reason)
	assert.Equal(t, "id-1", incoming.ID)
	assert.Equal(t, "S1", incoming.SiteID)
	assert.Equal(t, "JP", incoming.Country)
	assert.Equal(t, "Company details updated successfully.", res.Message)
	s.AssertExpectations(t)
}

func TestStoreRepository_UpdateRejectsKeyCollision(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byCode("C1")).
		Return([]*Company{{ID: "id-1", SiteID: "S1", Code: "C1"}}, nil).Once()
	s.On("Find", mock.Anything, byKey("S1", "C2")).
		Return([]*Company{{ID: "id-2", SiteID: "S1", Code: "C2"}}, nil).Once()

	repo := newTestRepository(s)

	res, err := repo.UpdateByCode(context.Background(), "C1", &Company{Code: "C2"})
	require.NoError(t, err)
	assert.Equal(t, result.ReasonConflict, res.Reason)
	s.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStoreRepository_UpdateReportsRejectedWrite(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byCode("C1")).
		Return([]*Company{{ID: "id-1", SiteID: "S1", Code: "C1", Name: "Acme"}}, nil).Once()
	s.On("Update", mock.Anything, mock.Anything).Return(false, nil).Once()

	repo := newTestRepository(s)

	res, err := repo.UpdateByCode(context.Background(), "C1", &Company{Name: "Renamed"})
	require.NoError(t, err)
	assert.False(t, res.IsSuccess)
	assert.Equal(t, result.ReasonWriteFailed, res.Reason)
	assert.Equal(t, "Failed to update company details.", res.Message)
}

func TestStoreRepository_DeleteByCode(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		s := new(mockStore)
		s.On("Find", mock.Anything, byCode("C1")).Return([]*Company{}, nil).Once()

		deleted, err := newTestRepository(s).DeleteByCode(context.Background(), "C1")
		require.NoError(t, err)
		assert.False(t, deleted)
		s.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		s := new(mockStore)
		s.On("Find", mock.Anything, byCode("C1")).Return([]*Company{{ID: "id-1", Code: "C1"}}, nil).Once()
		s.On("Delete", mock.Anything, byCode("C1")).Return(true, nil).Once()

		deleted, err := newTestRepository(s).DeleteByCode(context.Background(), "C1")
		require.NoError(t, err)
		assert.True(t, deleted)
		s.AssertExpectations(t)
	})
}

func TestStoreRepository_GetByCode(t *testing.T) {
	t.Parallel()

	s := new(mockStore)
	s.On("Find", mock.Anything, byCode("C1")).Return([]*Company{{ID: "id-1", Code: "C1"}}, nil).Once()
	s.On("Find", mock.Anything, byCode("missing")).Return([]*Company{}, nil).Once()

	repo := newTestRepository(s)

	found, err := repo.GetByCode(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", found.ID)

	_, err = repo.GetByCode(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCompanyNotFound)
}
