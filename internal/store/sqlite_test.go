package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/common"
	"github.com/AlexZinkM/share-a-care/internal/model"
)

const (
	donorA = "0x1234567890123456789012345678901234567890"
	donorB = "0xBEEF00000000000000000000000000000000BEEF"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "share.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "walletConnected", "true"))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path, nil)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "walletConnected")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestLocalState(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "walletAddress")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "walletAddress", donorA))
	require.NoError(t, s.Set(ctx, "walletAddress", donorB))
	v, ok, err := s.Get(ctx, "walletAddress")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, donorB, v)

	require.NoError(t, s.Delete(ctx, "walletAddress"))
	require.NoError(t, s.Delete(ctx, "walletAddress"), "deleting a missing key is not an error")
	_, ok, err = s.Get(ctx, "walletAddress")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPublishers_UniqueIgnoringCase(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	p, err := s.CreatePublisher(ctx, donorB, "config")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, donorB, p.WalletAddress)

	_, err = s.CreatePublisher(ctx, address.Normalize(donorB), "admin")
	assert.ErrorIs(t, err, ErrDuplicate)

	addrs, err := s.ListPublisherAddresses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{donorB}, addrs)
}

func TestPublishers_ConcurrentAddsOnlyOneWins(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreatePublisher(ctx, donorA, "admin")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrDuplicate)
	}
	assert.Equal(t, 1, succeeded)
}

func TestPublishers_Delete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.CreatePublisher(ctx, donorB, "config")
	require.NoError(t, err)

	require.NoError(t, s.DeletePublisher(ctx, address.Normalize(donorB)))
	assert.ErrorIs(t, s.DeletePublisher(ctx, donorB), ErrNotFound)

	pubs, err := s.ListPublishers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pubs)
}

func TestProjects_CRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, model.ProjectInput{Title: "Clean Water", Description: "Wells", FundingGoal: "1500"})
	require.NoError(t, err)
	assert.Equal(t, "Clean Water", p.Title)
	assert.Equal(t, "1500", p.FundingGoal)
	assert.Equal(t, "0", p.CurrentAmount)
	assert.Zero(t, p.SupportersCount)
	assert.False(t, p.CreatedAt.IsZero())

	updated, err := s.UpdateProject(ctx, p.ID, model.ProjectInput{Title: "Clean Water 2", FundingGoal: "2000.5"})
	require.NoError(t, err)
	assert.Equal(t, "Clean Water 2", updated.Title)
	assert.Equal(t, "2000.5", updated.FundingGoal)

	list, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)

	require.NoError(t, s.DeleteProject(ctx, p.ID))
	_, err = s.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteProject(ctx, p.ID), ErrNotFound)

	_, err = s.UpdateProject(ctx, "missing", model.ProjectInput{Title: "x", FundingGoal: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCarePackages_CRUD(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	gold, err := s.CreateCarePackage(ctx, model.CarePackageInput{Name: "Gold", Threshold: "500"})
	require.NoError(t, err)
	_, err = s.CreateCarePackage(ctx, model.CarePackageInput{Name: "Bronze", Threshold: "50"})
	require.NoError(t, err)

	list, err := s.ListCarePackages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bronze", list[0].Name, "ordered by threshold")

	updated, err := s.UpdateCarePackage(ctx, gold.ID, model.CarePackageInput{Name: "Gold+", Threshold: "750", Eligibility: "Top donors"})
	require.NoError(t, err)
	assert.Equal(t, "750", updated.Threshold)
	assert.Equal(t, "Top donors", updated.Eligibility)

	require.NoError(t, s.DeleteCarePackage(ctx, gold.ID))
	assert.ErrorIs(t, s.DeleteCarePackage(ctx, gold.ID), ErrNotFound)
}

func TestDonations_TotalsAndLeaderboard(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	water, err := s.CreateProject(ctx, model.ProjectInput{Title: "Water", FundingGoal: "1000"})
	require.NoError(t, err)
	food, err := s.CreateProject(ctx, model.ProjectInput{Title: "Food", FundingGoal: "500"})
	require.NoError(t, err)

	_, err = s.RecordDonation(ctx, water.ID, donorA, "200")
	require.NoError(t, err)
	_, err = s.RecordDonation(ctx, water.ID, donorB, "100")
	require.NoError(t, err)
	_, err = s.RecordDonation(ctx, food.ID, address.Normalize(donorB), "150.5")
	require.NoError(t, err)

	got, err := s.GetProject(ctx, water.ID)
	require.NoError(t, err)
	assert.Equal(t, "300", got.CurrentAmount)
	assert.Equal(t, 2, got.SupportersCount)
	assert.Equal(t, donorA, got.TopDonor)

	donors, err := s.ListTopDonors(ctx, 0)
	require.NoError(t, err)
	require.Len(t, donors, 2)
	assert.True(t, address.Equal(donorB, donors[0].Address))
	assert.Equal(t, "250.5", donors[0].TotalDonated)
	assert.ElementsMatch(t, []string{water.ID, food.ID}, donors[0].ProjectsSupported)
	assert.Equal(t, "200", donors[1].TotalDonated)

	donors, err = s.ListTopDonors(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, donors, 1)

	mine, err := s.ListUserDonations(ctx, address.Normalize(donorB))
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestRecordDonation_Errors(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.RecordDonation(ctx, "missing", donorA, "10")
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := s.CreateProject(ctx, model.ProjectInput{Title: "Water", FundingGoal: "1000"})
	require.NoError(t, err)

	_, err = s.RecordDonation(ctx, p.ID, "donor.eth", "10")
	assert.ErrorIs(t, err, address.ErrInvalidAddress)

	_, err = s.RecordDonation(ctx, p.ID, donorA, "0")
	assert.Error(t, err)

	_, err = s.RecordDonation(ctx, p.ID, donorA, "10000000000000")
	assert.ErrorIs(t, err, common.ErrAmountTooLarge)

	_, err = s.CreateProject(ctx, model.ProjectInput{Title: "Huge", FundingGoal: "10000000000000"})
	assert.ErrorIs(t, err, common.ErrAmountTooLarge)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "0", got.CurrentAmount)
}

func TestStoreError(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.ListProjects(context.Background())
	require.Error(t, err)
	assert.True(t, IsStoreError(err))

	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "list projects", se.Op)
	assert.False(t, IsStoreError(ErrNotFound))
}
