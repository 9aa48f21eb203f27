package food

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFoodRepository struct {
	inserted  []*entities.FoodItem
	insertErr error
	byDonation map[uint][]*entities.FoodItem
	sum        int64
	sumErr     error
	deleted    []uint
}

func newMockFoodRepository() *mockFoodRepository {
	return &mockFoodRepository{byDonation: map[uint][]*entities.FoodItem{}}
}

func (m *mockFoodRepository) BulkInsertFoodItems(ctx context.Context, items []*entities.FoodItem) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, items...)
	return nil
}

func (m *mockFoodRepository) GetFoodItemsByDonationID(ctx context.Context, donationID uint) ([]*entities.FoodItem, error) {
	return m.byDonation[donationID], nil
}

func (m *mockFoodRepository) DeleteFoodItemsByDonationID(ctx context.Context, donationID uint) error {
	m.deleted = append(m.deleted, donationID)
	return nil
}

func (m *mockFoodRepository) SumQuantitiesForDonations(ctx context.Context, donationIDs []uint) (int64, error) {
	if m.sumErr != nil {
		return 0, m.sumErr
	}
	if len(donationIDs) == 0 {
		return 0, nil
	}
	return m.sum, nil
}

func TestAttach_PersistsAllItems(t *testing.T) {
	repo := newMockFoodRepository()
	svc := NewFoodService(repo)

	items := []domain.FoodItemRequest{
		{Name: "Rice", Quantity: 500, Category: "grain", Perishable: false},
		{Name: "Milk", Quantity: 100, Category: "dairy", Perishable: true},
	}

	persisted, err := svc.Attach(context.Background(), 3, items)
	require.NoError(t, err)
	require.Len(t, persisted, 2)

	for _, item := range persisted {
		assert.Equal(t, uint(3), item.DonationID)
	}
	assert.Len(t, repo.inserted, 2)
	assert.True(t, repo.inserted[1].Perishable)
}

func TestAttach_EmptyListRejected(t *testing.T) {
	svc := NewFoodService(newMockFoodRepository())

	_, err := svc.Attach(context.Background(), 1, nil)
	require.ErrorIs(t, err, domain.ErrFoodItemsRequired)
}

func TestAttach_ValidationNamesFirstOffendingField(t *testing.T) {
	repo := newMockFoodRepository()
	svc := NewFoodService(repo)

	cases := []struct {
		name  string
		items []domain.FoodItemRequest
		field string
	}{
		{
			name:  "missing name",
			items: []domain.FoodItemRequest{{Quantity: 10, Category: "grain"}},
			field: "name",
		},
		{
			name:  "non-positive quantity",
			items: []domain.FoodItemRequest{{Name: "Rice", Quantity: 0, Category: "grain"}},
			field: "quantity",
		},
		{
			name:  "missing category",
			items: []domain.FoodItemRequest{{Name: "Rice", Quantity: 10}},
			field: "category",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Attach(context.Background(), 1, tc.items)
			require.ErrorIs(t, err, domain.ErrInvalidFoodItem)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	// Nothing was written for any rejected batch.
	assert.Empty(t, repo.inserted)
}

func TestAttach_SecondItemInvalidWritesNothing(t *testing.T) {
	repo := newMockFoodRepository()
	svc := NewFoodService(repo)

	items := []domain.FoodItemRequest{
		{Name: "Rice", Quantity: 500, Category: "grain"},
		{Name: "", Quantity: 100, Category: "dairy"},
	}

	_, err := svc.Attach(context.Background(), 1, items)
	require.ErrorIs(t, err, domain.ErrInvalidFoodItem)
	assert.Empty(t, repo.inserted)
}

func TestAttach_BulkInsertFailureSurfacesPersistenceError(t *testing.T) {
	repo := newMockFoodRepository()
	repo.insertErr = errors.New("connection reset")
	svc := NewFoodService(repo)

	_, err := svc.Attach(context.Background(), 1, []domain.FoodItemRequest{
		{Name: "Rice", Quantity: 500, Category: "grain"},
	})
	require.ErrorIs(t, err, domain.ErrPersistenceFailed)
}

func TestTotalsForDonations_EmptySetIsZero(t *testing.T) {
	repo := newMockFoodRepository()
	repo.sum = 750
	svc := NewFoodService(repo)

	total, err := svc.TotalsForDonations(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, total)

	total, err = svc.TotalsForDonations(context.Background(), []uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(750), total)
}

func TestDetach_RemovesLedger(t *testing.T) {
	repo := newMockFoodRepository()
	svc := NewFoodService(repo)

	require.NoError(t, svc.Detach(context.Background(), 4))
	assert.Equal(t, []uint{4}, repo.deleted)
}
