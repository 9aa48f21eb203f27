package donation

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockDonationRepository implements DonationRepository for tests.
type mockDonationRepository struct {
	donations map[uint]*entities.Donation
	nextID    uint

	createErr   error
	setTokenErr error
	deleteErr   error

	deletedIDs []uint
	updates    map[string]interface{}
}

func newMockDonationRepository() *mockDonationRepository {
	return &mockDonationRepository{
		donations: map[uint]*entities.Donation{},
		nextID:    1,
	}
}

func (m *mockDonationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	if m.createErr != nil {
		return m.createErr
	}
	if donation.ID == 0 {
		donation.ID = m.nextID
		m.nextID++
	}
	copied := *donation
	m.donations[donation.ID] = &copied
	return nil
}

func (m *mockDonationRepository) GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error) {
	d, ok := m.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (m *mockDonationRepository) GetDonationByIDAndPending(ctx context.Context, id uint, pending bool) (*entities.Donation, error) {
	d, ok := m.donations[id]
	if !ok || d.Pending != pending {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (m *mockDonationRepository) UpdateDonationFields(ctx context.Context, id uint, updates map[string]interface{}) error {
	m.updates = updates
	d, ok := m.donations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["state"]; ok {
		d.State = v.(string)
	}
	if v, ok := updates["pending"]; ok {
		d.Pending = v.(bool)
	}
	if v, ok := updates["date"]; ok {
		d.Date = v.(string)
	}
	return nil
}

func (m *mockDonationRepository) SetDonationToken(ctx context.Context, id uint, token string) error {
	if m.setTokenErr != nil {
		return m.setTokenErr
	}
	if d, ok := m.donations[id]; ok {
		d.Token = token
	}
	return nil
}

func (m *mockDonationRepository) DeleteDonation(ctx context.Context, id uint) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	if _, ok := m.donations[id]; !ok {
		return 0, nil
	}
	delete(m.donations, id)
	return 1, nil
}

func (m *mockDonationRepository) GetDonations(ctx context.Context, id *uint) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, d := range m.donations {
		if id != nil && d.ID != *id {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDonationRepository) GetPendingDonations(ctx context.Context) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, d := range m.donations {
		if d.Pending && d.Token != "" {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockDonationRepository) GetDonationsByDateRange(ctx context.Context, startDate, endDate string) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, d := range m.donations {
		if d.Date >= startDate && d.Date <= endDate {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockDonationRepository) CountDonationsByDonor(ctx context.Context, donorID uint) (int64, error) {
	var count int64
	for _, d := range m.donations {
		if d.DonorID == donorID {
			count++
		}
	}
	return count, nil
}

func (m *mockDonationRepository) GetDonationIDsByDonor(ctx context.Context, donorID uint) ([]uint, error) {
	var ids []uint
	for _, d := range m.donations {
		if d.DonorID == donorID {
			ids = append(ids, d.ID)
		}
	}
	return ids, nil
}

// mockFoodService implements food.FoodService.
type mockFoodService struct {
	attached  map[uint][]*entities.FoodItem
	attachErr error
	detachErr error
	detached  []uint
	total     int64
}

func newMockFoodService() *mockFoodService {
	return &mockFoodService{attached: map[uint][]*entities.FoodItem{}}
}

func (m *mockFoodService) Attach(ctx context.Context, donationID uint, items []domain.FoodItemRequest) ([]*entities.FoodItem, error) {
	if m.attachErr != nil {
		return nil, m.attachErr
	}
	var persisted []*entities.FoodItem
	for i, item := range items {
		persisted = append(persisted, &entities.FoodItem{
			ID:         uint(i + 1),
			DonationID: donationID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Category:   item.Category,
			Perishable: item.Perishable,
		})
	}
	m.attached[donationID] = persisted
	return persisted, nil
}

func (m *mockFoodService) ItemsForDonation(ctx context.Context, donationID uint) ([]*entities.FoodItem, error) {
	return m.attached[donationID], nil
}

func (m *mockFoodService) TotalsForDonations(ctx context.Context, donationIDs []uint) (int64, error) {
	return m.total, nil
}

func (m *mockFoodService) Detach(ctx context.Context, donationID uint) error {
	if m.detachErr != nil {
		return m.detachErr
	}
	m.detached = append(m.detached, donationID)
	delete(m.attached, donationID)
	return nil
}

// mockQRTokenService implements qrtoken.QRTokenService.
type mockQRTokenService struct {
	issueErr error
	issued   []uint
}

func (m *mockQRTokenService) Issue(donationID uint) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	m.issued = append(m.issued, donationID)
	return "dG9rZW4=", nil
}

func (m *mockQRTokenService) ResolvePayload(payload string) (uint, error) {
	return 0, nil
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func validCreateRequest() domain.CreateDonationRequest {
	return domain.CreateDonationRequest{
		ID:      1,
		Date:    "2025-03-01",
		Time:    "10:30",
		State:   "registered",
		DonorID: 7,
		PointID: 3,
		Type:    "food",
		Pending: boolPtr(true),
		Foods: []domain.FoodItemRequest{
			{Name: "Rice", Quantity: 500, Category: "grain", Perishable: false},
		},
	}
}

func newService(repo *mockDonationRepository, foods *mockFoodService, qr *mockQRTokenService) DonationService {
	return NewDonationService(repo, foods, qr)
}

func TestCreateDonation_HappyPath(t *testing.T) {
	repo := newMockDonationRepository()
	foods := newMockFoodService()
	qr := &mockQRTokenService{}
	svc := newService(repo, foods, qr)

	res, err := svc.CreateDonation(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, uint(1), res.DonationID)
	assert.Equal(t, "dG9rZW4=", res.QRCode)

	stored := repo.donations[1]
	require.NotNil(t, stored)
	assert.Equal(t, "dG9rZW4=", stored.Token)
	assert.True(t, stored.Pending)
	assert.Len(t, foods.attached[1], 1)
	assert.Equal(t, "Rice", foods.attached[1][0].Name)
}

func TestCreateDonation_EmptyFoodsRejected(t *testing.T) {
	repo := newMockDonationRepository()
	foods := newMockFoodService()
	svc := newService(repo, foods, &mockQRTokenService{})

	req := validCreateRequest()
	req.Foods = nil

	_, err := svc.CreateDonation(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrFoodItemsRequired)

	// Caller-visible no-op: no donation row survives.
	assert.Empty(t, repo.donations)
}

func TestCreateDonation_InvalidDateRejected(t *testing.T) {
	svc := newService(newMockDonationRepository(), newMockFoodService(), &mockQRTokenService{})

	req := validCreateRequest()
	req.Date = "01-03-2025"

	_, err := svc.CreateDonation(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestCreateDonation_FoodFailureRollsBackDonation(t *testing.T) {
	repo := newMockDonationRepository()
	foods := newMockFoodService()
	foods.attachErr = domain.ErrPersistenceFailed
	svc := newService(repo, foods, &mockQRTokenService{})

	_, err := svc.CreateDonation(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, domain.ErrPersistenceFailed)

	// Compensating delete removed the orphan donation row.
	assert.Equal(t, []uint{1}, repo.deletedIDs)
	assert.Empty(t, repo.donations)
}

func TestCreateDonation_TokenFailureKeepsDonation(t *testing.T) {
	repo := newMockDonationRepository()
	foods := newMockFoodService()
	qr := &mockQRTokenService{issueErr: errors.New("encoder broken")}
	svc := newService(repo, foods, qr)

	_, err := svc.CreateDonation(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, domain.ErrTokenIssuanceFailed)

	// Donation and foods survive so the caller can retry issuance alone.
	assert.NotNil(t, repo.donations[1])
	assert.Len(t, foods.attached[1], 1)
	assert.Empty(t, repo.deletedIDs)
}

func TestCreateDonation_TokenWriteFailureKeepsDonation(t *testing.T) {
	repo := newMockDonationRepository()
	repo.setTokenErr = errors.New("write refused")
	foods := newMockFoodService()
	svc := newService(repo, foods, &mockQRTokenService{})

	_, err := svc.CreateDonation(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, domain.ErrTokenIssuanceFailed)
	assert.NotNil(t, repo.donations[1])
}

func TestGetDonationToken_OnlyWhilePending(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[5] = &entities.Donation{ID: 5, Pending: true, Token: "dG9rZW4="}
	svc := newService(repo, newMockFoodService(), &mockQRTokenService{})

	res, err := svc.GetDonationToken(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "dG9rZW4=", res.QR)

	// Resolved donation: token stays stored but becomes inaccessible.
	repo.donations[5].Pending = false
	_, err = svc.GetDonationToken(context.Background(), 5)
	require.ErrorIs(t, err, domain.ErrDonationNotFound)
	assert.Equal(t, "dG9rZW4=", repo.donations[5].Token)
}

func TestGetDonationToken_TokenlessAndAbsentCollapse(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[6] = &entities.Donation{ID: 6, Pending: true}
	svc := newService(repo, newMockFoodService(), &mockQRTokenService{})

	_, err := svc.GetDonationToken(context.Background(), 6)
	require.ErrorIs(t, err, domain.ErrDonationNotFound)

	_, err = svc.GetDonationToken(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestUpdateDonation_NotFound(t *testing.T) {
	svc := newService(newMockDonationRepository(), newMockFoodService(), &mockQRTokenService{})

	_, err := svc.UpdateDonation(context.Background(), domain.UpdateDonationRequest{ID: 42})
	require.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestUpdateDonation_AppliesOnlyProvidedFields(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[1] = &entities.Donation{ID: 1, State: "registered", Pending: true, Date: "2025-03-01"}
	svc := newService(repo, newMockFoodService(), &mockQRTokenService{})

	res, err := svc.UpdateDonation(context.Background(), domain.UpdateDonationRequest{
		ID:      1,
		State:   strPtr("collected"),
		Pending: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "collected", res.State)
	assert.False(t, res.Pending)
	assert.Equal(t, "2025-03-01", res.Date)

	_, dateTouched := repo.updates["date"]
	assert.False(t, dateTouched)
	assert.Len(t, repo.updates, 2)
}

func TestDeleteDonation_CascadesToFoodLedger(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[1] = &entities.Donation{ID: 1}
	foods := newMockFoodService()
	foods.attached[1] = []*entities.FoodItem{{ID: 1, DonationID: 1}}
	svc := newService(repo, foods, &mockQRTokenService{})

	require.NoError(t, svc.DeleteDonation(context.Background(), 1))

	assert.Equal(t, []uint{1}, foods.detached)
	assert.Empty(t, repo.donations)
}

func TestDeleteDonation_NotFound(t *testing.T) {
	svc := newService(newMockDonationRepository(), newMockFoodService(), &mockQRTokenService{})
	err := svc.DeleteDonation(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestGetDonationDetails_JoinsFoodAndDonor(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[1] = &entities.Donation{
		ID:      1,
		Pending: true,
		Donor:   &entities.Donor{ID: 7, Name: "Ana", Phone: "555-0100", Email: "ana@example.com", Password: "secret-hash"},
	}
	foods := newMockFoodService()
	foods.attached[1] = []*entities.FoodItem{
		{ID: 1, DonationID: 1, Name: "Rice", Quantity: 500, Category: "grain"},
	}
	svc := newService(repo, foods, &mockQRTokenService{})

	res, err := svc.GetDonationDetails(context.Background(), 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalFoodItems)
	require.Len(t, res.FoodItems, 1)
	assert.Equal(t, "Rice", res.FoodItems[0].Name)
	require.NotNil(t, res.Donor)
	assert.Equal(t, "Ana", res.Donor.Name)
	assert.Equal(t, "ana@example.com", res.Donor.Email)
}

func TestGetDonationDetails_PendingMismatchIsNotFound(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[1] = &entities.Donation{ID: 1, Pending: true}
	svc := newService(repo, newMockFoodService(), &mockQRTokenService{})

	_, err := svc.GetDonationDetails(context.Background(), 1, boolPtr(false))
	require.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestListDonations_DetailEnrichment(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[1] = &entities.Donation{ID: 1, Donor: &entities.Donor{ID: 7, Name: "Ana"}}
	foods := newMockFoodService()
	foods.attached[1] = []*entities.FoodItem{
		{ID: 1, DonationID: 1, Name: "Rice", Quantity: 500},
		{ID: 2, DonationID: 1, Name: "Beans", Quantity: 250},
	}
	svc := newService(repo, foods, &mockQRTokenService{})

	plain, err := svc.ListDonations(context.Background(), nil, false)
	require.NoError(t, err)
	require.Len(t, plain, 1)
	assert.Nil(t, plain[0].FoodItems)
	assert.Nil(t, plain[0].Donor)

	detailed, err := svc.ListDonations(context.Background(), nil, true)
	require.NoError(t, err)
	require.Len(t, detailed, 1)
	assert.Len(t, detailed[0].FoodItems, 2)
	assert.Equal(t, 2, detailed[0].TotalFoodItems)
	require.NotNil(t, detailed[0].Donor)
}

func TestListDonations_ByIDMissingYieldsEmpty(t *testing.T) {
	svc := newService(newMockDonationRepository(), newMockFoodService(), &mockQRTokenService{})

	id := uint(1)
	res, err := svc.ListDonations(context.Background(), &id, false)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestListDonationsByDateRange_Validation(t *testing.T) {
	svc := newService(newMockDonationRepository(), newMockFoodService(), &mockQRTokenService{})

	_, err := svc.ListDonationsByDateRange(context.Background(), "not-a-date", "2025-03-01")
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = svc.ListDonationsByDateRange(context.Background(), "2025-03-02", "2025-03-01")
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestListPendingDonations_SkipsIncompleteIntakes(t *testing.T) {
	repo := newMockDonationRepository()
	repo.donations[1] = &entities.Donation{ID: 1, Pending: true, Token: "dG9rZW4="}
	repo.donations[2] = &entities.Donation{ID: 2, Pending: true} // mid-creation, no token yet
	repo.donations[3] = &entities.Donation{ID: 3, Pending: false, Token: "dG9rZW4="}
	svc := newService(repo, newMockFoodService(), &mockQRTokenService{})

	res, err := svc.ListPendingDonations(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, uint(1), res[0].ID)
}
