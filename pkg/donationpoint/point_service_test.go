package donationpoint

import (
	"Punto-Donativo-Backend/domain"
	"Punto-Donativo-Backend/entities"
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockPointRepository struct {
	points  map[uint]*entities.DonationPoint
	nextID  uint
	updates map[string]interface{}
}

func newMockPointRepository() *mockPointRepository {
	return &mockPointRepository{points: map[uint]*entities.DonationPoint{}, nextID: 1}
}

func (m *mockPointRepository) CreatePoint(ctx context.Context, point *entities.DonationPoint) error {
	if point.ID == 0 {
		point.ID = m.nextID
		m.nextID++
	}
	m.points[point.ID] = point
	return nil
}

func (m *mockPointRepository) GetPointByID(ctx context.Context, id uint) (*entities.DonationPoint, error) {
	p, ok := m.points[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockPointRepository) GetPoints(ctx context.Context, name string) ([]*entities.DonationPoint, error) {
	var result []*entities.DonationPoint
	for _, p := range m.points {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPointRepository) UpdatePointFields(ctx context.Context, id uint, updates map[string]interface{}) (int64, error) {
	m.updates = updates
	p, ok := m.points[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := updates["address"]; ok {
		p.Address = v.(string)
	}
	return 1, nil
}

func (m *mockPointRepository) DeletePoint(ctx context.Context, id uint) (int64, error) {
	if _, ok := m.points[id]; !ok {
		return 0, nil
	}
	delete(m.points, id)
	return 1, nil
}

type mockS3 struct{}

func (m *mockS3) UploadFile(key string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	return folder + "/" + key + ".png", nil
}

func (m *mockS3) GetPublicLinkKey(key string) string {
	return "https://bucket.s3.test.amazonaws.com/" + key
}

func TestCreateAndGetPoint(t *testing.T) {
	svc := NewPointService(newMockPointRepository(), &mockS3{})

	created, err := svc.CreatePoint(context.Background(), domain.CreatePointRequest{
		Name:    "Centro Norte",
		Address: "Av. Principal 100",
		Lat:     19.43,
		Lon:     -99.13,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetPointByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Centro Norte", got.Name)
}

func TestUpdatePoint_NoFieldsRejected(t *testing.T) {
	svc := NewPointService(newMockPointRepository(), &mockS3{})

	_, err := svc.UpdatePoint(context.Background(), 1, domain.UpdatePointRequest{})
	require.ErrorIs(t, err, domain.ErrNoUpdatableFields)
}

func TestUpdatePoint_AppliesSubset(t *testing.T) {
	repo := newMockPointRepository()
	repo.points[1] = &entities.DonationPoint{ID: 1, Name: "Old", Address: "Addr", Lat: 1, Lon: 2}
	svc := NewPointService(repo, &mockS3{})

	name := "New"
	res, err := svc.UpdatePoint(context.Background(), 1, domain.UpdatePointRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New", res.Name)
	assert.Len(t, repo.updates, 1)
}

func TestUpdatePoint_NotFound(t *testing.T) {
	svc := NewPointService(newMockPointRepository(), &mockS3{})

	name := "New"
	_, err := svc.UpdatePoint(context.Background(), 9, domain.UpdatePointRequest{Name: &name})
	require.ErrorIs(t, err, domain.ErrDonationPointNotFound)
}

func TestDeletePoint_NotFound(t *testing.T) {
	svc := NewPointService(newMockPointRepository(), &mockS3{})
	err := svc.DeletePoint(context.Background(), 5)
	require.ErrorIs(t, err, domain.ErrDonationPointNotFound)
}
