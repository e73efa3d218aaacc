package service

import (
	"context"
	"testing"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func adminCaller() *entity.Caller { return &entity.Caller{Id: uuid.New(), Role: entity.UserRoleAdmin} }
func userCaller() *entity.Caller  { return &entity.Caller{Id: uuid.New(), Role: entity.UserRoleUser} }

func validSaveCarRequest() *dto.SaveCarRequest {
	return &dto.SaveCarRequest{
		Brand:        "Peugeot",
		Model:        "308",
		Year:         intPtr(2021),
		Price:        floatPtr(18500),
		Mileage:      intPtr(42000),
		FuelType:     "Essence",
		Transmission: "Manuelle",
		BodyType:     "Berline",
		Power:        intPtr(130),
		Color:        "Gris",
		Doors:        intPtr(5),
		Description:  "Entretien à jour",
		Features:     []string{"GPS", "Climatisation"},
		Images:       []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		MainImage:    "/uploads/b.jpg",
	}
}

func newCarServiceForTest() (ICarService, *fakeFactory, *fakeEventPublisher, *fakeCache) {
	factory := newFakeFactory()
	publisher := &fakeEventPublisher{}
	cacheStore := newFakeCache()
	svc := NewCarService(factory, cacheStore, publisher, testLogger())
	return svc, factory, publisher, cacheStore
}

func TestCreateCar(t *testing.T) {
	svc, _, publisher, _ := newCarServiceForTest()

	res, err := svc.Create(context.Background(), adminCaller(), validSaveCarRequest())
	require.NoError(t, err)

	assert.Equal(t, "AVAILABLE", res.Status)
	assert.Nil(t, res.SoldDate)
	assert.Equal(t, "/uploads/b.jpg", res.MainImage)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, res.Images)
	assert.Equal(t, []string{"GPS", "Climatisation"}, res.Features)
	assert.Contains(t, publisher.types(), events.EventCarCreated)
}

func TestCreateCarMainImageFallsBackToFirst(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()

	req := validSaveCarRequest()
	req.MainImage = "/uploads/not-in-list.jpg"

	res, err := svc.Create(context.Background(), adminCaller(), req)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.jpg", res.MainImage)
}

func TestCreateCarRejectsUnknownAttributeValues(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()

	req := validSaveCarRequest()
	req.Brand = "Lada"
	req.FuelType = "Charbon"

	_, err := svc.Create(context.Background(), adminCaller(), req)
	require.Error(t, err)
	appErr := apperror.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.ElementsMatch(t, []string{"brand", "fuelType"}, appErr.Fields)
}

func TestCreateCarAuthorization(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()

	_, err := svc.Create(context.Background(), userCaller(), validSaveCarRequest())
	assert.Equal(t, "FORBIDDEN", apperror.As(err).Code)

	_, err = svc.Create(context.Background(), nil, validSaveCarRequest())
	assert.Equal(t, "UNAUTHENTICATED", apperror.As(err).Code)
}

func TestUpdateCarReplacesChildren(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()
	admin := adminCaller()

	created, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	req := validSaveCarRequest()
	req.Features = []string{"Toit ouvrant"}
	req.Images = []string{"/uploads/new.jpg"}
	req.MainImage = "/uploads/new.jpg"

	updated, err := svc.Update(context.Background(), admin, created.Id, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Toit ouvrant"}, updated.Features)
	assert.Equal(t, []string{"/uploads/new.jpg"}, updated.Images)
	assert.Equal(t, "/uploads/new.jpg", updated.MainImage)

	// Update never touches the lifecycle.
	assert.Equal(t, "AVAILABLE", updated.Status)
	assert.Nil(t, updated.SoldDate)
}

func TestUpdateCarNotFound(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()

	_, err := svc.Update(context.Background(), adminCaller(), uuid.New(), validSaveCarRequest())
	assert.Equal(t, "NOT_FOUND", apperror.As(err).Code)
}

func TestStatusLifecycle(t *testing.T) {
	svc, _, publisher, _ := newCarServiceForTest()
	admin := adminCaller()

	created, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	sold, err := svc.UpdateStatus(context.Background(), admin, created.Id, &dto.UpdateCarStatusRequest{Status: "SOLD"})
	require.NoError(t, err)
	assert.Equal(t, "SOLD", sold.Status)
	require.NotNil(t, sold.SoldDate)

	// Back to available clears the sold date.
	back, err := svc.UpdateStatus(context.Background(), admin, created.Id, &dto.UpdateCarStatusRequest{Status: "AVAILABLE"})
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", back.Status)
	assert.Nil(t, back.SoldDate)

	assert.Contains(t, publisher.types(), events.EventCarStatusChanged)
}

func TestStatusSameValueIsNoop(t *testing.T) {
	svc, _, publisher, _ := newCarServiceForTest()
	admin := adminCaller()

	created, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)
	eventsBefore := len(publisher.types())

	res, err := svc.UpdateStatus(context.Background(), admin, created.Id, &dto.UpdateCarStatusRequest{Status: "AVAILABLE"})
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", res.Status)
	assert.Len(t, publisher.types(), eventsBefore)
}

func TestStatusRejectsUnknownValue(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()
	admin := adminCaller()

	created, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), admin, created.Id, &dto.UpdateCarStatusRequest{Status: "PARKED"})
	assert.Equal(t, "VALIDATION_ERROR", apperror.As(err).Code)
}

func TestListShowsOnlyAvailableCars(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()
	admin := adminCaller()

	first, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), admin, second.Id, &dto.UpdateCarStatusRequest{Status: "SOLD"})
	require.NoError(t, err)

	listed, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, first.Id, listed[0].Id)

	all, err := svc.ListAdmin(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListFilters(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()
	admin := adminCaller()

	cheap := validSaveCarRequest()
	cheap.Brand = "Renault"
	cheap.Price = floatPtr(9000)
	cheap.Year = intPtr(2015)
	_, err := svc.Create(context.Background(), admin, cheap)
	require.NoError(t, err)

	expensive := validSaveCarRequest()
	expensive.Brand = "BMW"
	expensive.Price = floatPtr(45000)
	expensive.Year = intPtr(2023)
	expensive.FuelType = "Diesel"
	_, err = svc.Create(context.Background(), admin, expensive)
	require.NoError(t, err)

	byBrand, err := svc.List(context.Background(), &dto.CarFilterRequest{Brand: "BMW"})
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, "BMW", byBrand[0].Brand)

	byPrice, err := svc.List(context.Background(), &dto.CarFilterRequest{MaxPrice: floatPtr(10000)})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, "Renault", byPrice[0].Brand)

	byYearAndFuel, err := svc.List(context.Background(), &dto.CarFilterRequest{
		MinYear:  intPtr(2020),
		FuelType: "Diesel",
	})
	require.NoError(t, err)
	require.Len(t, byYearAndFuel, 1)
	assert.Equal(t, "BMW", byYearAndFuel[0].Brand)

	none, err := svc.List(context.Background(), &dto.CarFilterRequest{Brand: "Volvo"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListCachesUnfilteredAndInvalidatesOnWrite(t *testing.T) {
	svc, _, _, cacheStore := newCarServiceForTest()
	admin := adminCaller()

	created, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	_, err = svc.List(context.Background(), nil)
	require.NoError(t, err)
	_, cached, _ := cacheStore.Get(context.Background(), "cars:available")
	assert.True(t, cached)

	_, err = svc.UpdateStatus(context.Background(), admin, created.Id, &dto.UpdateCarStatusRequest{Status: "RESERVED"})
	require.NoError(t, err)
	_, cached, _ = cacheStore.Get(context.Background(), "cars:available")
	assert.False(t, cached)
}

func TestListSold(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()
	admin := adminCaller()

	first, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), admin, first.Id, &dto.UpdateCarStatusRequest{Status: "SOLD"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), admin, second.Id, &dto.UpdateCarStatusRequest{Status: "SOLD"})
	require.NoError(t, err)

	sold, err := svc.ListSold(context.Background())
	require.NoError(t, err)
	require.Len(t, sold, 2)
	// Most recent sale first.
	assert.Equal(t, second.Id, sold[0].Id)
	assert.Equal(t, first.Id, sold[1].Id)
}

func TestShowIncludesComments(t *testing.T) {
	svc, factory, _, _ := newCarServiceForTest()
	admin := adminCaller()

	created, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	commentSvc := NewCommentService(factory)
	author := seedUser(t, factory, "Alice Martin", "alice@example.com")
	_, err = commentSvc.Create(context.Background(), author, created.Id, &dto.CreateCommentRequest{
		Content: "Superbe voiture",
		Rating:  intPtr(5),
	})
	require.NoError(t, err)

	detail, err := svc.Show(context.Background(), created.Id)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Superbe voiture", detail.Comments[0].Content)
	assert.Equal(t, "Alice Martin", detail.Comments[0].User.Name)
}

func TestShowNotFound(t *testing.T) {
	svc, _, _, _ := newCarServiceForTest()

	_, err := svc.Show(context.Background(), uuid.New())
	assert.Equal(t, "NOT_FOUND", apperror.As(err).Code)
}

func TestDeleteCar(t *testing.T) {
	svc, _, publisher, _ := newCarServiceForTest()
	admin := adminCaller()

	created, err := svc.Create(context.Background(), admin, validSaveCarRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), admin, created.Id))
	assert.Contains(t, publisher.types(), events.EventCarDeleted)

	err = svc.Delete(context.Background(), admin, created.Id)
	assert.Equal(t, "NOT_FOUND", apperror.As(err).Code)
}
