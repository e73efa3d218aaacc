package service

import (
	"context"
	"encoding/json"
	"time"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/mapper"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/authz"
	"autovitrine-be/internal/pkg/logger"
	"autovitrine-be/internal/repository/specification"
	"autovitrine-be/internal/repository/unitofwork"
	"autovitrine-be/pkg/cache"
	"autovitrine-be/pkg/events"

	"github.com/google/uuid"
)

const (
	cacheKeyAvailableCars = "cars:available"
	cacheKeySoldCars      = "cars:sold"
	carListCacheTTL       = 5 * time.Minute
)

// IEventPublisher pushes domain events to the bus. Failures are logged, not
// surfaced; the write that triggered the event has already committed.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type ICarService interface {
	List(ctx context.Context, filter *dto.CarFilterRequest) ([]dto.CarResponse, error)
	ListSold(ctx context.Context) ([]dto.CarResponse, error)
	ListAdmin(ctx context.Context, caller *entity.Caller) ([]dto.CarResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CarDetailResponse, error)
	Create(ctx context.Context, caller *entity.Caller, req *dto.SaveCarRequest) (*dto.CarResponse, error)
	Update(ctx context.Context, caller *entity.Caller, id uuid.UUID, req *dto.SaveCarRequest) (*dto.CarResponse, error)
	UpdateStatus(ctx context.Context, caller *entity.Caller, id uuid.UUID, req *dto.UpdateCarStatusRequest) (*dto.CarResponse, error)
	Delete(ctx context.Context, caller *entity.Caller, id uuid.UUID) error
}

type carService struct {
	uowFactory    unitofwork.RepositoryFactory
	cache         cache.ICache
	publisher     IEventPublisher
	log           logger.ILogger
	carMapper     *mapper.CarMapper
	commentMapper *mapper.CommentMapper
}

func NewCarService(
	uowFactory unitofwork.RepositoryFactory,
	cache cache.ICache,
	publisher IEventPublisher,
	log logger.ILogger,
) ICarService {
	return &carService{
		uowFactory:    uowFactory,
		cache:         cache,
		publisher:     publisher,
		log:           log,
		carMapper:     mapper.NewCarMapper(),
		commentMapper: mapper.NewCommentMapper(),
	}
}

// List returns the public catalog: available cars only, newest first. The
// unfiltered listing is served from cache when possible.
func (s *carService) List(ctx context.Context, filter *dto.CarFilterRequest) ([]dto.CarResponse, error) {
	unfiltered := filter == nil || isEmptyFilter(filter)
	if unfiltered {
		if cached, ok := s.readCachedList(ctx, cacheKeyAvailableCars); ok {
			return cached, nil
		}
	}

	specs := []specification.Specification{
		specification.ByStatus{Status: string(entity.CarStatusAvailable)},
	}
	if filter != nil {
		specs = append(specs, filterSpecs(filter)...)
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cars, err := uow.CarRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := s.carMapper.ToResponses(cars)
	if unfiltered {
		s.writeCachedList(ctx, cacheKeyAvailableCars, responses)
	}
	return responses, nil
}

// ListSold returns sold cars ordered by most recent sale.
func (s *carService) ListSold(ctx context.Context) ([]dto.CarResponse, error) {
	if cached, ok := s.readCachedList(ctx, cacheKeySoldCars); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cars, err := uow.CarRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.CarStatusSold)},
		specification.OrderBySoldDateDesc{},
	)
	if err != nil {
		return nil, err
	}

	responses := s.carMapper.ToResponses(cars)
	s.writeCachedList(ctx, cacheKeySoldCars, responses)
	return responses, nil
}

// ListAdmin returns every car regardless of status for the back office.
func (s *carService) ListAdmin(ctx context.Context, caller *entity.Caller) ([]dto.CarResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleAdmin, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cars, err := uow.CarRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	return s.carMapper.ToResponses(cars), nil
}

func (s *carService) Show(ctx context.Context, id uuid.UUID) (*dto.CarDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewNotFound("car not found")
	}

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByCarID{CarID: id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return &dto.CarDetailResponse{
		CarResponse: *s.carMapper.ToResponse(car),
		Comments:    s.commentMapper.ToResponses(comments),
	}, nil
}

func (s *carService) Create(ctx context.Context, caller *entity.Caller, req *dto.SaveCarRequest) (*dto.CarResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleAdmin, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateCarAttributes(req); err != nil {
		return nil, err
	}

	car := &entity.Car{
		Id:           uuid.New(),
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         *req.Year,
		Price:        *req.Price,
		Mileage:      *req.Mileage,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		BodyType:     req.BodyType,
		Power:        *req.Power,
		Color:        req.Color,
		Doors:        *req.Doors,
		Description:  req.Description,
		Status:       entity.CarStatusAvailable,
		UserId:       caller.Id,
	}
	images := buildImages(car.Id, req.Images, req.MainImage)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CarRepository().Create(ctx, car); err != nil {
		return nil, err
	}
	if err := uow.CarRepository().ReplaceFeatures(ctx, car.Id, req.Features); err != nil {
		return nil, err
	}
	if err := uow.CarRepository().ReplaceImages(ctx, car.Id, images); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	car.Features = buildFeatures(car.Id, req.Features)
	car.Images = images

	s.invalidateListings(ctx)
	s.publishEvent(ctx, events.NewCarCreatedEvent(car.Id, car.Brand, car.Model))

	return s.carMapper.ToResponse(car), nil
}

// Update replaces the car's scalar fields, features and images wholesale.
// Status and sold date are untouched; they only change through UpdateStatus.
func (s *carService) Update(ctx context.Context, caller *entity.Caller, id uuid.UUID, req *dto.SaveCarRequest) (*dto.CarResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleAdmin, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateCarAttributes(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewNotFound("car not found")
	}

	car.Brand = req.Brand
	car.Model = req.Model
	car.Year = *req.Year
	car.Price = *req.Price
	car.Mileage = *req.Mileage
	car.FuelType = req.FuelType
	car.Transmission = req.Transmission
	car.BodyType = req.BodyType
	car.Power = *req.Power
	car.Color = req.Color
	car.Doors = *req.Doors
	car.Description = req.Description
	car.UpdatedAt = time.Now()
	images := buildImages(car.Id, req.Images, req.MainImage)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CarRepository().Update(ctx, car); err != nil {
		return nil, err
	}
	if err := uow.CarRepository().ReplaceFeatures(ctx, car.Id, req.Features); err != nil {
		return nil, err
	}
	if err := uow.CarRepository().ReplaceImages(ctx, car.Id, images); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	car.Features = buildFeatures(car.Id, req.Features)
	car.Images = images

	s.invalidateListings(ctx)
	s.publishEvent(ctx, events.NewCarUpdatedEvent(car.Id))

	return s.carMapper.ToResponse(car), nil
}

// UpdateStatus moves a car through its lifecycle. Setting SOLD stamps the
// sold date; any other status clears it. Same-status updates are no-ops.
func (s *carService) UpdateStatus(ctx context.Context, caller *entity.Caller, id uuid.UUID, req *dto.UpdateCarStatusRequest) (*dto.CarResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleAdmin, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}

	status, ok := entity.ParseCarStatus(req.Status)
	if !ok {
		return nil, apperror.NewValidation("unknown status", "status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewNotFound("car not found")
	}

	if car.Status == status {
		return s.carMapper.ToResponse(car), nil
	}

	previous := car.Status
	car.ApplyStatus(status, time.Now())
	car.UpdatedAt = time.Now()

	if err := uow.CarRepository().Update(ctx, car); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.publishEvent(ctx, events.NewCarStatusChangedEvent(car.Id, string(previous), string(status)))

	return s.carMapper.ToResponse(car), nil
}

func (s *carService) Delete(ctx context.Context, caller *entity.Caller, id uuid.UUID) error {
	if err := authz.RequireRole(caller, entity.UserRoleAdmin, entity.UserRoleSuperAdmin); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if car == nil {
		return apperror.NewNotFound("car not found")
	}

	if err := uow.CarRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	s.publishEvent(ctx, events.NewCarDeletedEvent(id))
	return nil
}

func validateCarAttributes(req *dto.SaveCarRequest) error {
	var fields []string
	if !entity.IsValidBrand(req.Brand) {
		fields = append(fields, "brand")
	}
	if !entity.IsValidFuelType(req.FuelType) {
		fields = append(fields, "fuelType")
	}
	if !entity.IsValidTransmission(req.Transmission) {
		fields = append(fields, "transmission")
	}
	if !entity.IsValidBodyType(req.BodyType) {
		fields = append(fields, "bodyType")
	}
	if len(fields) > 0 {
		return apperror.NewValidation("unknown value", fields...)
	}
	return nil
}

// buildImages flags exactly one image as main: the declared main image when
// it is part of the list, the first image otherwise.
func buildImages(carId uuid.UUID, urls []string, mainImage string) []entity.CarImage {
	if len(urls) == 0 {
		return nil
	}
	mainIdx := 0
	for i, url := range urls {
		if mainImage != "" && url == mainImage {
			mainIdx = i
			break
		}
	}
	images := make([]entity.CarImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, entity.CarImage{CarId: carId, URL: url, IsMain: i == mainIdx})
	}
	return images
}

func buildFeatures(carId uuid.UUID, names []string) []entity.CarFeature {
	features := make([]entity.CarFeature, 0, len(names))
	for _, name := range names {
		features = append(features, entity.CarFeature{CarId: carId, Name: name})
	}
	return features
}

func filterSpecs(filter *dto.CarFilterRequest) []specification.Specification {
	var specs []specification.Specification
	if filter.Brand != "" {
		specs = append(specs, specification.ByBrand{Brand: filter.Brand})
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		specs = append(specs, specification.PriceBetween{Min: filter.MinPrice, Max: filter.MaxPrice})
	}
	if filter.MinYear != nil || filter.MaxYear != nil {
		specs = append(specs, specification.YearBetween{Min: filter.MinYear, Max: filter.MaxYear})
	}
	if filter.FuelType != "" {
		specs = append(specs, specification.ByFuelType{FuelType: filter.FuelType})
	}
	if filter.Transmission != "" {
		specs = append(specs, specification.ByTransmission{Transmission: filter.Transmission})
	}
	if filter.BodyType != "" {
		specs = append(specs, specification.ByBodyType{BodyType: filter.BodyType})
	}
	return specs
}

func isEmptyFilter(filter *dto.CarFilterRequest) bool {
	return filter.Brand == "" &&
		filter.MinPrice == nil && filter.MaxPrice == nil &&
		filter.MinYear == nil && filter.MaxYear == nil &&
		filter.FuelType == "" && filter.Transmission == "" && filter.BodyType == ""
}

func (s *carService) readCachedList(ctx context.Context, key string) ([]dto.CarResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("car", "cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var responses []dto.CarResponse
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, false
	}
	return responses, true
}

func (s *carService) writeCachedList(ctx context.Context, key string, responses []dto.CarResponse) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(responses)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, carListCacheTTL); err != nil {
		s.log.Warn("car", "cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (s *carService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyAvailableCars, cacheKeySoldCars); err != nil {
		s.log.Warn("car", "cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *carService) publishEvent(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("car", "event publish failed", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
