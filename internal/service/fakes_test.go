package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/pkg/logger"
	"autovitrine-be/internal/repository/contract"
	"autovitrine-be/internal/repository/specification"
	"autovitrine-be/internal/repository/unitofwork"
	"autovitrine-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the service tests. They interpret the same
// specification structs the gorm implementations translate to SQL.

type fakeStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]entity.User
	cars     map[uuid.UUID]entity.Car
	comments map[uuid.UUID]entity.Comment
	reviews  map[uuid.UUID]entity.Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]entity.User),
		cars:     make(map[uuid.UUID]entity.Car),
		comments: make(map[uuid.UUID]entity.Comment),
		reviews:  make(map[uuid.UUID]entity.Review),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepository{store: u.store}
}

func (u *fakeUnitOfWork) CarRepository() contract.CarRepository {
	return &fakeCarRepository{store: u.store}
}

func (u *fakeUnitOfWork) CommentRepository() contract.CommentRepository {
	return &fakeCommentRepository{store: u.store}
}

func (u *fakeUnitOfWork) ReviewRepository() contract.ReviewRepository {
	return &fakeReviewRepository{store: u.store}
}

// Cars

type fakeCarRepository struct {
	store *fakeStore
}

func (r *fakeCarRepository) Create(ctx context.Context, car *entity.Car) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if car.CreatedAt.IsZero() {
		car.CreatedAt = time.Now()
	}
	r.store.cars[car.Id] = *car
	return nil
}

func (r *fakeCarRepository) Update(ctx context.Context, car *entity.Car) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing := r.store.cars[car.Id]
	stored := *car
	stored.Features = existing.Features
	stored.Images = existing.Images
	r.store.cars[car.Id] = stored
	return nil
}

func (r *fakeCarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.cars, id)
	for commentId, comment := range r.store.comments {
		if comment.CarId == id {
			delete(r.store.comments, commentId)
		}
	}
	return nil
}

func (r *fakeCarRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Car, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, car := range r.store.cars {
		if matchCar(car, specs) {
			found := car
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeCarRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Car, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Car
	for _, car := range r.store.cars {
		if matchCar(car, specs) {
			found := car
			result = append(result, &found)
		}
	}
	sortCars(result, specs)
	return result, nil
}

func (r *fakeCarRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	cars, _ := r.FindAll(ctx, specs...)
	return int64(len(cars)), nil
}

func (r *fakeCarRepository) ReplaceFeatures(ctx context.Context, carId uuid.UUID, names []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	car, ok := r.store.cars[carId]
	if !ok {
		return nil
	}
	car.Features = nil
	for _, name := range names {
		car.Features = append(car.Features, entity.CarFeature{Id: uuid.New(), CarId: carId, Name: name})
	}
	r.store.cars[carId] = car
	return nil
}

func (r *fakeCarRepository) ReplaceImages(ctx context.Context, carId uuid.UUID, images []entity.CarImage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	car, ok := r.store.cars[carId]
	if !ok {
		return nil
	}
	car.Images = append([]entity.CarImage(nil), images...)
	r.store.cars[carId] = car
	return nil
}

func matchCar(car entity.Car, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if car.Id != s.ID {
				return false
			}
		case specification.ByStatus:
			if string(car.Status) != s.Status {
				return false
			}
		case specification.ByBrand:
			if car.Brand != s.Brand {
				return false
			}
		case specification.PriceBetween:
			if s.Min != nil && car.Price < *s.Min {
				return false
			}
			if s.Max != nil && car.Price > *s.Max {
				return false
			}
		case specification.YearBetween:
			if s.Min != nil && car.Year < *s.Min {
				return false
			}
			if s.Max != nil && car.Year > *s.Max {
				return false
			}
		case specification.ByFuelType:
			if car.FuelType != s.FuelType {
				return false
			}
		case specification.ByTransmission:
			if car.Transmission != s.Transmission {
				return false
			}
		case specification.ByBodyType:
			if car.BodyType != s.BodyType {
				return false
			}
		}
	}
	return true
}

func sortCars(cars []*entity.Car, specs []specification.Specification) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			if s.Field == "created_at" {
				sort.Slice(cars, func(i, j int) bool {
					if s.Desc {
						return cars[i].CreatedAt.After(cars[j].CreatedAt)
					}
					return cars[i].CreatedAt.Before(cars[j].CreatedAt)
				})
			}
		case specification.OrderBySoldDateDesc:
			_ = s
			sort.Slice(cars, func(i, j int) bool {
				var ti, tj time.Time
				if cars[i].SoldDate != nil {
					ti = *cars[i].SoldDate
				}
				if cars[j].SoldDate != nil {
					tj = *cars[j].SoldDate
				}
				return ti.After(tj)
			})
		}
	}
}

// Users

type fakeUserRepository struct {
	store *fakeStore
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.Id] = *user
	return nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.Id] = *user
	return nil
}

func (r *fakeUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if matchUser(user, specs) {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.User
	for _, user := range r.store.users {
		if matchUser(user, specs) {
			found := user
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, _ := r.FindAll(ctx, specs...)
	return int64(len(users)), nil
}

func matchUser(user entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if user.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if user.Email != s.Email {
				return false
			}
		case specification.ByRoles:
			matched := false
			for _, role := range s.Roles {
				if string(user.Role) == role {
					matched = true
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}

// Comments

type fakeCommentRepository struct {
	store *fakeStore
}

func (r *fakeCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.comments[comment.Id] = *comment
	return nil
}

func (r *fakeCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.comments, id)
	return nil
}

func (r *fakeCommentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error) {
	comments, _ := r.FindAll(ctx, specs...)
	if len(comments) == 0 {
		return nil, nil
	}
	return comments[0], nil
}

func (r *fakeCommentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Comment
	for _, comment := range r.store.comments {
		if matchComment(comment, specs) {
			found := comment
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeCommentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	comments, _ := r.FindAll(ctx, specs...)
	return int64(len(comments)), nil
}

func matchComment(comment entity.Comment, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByCarID:
			if comment.CarId != s.CarID {
				return false
			}
		case specification.ByUserID:
			if comment.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

// Reviews

type fakeReviewRepository struct {
	store *fakeStore
}

func (r *fakeReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reviews[review.Id] = *review
	return nil
}

func (r *fakeReviewRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error) {
	reviews, _ := r.FindAll(ctx, specs...)
	if len(reviews) == 0 {
		return nil, nil
	}
	return reviews[0], nil
}

func (r *fakeReviewRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Review
	for _, review := range r.store.reviews {
		if matchReview(review, specs) {
			found := review
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeReviewRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	reviews, _ := r.FindAll(ctx, specs...)
	return int64(len(reviews)), nil
}

func matchReview(review entity.Review, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if review.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

// Event publisher

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakeEventPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakeEventPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var types []string
	for _, event := range p.events {
		types = append(types, event.EventType())
	}
	return types
}

// Cache

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *fakeCache) Close() error { return nil }

// Logger

type fakeLogger struct {
	mu      sync.Mutex
	entries []logger.LogEntry
}

func testLogger() *fakeLogger { return &fakeLogger{} }

func (l *fakeLogger) record(level, module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logger.LogEntry{
		Id:      uuid.NewString(),
		Level:   level,
		Message: message,
		Module:  module,
		Details: details,
	})
}

func (l *fakeLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("DEBUG", module, message, details)
}

func (l *fakeLogger) Info(module, message string, details map[string]interface{}) {
	l.record("INFO", module, message, details)
}

func (l *fakeLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("WARN", module, message, details)
}

func (l *fakeLogger) Error(module, message string, details map[string]interface{}) {
	l.record("ERROR", module, message, details)
}

func (l *fakeLogger) Sync() error { return nil }

func (l *fakeLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var filtered []logger.LogEntry
	for i := len(l.entries) - 1; i >= 0; i-- {
		if level != "" && l.entries[i].Level != level {
			continue
		}
		filtered = append(filtered, l.entries[i])
	}
	if offset >= len(filtered) {
		return []logger.LogEntry{}, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (l *fakeLogger) GetLogById(id string) (*logger.LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.entries {
		if entry.Id == id {
			found := entry
			return &found, nil
		}
	}
	return nil, nil
}

// Helpers

func seedUser(t *testing.T, factory *fakeFactory, name, email string) *entity.Caller {
	t.Helper()
	return seedUserWithRole(t, factory, name, email, entity.UserRoleUser)
}

func seedUserWithRole(t *testing.T, factory *fakeFactory, name, email string, role entity.UserRole) *entity.Caller {
	t.Helper()
	user := &entity.User{
		Id:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	repo := &fakeUserRepository{store: factory.store}
	require.NoError(t, repo.Create(context.Background(), user))
	return &entity.Caller{Id: user.Id, Role: user.Role}
}
