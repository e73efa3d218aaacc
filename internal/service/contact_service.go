package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/logger"
	"autovitrine-be/pkg/events"

	gocache "github.com/patrickmn/go-cache"
)

const (
	contactRateLimit  = 3
	contactRateWindow = time.Hour
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest, ipAddress string) error
}

type contactService struct {
	publisherService IPublisherService
	eventPublisher   IEventPublisher
	rateLimiter      *gocache.Cache
	log              logger.ILogger
}

func NewContactService(publisherService IPublisherService, eventPublisher IEventPublisher, log logger.ILogger) IContactService {
	return &contactService{
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		rateLimiter:      gocache.New(contactRateWindow, 10*time.Minute),
		log:              log,
	}
}

// Submit enqueues a contact form submission for async delivery. Each IP gets
// a fixed number of submissions per window.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest, ipAddress string) error {
	key := fmt.Sprintf("contact:%s", ipAddress)
	count, err := s.rateLimiter.IncrementInt(key, 1)
	if err != nil {
		s.rateLimiter.Set(key, 1, gocache.DefaultExpiration)
		count = 1
	}
	if count > contactRateLimit {
		return apperror.NewRateLimited("too many messages, try again later")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewContactReceivedEvent(req.Email)); err != nil {
			s.log.Warn("contact", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	s.log.Info("contact", "contact message queued", map[string]interface{}{"email": req.Email})
	return nil
}
