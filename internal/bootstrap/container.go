package bootstrap

import (
	"context"
	"log"

	"autovitrine-be/internal/config"
	"autovitrine-be/internal/controller"
	"autovitrine-be/internal/pkg/logger"
	"autovitrine-be/internal/pkg/mailer"
	"autovitrine-be/internal/pkg/serverutils"
	"autovitrine-be/internal/repository/unitofwork"
	"autovitrine-be/internal/service"
	"autovitrine-be/pkg/cache"
	"autovitrine-be/pkg/storage"

	pktNats "autovitrine-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CarController     controller.ICarController
	CommentController controller.ICommentController
	AuthController    controller.IAuthController
	AdminController   controller.IAdminController
	ContactController controller.IContactController
	UploadController  controller.IUploadController

	// Background services (run by main)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.ContactInbox,
	)

	// In-process queue for async contact delivery
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Infrastructure. The app stays up when optional backends are down;
	// dependent features degrade instead.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisCache = nil
	}

	objectStorage, err := storage.NewMinioStorage(context.Background(), storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	// Services
	var eventPublisher service.IEventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	publisherService := service.NewPublisherService(pubSub, cfg.App.ContactTopicName)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ContactTopicName, emailService, sysLogger)

	carService := service.NewCarService(uowFactory, redisCache, eventPublisher, sysLogger)
	commentService := service.NewCommentService(uowFactory)
	authService := service.NewAuthService(uowFactory, cfg.App.JwtSecret)
	adminService := service.NewAdminService(uowFactory, sysLogger)
	contactService := service.NewContactService(publisherService, eventPublisher, sysLogger)
	uploadService := service.NewUploadService(objectStorage)

	authRequired := serverutils.NewJwtMiddleware(cfg.App.JwtSecret)

	return &Container{
		CarController:     controller.NewCarController(carService, authRequired),
		CommentController: controller.NewCommentController(commentService, authRequired),
		AuthController:    controller.NewAuthController(authService, authRequired),
		AdminController:   controller.NewAdminController(adminService, authRequired),
		ContactController: controller.NewContactController(contactService),
		UploadController:  controller.NewUploadController(uploadService, authRequired),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
