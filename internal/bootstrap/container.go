package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"samvidhan-be/internal/config"
	"samvidhan-be/internal/controller"
	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/handler"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/mailer"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/repository/implementation"
	"samvidhan-be/internal/repository/memory"
	"samvidhan-be/internal/repository/unitofwork"
	"samvidhan-be/internal/service"
	"samvidhan-be/internal/websocket"
	"samvidhan-be/pkg/events"
	"samvidhan-be/pkg/legal"
	"samvidhan-be/pkg/llm"
	"samvidhan-be/pkg/llm/factory"
	pktNats "samvidhan-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	AuthController         controller.IAuthController
	UserController         controller.IUserController
	LawyerController       controller.ILawyerController
	AdminController        controller.IAdminController
	ConsultationController controller.IConsultationController
	PaymentController      controller.IPaymentController
	PublicController       controller.IPublicController

	NotificationHandler *handler.NotificationHandler

	// Background workers, started by Start
	WebSocketHub        *websocket.Hub
	OTPDispatcher       service.IOTPDispatcher
	NotificationService *service.NotificationService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	jwtManager := serverutils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	// 2. In-process OTP queue
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })
	otpDispatcher := service.NewOTPDispatcher(pubSub, service.OTPTopic, emailService, sysLogger)

	// 3. Event bus
	var publisher events.Publisher = events.NoopPublisher{}
	var subscriber service.EventSubscriber
	if cfg.App.NatsURL == "" {
		sysLogger.Warn("BOOTSTRAP", "NATS_URL not set, domain events are dropped", nil)
	} else {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger.Zap())
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect NATS publisher", map[string]interface{}{"error": err.Error()})
		} else {
			publisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}

		natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger.Zap())
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect NATS subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			subscriber = natsSub
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// 4. Realtime hub, fanned out across instances through Redis when configured
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	hub := websocket.NewHub(newRedisClient(cfg.App.RedisURL, sysLogger), wsLogger)

	// 5. AI gateway
	provider, err := newLLMProvider(cfg, sysLogger)
	if err != nil {
		return nil, err
	}

	// 6. Services
	authOpts := service.AuthOptions{OTPTTL: cfg.Auth.OTPTTL, ExposeOTP: cfg.App.ExposeOTP}
	directory := memory.NewCacheRepository[[]dto.LawyerProfileResponse](5*time.Minute, 10*time.Minute)
	adCache := memory.NewCacheRepository[[]dto.AdResponse](5*time.Minute, 10*time.Minute)

	authService := service.NewAuthService(uowFactory, jwtManager, otpDispatcher, publisher, sysLogger, authOpts)
	userService := service.NewUserService(uowFactory, otpDispatcher, publisher, sysLogger, authOpts)
	messagingService := service.NewMessagingService(uowFactory, hub, publisher, wsLogger)
	lawyerService := service.NewLawyerService(uowFactory, messagingService, directory)
	adminService := service.NewAdminService(uowFactory, directory, publisher, sysLogger)
	consultationService := service.NewConsultationService(
		uowFactory,
		legal.DefaultCatalog(),
		provider,
		publisher,
		sysLogger,
		cfg.Ai.RequestTimeout,
	)
	paymentService := service.NewPaymentService(
		uowFactory,
		service.NewSnapClient(cfg.Payment.MidtransServerKey, cfg.Payment.MidtransEnvironment),
		publisher,
		sysLogger,
		service.PaymentOptions{
			ServerKey:      cfg.Payment.MidtransServerKey,
			PremiumPrice:   cfg.Payment.PremiumPrice,
			RemoveAdsPrice: cfg.Payment.RemoveAdsPrice,
			Currency:       cfg.Payment.Currency,
			FinishURL:      cfg.App.ClientURL + "/payment/finish",
		},
	)
	adService := service.NewAdService(uowFactory, adCache, sysLogger)
	contactService := service.NewContactService(emailService, cfg.App.CompanyEmail, sysLogger)

	notifService := service.NewNotificationService(
		implementation.NewNotificationRepository(db),
		subscriber,
		hub,
		wsLogger,
	)

	hub.SetMessageHandler(chatRelay(messagingService))

	// 7. Transport
	c.AuthController = controller.NewAuthController(authService)
	c.UserController = controller.NewUserController(userService, jwtManager)
	c.LawyerController = controller.NewLawyerController(lawyerService, jwtManager)
	c.AdminController = controller.NewAdminController(adminService, jwtManager)
	c.ConsultationController = controller.NewConsultationController(consultationService, jwtManager)
	c.PaymentController = controller.NewPaymentController(paymentService, jwtManager)
	c.PublicController = controller.NewPublicController(adService, contactService)
	c.NotificationHandler = handler.NewNotificationHandler(notifService, hub, jwtManager, wsLogger)

	c.WebSocketHub = hub
	c.OTPDispatcher = otpDispatcher
	c.NotificationService = notifService
	c.closers = append(c.closers, func() { _ = wsLogger.Sync() })

	return c, nil
}

// Start launches the background workers; they stop when ctx is cancelled.
func (c *Container) Start(ctx context.Context) {
	go c.WebSocketHub.Run(ctx)

	go func() {
		if err := c.OTPDispatcher.Consume(ctx); err != nil {
			c.Logger.Error("BOOTSTRAP", "OTP dispatcher stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	if err := c.NotificationService.Start(ctx); err != nil {
		c.Logger.Error("BOOTSTRAP", "Notification service not started", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func newRedisClient(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		log.Info("BOOTSTRAP", "REDIS_URL not set, realtime delivery is local to this instance", nil)
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Failed to connect to Redis, realtime delivery is local", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// newLLMProvider returns a nil provider, not an error, when the credential is
// missing so the rest of the API keeps serving.
func newLLMProvider(cfg *config.Config, log logger.ILogger) (llm.LLMProvider, error) {
	apiKey, baseURL := "", ""
	switch cfg.Ai.LLMProvider {
	case "", "gemini":
		apiKey = cfg.Keys.GoogleGemini
	case "huggingface":
		apiKey = cfg.Keys.HuggingFace
	case "ollama":
		baseURL = cfg.Ai.OllamaBaseURL
	}

	provider, err := factory.NewLLMProvider(context.Background(), cfg.Ai.LLMProvider, cfg.Ai.LLMModel, baseURL, apiKey)
	if errors.Is(err, llm.ErrMissingCredential) {
		log.Warn("BOOTSTRAP", "AI provider credential missing, consultations will answer 503", map[string]interface{}{"provider": cfg.Ai.LLMProvider})
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}

	log.Info("BOOTSTRAP", "AI provider ready", map[string]interface{}{"provider": cfg.Ai.LLMProvider, "model": cfg.Ai.LLMModel})
	return provider, nil
}

// chatRelay persists websocket chat frames through the messaging service.
func chatRelay(messaging service.IMessagingService) websocket.MessageHandler {
	return func(ctx context.Context, client *websocket.Client, frame websocket.InboundFrame) error {
		to, err := uuid.Parse(frame.To)
		if err != nil {
			return errors.New("Invalid recipient")
		}
		if _, err := messaging.Send(ctx, client.AccountID, client.Role, to, frame.Message); err != nil {
			var se *service.Error
			if errors.As(err, &se) {
				return se
			}
			return errors.New("Failed to send message")
		}
		return nil
	}
}
