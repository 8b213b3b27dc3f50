package bootstrap

import (
	"log"

	"valetkleen-be/internal/config"
	"valetkleen-be/internal/controller"
	"valetkleen-be/internal/pkg/logger"
	"valetkleen-be/internal/pkg/mailer"
	"valetkleen-be/internal/repository/implementation"
	"valetkleen-be/internal/repository/memory"
	"valetkleen-be/internal/service"
	"valetkleen-be/pkg/intent"
	"valetkleen-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	CartController  controller.ICartController
	OrderController controller.IOrderController

	// Background services (exposed for main.go to run)
	NotificationService service.INotificationService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.OrderInbox,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	sessionRepo := memory.NewSessionRepository(cfg.Chat.SessionTTL, cfg.Chat.CleanupInterval)
	orderRepo := implementation.NewOrderRepository(db)

	// 4. Optional collaborators
	var resolver llm.IntentResolver
	if cfg.Chat.LLMEnabled && cfg.Keys.GoogleGemini != "" {
		resolver = llm.NewGeminiResolver(cfg.Keys.GoogleGemini)
		log.Println("[INFO] LLM intent resolution: GEMINI")
	} else {
		log.Println("[INFO] LLM intent resolution: disabled, keyword classifier only")
	}

	// 5. Services
	cartService := service.NewCartService()
	orderService := service.NewOrderService(orderRepo, pubSub, sysLogger)
	paymentService := service.NewPaymentService(cfg.Payment, orderRepo)
	chatService := service.NewChatService(
		sessionRepo,
		cartService,
		orderService,
		paymentService,
		intent.NewClassifier(),
		resolver,
		cfg.Chat,
		sysLogger,
	)

	var notificationService service.INotificationService
	if cfg.Chat.NotificationsEnabled {
		notificationService = service.NewNotificationService(pubSub, emailService, sysLogger)
	}

	// 6. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		CartController:      controller.NewCartController(sessionRepo, cartService),
		OrderController:     controller.NewOrderController(orderService, paymentService),
		NotificationService: notificationService,
	}
}
