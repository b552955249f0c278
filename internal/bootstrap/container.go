package bootstrap

import (
	"estateflow-be/internal/config"
	"estateflow-be/internal/controller"
	"estateflow-be/internal/pkg/logger"
	"estateflow-be/internal/pkg/mailer"
	"estateflow-be/internal/repository/memory"
	"estateflow-be/internal/repository/unitofwork"
	"estateflow-be/internal/service"
	"estateflow-be/pkg/gemini"
	"estateflow-be/pkg/paypal"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	UserController         controller.IUserController
	PropertyController     controller.IPropertyController
	FilterController       controller.IFilterController
	WishlistController     controller.IWishlistController
	ViewController         controller.IViewController
	AiController           controller.IAiController
	StatisticsController   controller.IStatisticsController
	SubscriptionController controller.ISubscriptionController
	PaymentController      controller.IPaymentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, uowFactory)

	// 3. External Clients
	geminiClient := gemini.NewClient(cfg.Keys.GoogleGemini)
	paypalClient := paypal.NewClient(cfg.Paypal.APIBase, cfg.Paypal.ClientID, cfg.Paypal.ClientSecret)
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	authService := service.NewAuthService(uowFactory, emailService, publisherService)
	oauthService := service.NewOAuthService(uowFactory, cfg)
	userService := service.NewUserService(uowFactory)
	changeRequestService := service.NewChangeRequestService(uowFactory, emailService)

	propertyService := service.NewPropertyService(uowFactory, publisherService)
	filterService := service.NewFilterService(uowFactory)
	wishlistService := service.NewWishlistService(uowFactory)
	viewService := service.NewViewService(uowFactory)

	aiService := service.NewAiService(uowFactory, geminiClient, sessionRepo)
	statisticsService := service.NewStatisticsService(uowFactory)
	subscriptionService := service.NewSubscriptionService(
		uowFactory,
		paypalClient,
		emailService,
		publisherService,
		sysLogger,
	)
	paymentService := service.NewPaymentService(paypalClient)

	// 5. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		UserController:         controller.NewUserController(userService, changeRequestService),
		PropertyController:     controller.NewPropertyController(propertyService),
		FilterController:       controller.NewFilterController(filterService),
		WishlistController:     controller.NewWishlistController(wishlistService),
		ViewController:         controller.NewViewController(viewService),
		AiController:           controller.NewAiController(aiService),
		StatisticsController:   controller.NewStatisticsController(statisticsService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		PaymentController:      controller.NewPaymentController(paymentService),

		ConsumerService: consumerService,
	}
}
