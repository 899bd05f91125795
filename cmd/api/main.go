package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/database"
	"ecosnap/internal/email"
	"ecosnap/internal/features/admin"
	"ecosnap/internal/features/complaint"
	cron_feature "ecosnap/internal/features/cron"
	"ecosnap/internal/features/dashboard"
	"ecosnap/internal/features/donation"
	"ecosnap/internal/features/notification"
	"ecosnap/internal/features/payment"
	"ecosnap/internal/features/report"
	"ecosnap/internal/features/system"
	"ecosnap/internal/features/task"
	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"
	"ecosnap/internal/logger"
	"ecosnap/internal/middleware"
	"ecosnap/pkg/utils"

	_ "ecosnap/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// StartScheduler runs the daily reminder cron alongside the server
func StartScheduler(lc fx.Lifecycle, scheduler *cron_feature.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start()
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, userRepo user.UserRepository, paymentRepo payment.PaymentRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := userRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure user indexes: %v", err)
				}
				if err := paymentRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure payment indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

// @title           EcoSnap API
// @version         1.0
// @description     Municipal waste management and donation collection backend.

// @host            localhost:8000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repositories
			user.NewUserRepository,
			admin.NewAdminRepository,
			waste.NewWasteRequestRepository,
			donation.NewDonationRepository,
			task.NewTaskRepository,
			payment.NewPaymentRepository,
			complaint.NewComplaintRepository,
			email.NewEmailRepository,

			// Initialize Services
			email.NewEmailService,
			user.NewUserService,
			admin.NewAdminService,
			waste.NewWasteService,
			donation.NewDonationService,
			task.NewTaskService,
			task.NewDonationTaskService,
			payment.NewPaymentService,
			complaint.NewComplaintService,
			notification.NewNotificationService,
			dashboard.NewDashboardService,
			report.NewReportService,
			cron_feature.NewScheduler,

			// Initialize Controllers
			user.NewUserController,
			admin.NewAdminController,
			waste.NewWasteController,
			donation.NewDonationController,
			task.NewTaskController,
			task.NewDonationTaskController,
			payment.NewPaymentController,
			complaint.NewComplaintController,
			notification.NewNotificationController,
			dashboard.NewDashboardController,
			report.NewReportController,

			// Register Routes
			AsRoute(user.NewUserApi),
			AsRoute(admin.NewAdminApi),
			AsRoute(waste.NewWasteApi),
			AsRoute(donation.NewDonationApi),
			AsRoute(task.NewTaskApi),
			AsRoute(payment.NewPaymentApi),
			AsRoute(complaint.NewComplaintApi),
			AsRoute(notification.NewNotificationApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(report.NewReportApi),
			AsRoute(system.NewSwaggerApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			StartScheduler,
			InitializeIndexes,
		),
	)

	app.Run()
}
