package v1

import (
	"talent-pulse/internal/config"
	"talent-pulse/internal/database"
	"talent-pulse/internal/delivery/http/handler"
	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/infrastructure/interview"
	"talent-pulse/internal/pkg/jwt"
	"talent-pulse/internal/repository"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API. Auth endpoints are public; everything
// else requires an admin access token.
func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.AnalyticsCache, analyzer interview.Client) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	personRepo := repository.NewPostgresPersonRepository(db)
	orgRepo := repository.NewPostgresOrgRepository(db)
	jobBankRepo := repository.NewPostgresJobBankRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	personUC := usecase.NewPersonUsecase(personRepo)
	assessmentUC := usecase.NewAssessmentUsecase(personRepo, cache, nil)
	reportUC := usecase.NewReportUsecase(personRepo, jobBankRepo, cache, nil)
	analyticsUC := usecase.NewAnalyticsUsecase(personRepo, orgRepo, cache, nil)
	compatibilityUC := usecase.NewCompatibilityUsecase(personRepo, nil)
	interviewUC := usecase.NewInterviewUsecase(personRepo, analyzer, cache, nil)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	peopleGroup := protected.Group("/people")
	handler.NewPersonHandler(personUC).RegisterRoutes(peopleGroup)

	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(protected)
	handler.NewReportHandler(reportUC).RegisterRoutes(protected)
	handler.NewAnalyticsHandler(analyticsUC).RegisterRoutes(protected)
	handler.NewCompatibilityHandler(compatibilityUC).RegisterRoutes(protected)
	handler.NewInterviewHandler(interviewUC).RegisterRoutes(protected)
}
