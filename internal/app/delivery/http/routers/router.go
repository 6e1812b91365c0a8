package routers

import (
	"fmt"
	"medcalc-service/internal/app/config"
	"medcalc-service/internal/app/delivery/http/controllers"
	"medcalc-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	questionnaireController *controllers.QuestionnaireController,
	resultController *controllers.ResultController,
	adminController *controllers.AdminController,
	notificationController *controllers.NotificationController,
	preferencesController *controllers.PreferencesController,
	formController *controllers.FormController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.CreateRateLimiter())
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestTimeout)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginLimiter, authController)
			})

			r.Route("/forms", func(r chi.Router) {
				attachFormRoutes(r, formController)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/questionnaires", func(r chi.Router) {
					attachQuestionnaireRoutes(r, questionnaireController)
				})

				r.Route("/results", func(r chi.Router) {
					attachResultRoutes(r, resultController)
				})

				r.Route("/notifications", func(r chi.Router) {
					attachNotificationRoutes(r, notificationController)
				})

				r.Route("/preferences", func(r chi.Router) {
					attachPreferencesRoutes(r, preferencesController)
				})

				r.Route("/admin", func(r chi.Router) {
					r.Use(middlewares.RequireAdmin)
					attachAdminRoutes(r, adminController)
				})
			})
		})
	})
}
