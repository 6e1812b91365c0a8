package routers

import (
	"medcalc-service/internal/app/delivery/http/controllers"
	"medcalc-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(loginLimiter.Limit).Post("/register", authController.Register)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/state", authController.CheckAuthState)
		r.Get("/profile", authController.GetProfile)
		r.Put("/profile", authController.UpdateProfile)
		r.Post("/change-password", authController.ChangePassword)
		r.Post("/telegram/link", authController.LinkTelegram)
		r.Post("/logout", authController.Logout)
	})
}
