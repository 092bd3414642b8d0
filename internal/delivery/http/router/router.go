// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/middleware"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	AstrologyHandler *handler.AstrologyHandler
	HoroscopeHandler *handler.HoroscopeHandler
	MatchHandler     *handler.MatchHandler
	ChatHandler      *handler.ChatHandler
	ReportHandler    *handler.ReportHandler
	LocationHandler  *handler.LocationHandler
	BookingHandler   *handler.BookingHandler
	DiscoverHandler  *handler.DiscoverHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	api := e.Group("/api/v1", p.RequestIDMiddleware.Process)

	api.GET("/health", handler.HealthCheck)

	// Public routes, rate limited per IP.
	public := api.Group("", p.RateLimitMiddleware.Limit)
	{
		public.GET("/ephemeris/current", p.AstrologyHandler.EphemerisCurrent)
		public.GET("/ephemeris/at", p.AstrologyHandler.EphemerisAt)
		public.GET("/astrology/positions", p.AstrologyHandler.Positions)
		public.GET("/chart/aspects", p.AstrologyHandler.Aspects)
		public.GET("/horoscope", p.HoroscopeHandler.Horoscope)
		public.GET("/location/search", p.LocationHandler.Search)
		public.GET("/location/reverse", p.LocationHandler.Reverse)
		public.GET("/discover", p.DiscoverHandler.Discover)
		public.GET("/temple/services", p.BookingHandler.Services)
	}

	authGroup := api.Group("/auth", p.RateLimitMiddleware.Limit)
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/apple", p.AuthHandler.AppleSignIn)
		authGroup.POST("/refresh", p.AuthHandler.Refresh)
		authGroup.POST("/logout", p.AuthHandler.Logout)
		authGroup.GET("/validate", p.AuthHandler.Validate, p.AuthMiddleware.Authenticate)
	}

	// Authenticated routes, rate limited per user.
	private := api.Group("", p.AuthMiddleware.Authenticate, p.RateLimitMiddleware.Limit)
	{
		private.GET("/profile", p.ProfileHandler.GetProfile)
		private.PUT("/profile", p.ProfileHandler.UpdateProfile)

		private.GET("/astrology/chart", p.AstrologyHandler.BirthChart)
		private.GET("/astrology/dashas", p.AstrologyHandler.Dashas)

		private.POST("/match", p.MatchHandler.Compute)
		private.GET("/match", p.MatchHandler.List)
		private.GET("/match/:id", p.MatchHandler.Get)
		private.DELETE("/match/:id", p.MatchHandler.Delete)

		private.POST("/bookmarks", p.HoroscopeHandler.CreateBookmark)
		private.GET("/bookmarks", p.HoroscopeHandler.ListBookmarks)
		private.DELETE("/bookmarks/:id", p.HoroscopeHandler.DeleteBookmark)

		private.POST("/chat", p.ChatHandler.Send)
		private.GET("/chat", p.ChatHandler.ListConversations)
		private.GET("/chat/:conversationID", p.ChatHandler.Messages)

		private.POST("/reports", p.ReportHandler.Request)
		private.GET("/reports", p.ReportHandler.List)
		private.GET("/reports/:id", p.ReportHandler.Get)

		private.POST("/temple/bookings", p.BookingHandler.Create)
		private.GET("/temple/bookings", p.BookingHandler.List)
		private.DELETE("/temple/bookings/:id", p.BookingHandler.Cancel)
		private.GET("/temple/bookings/:id/pass", p.BookingHandler.Pass)
	}
}
