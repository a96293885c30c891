// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"columbus/internal/http/handlers"
	"columbus/internal/http/middleware"
	"columbus/internal/infra"
	"columbus/internal/modules/chat"
	"columbus/internal/modules/itinerary"
	"columbus/internal/modules/user"
)

type RouterDeps struct {
	Itinerary *itinerary.Service
	Chat      *chat.Service
	User      *user.Service
	Verifier  infra.TokenVerifier
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	itineraryHandler := handlers.NewItineraryHandler(deps.Itinerary)
	api.POST("/itineraries/generate", itineraryHandler.Generate)
	api.GET("/itineraries/:id", itineraryHandler.Get)
	api.PUT("/itineraries/:id", itineraryHandler.Update)

	chatHandler := handlers.NewChatHandler(deps.Chat)
	api.POST("/chat", chatHandler.Respond)

	preferencesHandler := handlers.NewPreferencesHandler(deps.User)
	api.GET("/users/preferences", preferencesHandler.Get)
	api.PUT("/users/preferences", preferencesHandler.Put)

	discoveryHandler := handlers.NewDiscoveryHandler()
	api.GET("/destinations/suggest", discoveryHandler.SuggestDestinations)
	api.GET("/transportation/routes", discoveryHandler.TransportationRoutes)

	return r
}
