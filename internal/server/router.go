package server

import (
	"campus-market/internal/models"
	handler "campus-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs
type Services struct {
	Listings    handler.ListingServiceInterface
	Collections handler.CollectionServiceInterface
	Accounts    handler.AccountServiceInterface
	Messages    handler.MessageServiceInterface
	Verifier    TokenVerifier
	UploadDir   string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	listingHandler := handler.NewListingHandler(svc.Listings)
	collectionHandler := handler.NewCollectionHandler(svc.Collections)
	accountHandler := handler.NewAccountHandler(svc.Accounts)
	messageHandler := handler.NewMessageHandler(svc.Messages)
	uploadHandler := handler.NewUploadHandler(svc.UploadDir)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", accountHandler.RegisterHandler)
		auth.POST("/login", accountHandler.LoginHandler)
	}

	// Browsing stays open; mutations require a bearer token
	items := api.Group("/items")
	{
		items.GET("", listingHandler.CatalogHandler)
		items.GET("/:item_id", listingHandler.GetListingHandler)

		protected := items.Group("", AuthRequired(svc.Verifier))
		{
			protected.POST("", listingHandler.CreateListingHandler)
			protected.PUT("/:item_id", listingHandler.UpdateListingHandler)
			protected.DELETE("/:item_id", listingHandler.DeleteListingHandler)
			protected.POST("/:item_id/bids", listingHandler.PlaceBidHandler)
			protected.POST("/:item_id/purchase", listingHandler.PurchaseHandler)
		}
	}

	users := api.Group("/users", AuthRequired(svc.Verifier))
	{
		users.GET("/me", accountHandler.ProfileHandler)
		users.PUT("/me/profile", accountHandler.UpdateProfileHandler)
		users.GET("/me/items", listingHandler.MyListingsHandler)

		for _, collection := range []string{
			models.CollectionCart,
			models.CollectionWatchlist,
			models.CollectionBidlist,
		} {
			group := users.Group("/" + collection)
			group.GET("", collectionHandler.ItemsHandler(collection))
			group.POST("/add/:item_id", collectionHandler.AddHandler(collection))
			group.DELETE("/remove/:item_id", collectionHandler.RemoveHandler(collection))
			group.POST("/move/:item_id", collectionHandler.MoveHandler(collection))
		}
	}

	messages := api.Group("/messages", AuthRequired(svc.Verifier))
	{
		messages.GET("", messageHandler.ConversationsHandler)
		messages.POST("", messageHandler.SendMessageHandler)
		messages.GET("/with/:user_ref", messageHandler.HistoryHandler)
	}

	api.POST("/uploads", AuthRequired(svc.Verifier), uploadHandler.UploadImageHandler)

	return router
}
