package server

import (
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	lots := router.Group("/lots")
	{
		lots.POST("", auctionHandler.CreateLotHandler)
		lots.GET("/:lot_id", auctionHandler.GetLotHandler)
		lots.GET("/:lot_id/bids", auctionHandler.GetBidsByLotHandler)
		lots.GET("/:lot_id/winning", auctionHandler.GetWinningBidHandler)
		lots.POST("/:lot_id/submit", auctionHandler.SubmitLotHandler)
		lots.POST("/:lot_id/activate", auctionHandler.ActivateLotHandler)
		lots.POST("/:lot_id/cancel", auctionHandler.CancelLotHandler)
		lots.POST("/:lot_id/finalize", auctionHandler.FinalizeLotHandler)
	}

	bidders := router.Group("/bidders")
	{
		bidders.PUT("/:bidder_id/proxy", auctionHandler.SetProxySettingHandler)
	}

	return router
}
