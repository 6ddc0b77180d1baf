package main

import (
	"github.com/andywarui/rsheet/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
)

const ApiVersion = "v1"

const historyPath = "history"
const subscribePath = "subscribe"

const WebsocketPath = "/ws"

func SetupRouter(controller contracts.ApiController, websocketAction gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.GET("/cells/:cell_id/"+historyPath, controller.GetCellHistoryAction)
	apiRouterGroup.POST("/cells/:cell_id/"+subscribePath, controller.SubscribeAction)
	apiRouterGroup.GET("/cells/:cell_id", controller.GetCellAction)

	if websocketAction != nil {
		router.GET(WebsocketPath, websocketAction)
	}

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
