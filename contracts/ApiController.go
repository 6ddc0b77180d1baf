package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GetCellAction(c *gin.Context)
	GetCellHistoryAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
