package main

import (
	"errors"
	"github.com/andywarui/rsheet/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
	"net/url"
)

type ApiController struct {
	CellStore         contracts.CellStore
	CellHistory       contracts.CellHistoryRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

var InvalidWebhookUrlError = errors.New("webhook url should be an absolute http(s) url")

// cellHistory may be nil when the journal is disabled.
func NewApiController(
	cellStore contracts.CellStore, cellHistory contracts.CellHistoryRepository,
	webhookDispatcher contracts.WebhookDispatcher,
) *ApiController {
	return &ApiController{
		CellStore:         cellStore,
		CellHistory:       cellHistory,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"cell": params.CellId, "value": api.CellStore.Get(params.CellId)})
}

func (api *ApiController) GetCellHistoryAction(c *gin.Context) {
	if api.CellHistory == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": contracts.CellHistoryDisabledError.Error()})
		return
	}

	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	history, err := api.CellHistory.History(params.CellId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, gin.H{"cell": params.CellId, "history": history})
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params, ok := api.bindCellParams(c)
	if !ok {
		return
	}

	request := SubscribeRequest{}
	err := c.ShouldBindJSON(&request)

	if err == nil && request.WebhookUrl != "" {
		err = validateWebhookUrl(request.WebhookUrl)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.CellId, request.WebhookUrl)
	c.JSON(http.StatusOK, gin.H{"cell": params.CellId, "webhook_url": request.WebhookUrl})
}

func (api *ApiController) bindCellParams(c *gin.Context) (params CellEndpointParams, ok bool) {
	err := c.ShouldBindUri(&params)

	if err == nil && !IsCellIdentifier(params.CellId) {
		err = contracts.InvalidCellNameError
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return params, false
	}

	return params, true
}

func validateWebhookUrl(webhookUrl string) error {
	parsed, err := url.ParseRequestURI(webhookUrl)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return InvalidWebhookUrlError
	}

	return nil
}
