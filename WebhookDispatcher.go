package main

import (
	"bytes"
	"github.com/andywarui/rsheet/contracts"
	json "github.com/bytedance/sonic"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const WebhookWorkersCount = 5

type WebhookPayload struct {
	Cell  string              `json:"cell"`
	Value contracts.CellValue `json:"value"`
}

type WebhookSendCommand struct {
	Webhook string
	Payload WebhookPayload
}

type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	done     chan struct{}
	doneOnce sync.Once
	mu       sync.RWMutex
	webhooks map[string]string
	client   *http.Client
	logger   *slog.Logger
}

func NewWebhookDispatcher(logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		done:     make(chan struct{}),
		webhooks: map[string]string{},
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger,
	}
}

// SetWebhookUrl subscribes webhookUrl to cellId; an empty url unsubscribes.
func (manager *WebhookDispatcher) SetWebhookUrl(cellId string, webhookUrl string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, cellId)
	} else {
		manager.webhooks[cellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(cellId string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	return manager.webhooks[cellId]
}

func (manager *WebhookDispatcher) Notify(cellId string, value contracts.CellValue) {
	webhook := manager.GetWebhookUrl(cellId)
	if webhook == "" {
		return
	}

	go manager.addToQueue(WebhookSendCommand{
		Webhook: webhook,
		Payload: WebhookPayload{Cell: cellId, Value: value},
	})
}

func (manager *WebhookDispatcher) addToQueue(command WebhookSendCommand) {
	select {
	case manager.queue <- command:
	case <-manager.done:
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	manager.doneOnce.Do(func() {
		close(manager.done)
	})
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	for {
		select {
		case command := <-manager.queue:
			manager.send(command)
		case <-manager.done:
			return
		}
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	payload, err := json.Marshal(command.Payload)
	if err != nil {
		manager.logger.Warn("webhook payload encoding failed", "cell", command.Payload.Cell, "error", err)
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		manager.logger.Warn("webhook send failed", "webhook", command.Webhook, "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		manager.logger.Warn("unexpected webhook response", "webhook", command.Webhook, "status", response.Status)
	}
}
