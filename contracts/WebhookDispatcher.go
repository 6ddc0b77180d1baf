package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(cellId string, webhookUrl string)
	GetWebhookUrl(cellId string) string
	Notify(cellId string, value CellValue)
	Start()
	Close()
}
