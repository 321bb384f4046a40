package domain

// Notification is an e-mail notification tracked by the notifications service.
type Notification struct {
	ID        ID     `json:"id"`
	Type      string `json:"tipo"`
	Recipient string `json:"destinatario"`
	Subject   string `json:"asunto"`
	Sent      bool   `json:"enviada"`
	CreatedAt string `json:"fecha_creacion"`
	SentAt    string `json:"fecha_envio"`
	BookingID *ID    `json:"reserva_id"`
}

// NotificationFilter narrows the notification history.
type NotificationFilter struct {
	Type string
	From string
	To   string
}
