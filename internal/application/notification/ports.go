package notification

import "context"

// EmailMessage correo pendiente de envío.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// EmailEnqueuer puerto de encolado de correos. La implementación real empuja
// a Redis y un worker los despacha por SMTP; los casos de uso nunca envían
// correo de forma síncrona.
type EmailEnqueuer interface {
	Enqueue(ctx context.Context, msg EmailMessage) error
}
