package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/Taller-api/internal/application/notification"
	"github.com/jhoicas/Taller-api/pkg/logger"
)

const (
	pendingKey    = "email:pending"
	deadletterKey = "email:dead"

	maxAttempts  = 5
	retryBackoff = 30 * time.Second
	popTimeout   = 5 * time.Second
)

// envelope mensaje en cola con su contador de intentos.
type envelope struct {
	Message  notification.EmailMessage `json:"message"`
	Attempts int                       `json:"attempts"`
}

// Sender envía un correo de forma síncrona (implementado por el mailer SMTP).
type Sender interface {
	Send(msg notification.EmailMessage) error
}

// Broker operaciones de lista que usa la cola; las satisface *redis.Client.
type Broker interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

var _ notification.EmailEnqueuer = (*EmailQueue)(nil)

// EmailQueue cola de correos sobre Redis. Enqueue empuja a una lista y el
// worker los consume con BRPOP; un envío fallido se reintenta con backoff
// hasta maxAttempts y después pasa a la cola de mensajes muertos.
type EmailQueue struct {
	client Broker
	sender Sender
	log    *logger.Logger
}

// NewEmailQueue construye la cola sobre un cliente Redis.
func NewEmailQueue(client Broker, sender Sender, log *logger.Logger) *EmailQueue {
	return &EmailQueue{client: client, sender: sender, log: log}
}

// Enqueue empuja un correo a la cola de pendientes.
func (q *EmailQueue) Enqueue(ctx context.Context, msg notification.EmailMessage) error {
	payload, err := json.Marshal(envelope{Message: msg})
	if err != nil {
		return fmt.Errorf("serializar correo: %w", err)
	}
	if err := q.client.LPush(ctx, pendingKey, payload).Err(); err != nil {
		return fmt.Errorf("encolar correo: %w", err)
	}
	return nil
}

// StartWorker consume la cola hasta que el contexto se cancele.
// Diseñado para correr en una goroutine propia.
func (q *EmailQueue) StartWorker(ctx context.Context) {
	q.log.Info().Msg("worker de correos iniciado")
	for {
		select {
		case <-ctx.Done():
			q.log.Info().Msg("worker de correos detenido")
			return
		default:
		}

		res, err := q.client.BRPop(ctx, popTimeout, pendingKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			q.log.Error().Err(err).Msg("error leyendo la cola de correos")
			time.Sleep(time.Second)
			continue
		}
		// BRPop devuelve [clave, valor]
		if len(res) < 2 {
			continue
		}

		var env envelope
		if err := json.Unmarshal([]byte(res[1]), &env); err != nil {
			q.log.Error().Err(err).Msg("mensaje ilegible en la cola, se descarta")
			continue
		}
		q.process(ctx, env)
	}
}

// process intenta el envío y decide reintento o cola de muertos.
func (q *EmailQueue) process(ctx context.Context, env envelope) {
	sendErr := q.sender.Send(env.Message)
	if sendErr == nil {
		q.log.Info().Str("to", env.Message.To).Str("subject", env.Message.Subject).Msg("correo enviado")
		return
	}
	env.Attempts++
	q.log.Warn().Err(sendErr).Str("to", env.Message.To).Int("attempts", env.Attempts).Msg("fallo enviando correo")

	payload, err := json.Marshal(env)
	if err != nil {
		q.log.Error().Err(err).Msg("no se pudo serializar el reintento")
		return
	}

	// Los push de reintento y dead-letter usan un contexto propio: una
	// cancelación durante el apagado no debe perder el mensaje.
	if env.Attempts >= maxAttempts {
		if err := q.client.LPush(context.Background(), deadletterKey, payload).Err(); err != nil {
			q.log.Error().Err(err).Str("to", env.Message.To).Msg("no se pudo mover a la cola de muertos")
		} else {
			q.log.Error().Str("to", env.Message.To).Msg("correo agotó reintentos, movido a la cola de muertos")
		}
		return
	}

	// Se reencola antes de esperar: el mensaje ya está a salvo y el backoff
	// solo marca el paso del worker.
	if err := q.client.LPush(context.Background(), pendingKey, payload).Err(); err != nil {
		q.log.Error().Err(err).Str("to", env.Message.To).Msg("no se pudo reencolar el correo")
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(retryBackoff):
	}
}
