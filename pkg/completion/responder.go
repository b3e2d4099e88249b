package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
)

// Responder garante que toda mensagem receba um texto: falhas do Client viram
// FallbackText e são registradas no log com o Kind correspondente.
type Responder struct {
	client Client
	logger logger.Logger
}

// NewResponder cria um novo Responder
func NewResponder(client Client, log logger.Logger) *Responder {
	return &Responder{client: client, logger: log}
}

// Reply nunca retorna erro.
func (r *Responder) Reply(ctx context.Context, message string) (reply string) {
	defer func() {
		if p := recover(); p != nil {
			r.report(&Error{Kind: KindUnknown, Err: fmt.Errorf("panic: %v", p)})
			reply = FallbackText
		}
	}()

	text, err := r.client.Complete(ctx, message)
	if err != nil {
		r.report(err)
		return FallbackText
	}
	return text
}

func (r *Responder) report(err error) {
	var cerr *Error
	if !errors.As(err, &cerr) {
		cerr = &Error{Kind: KindUnknown, Err: err}
	}
	keysAndValues := []interface{}{
		"kind", string(cerr.Kind),
		"status_code", cerr.StatusCode,
		"error", err,
	}
	// Cliente desconectado não indica degradação do provedor
	if cerr.Kind == KindCanceled {
		r.logger.Warn("Requisição cancelada pelo cliente, usando resposta padrão", keysAndValues...)
		return
	}
	r.logger.Error("Erro na chamada do provedor, usando resposta padrão", keysAndValues...)
}
