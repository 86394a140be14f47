package worker

// etiquetas_worker.go
// Generates sticker sheet PDFs for urgent batches. Generation is retried with
// exponential backoff, capped at 3 attempts; after that the job goes to the DLQ.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/infra"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxIntentosEtiquetas = 3

// EtiquetasJobPayload is the job envelope sent to QueueEtiquetas.
type EtiquetasJobPayload struct {
	PedidoIDs []string `json:"pedido_ids"`
	// NotificarEmail, when set, mails the resulting sheet to the almacen.
	NotificarEmail string `json:"notificar_email,omitempty"`
}

type EtiquetasWorker struct {
	pedidoRepo  repository.PedidoRepository
	rdb         *redis.Client
	dispatcher  *Dispatcher
	storagePath string
}

func NewEtiquetasWorker(pedidoRepo repository.PedidoRepository, rdb *redis.Client, dispatcher *Dispatcher, storagePath string) *EtiquetasWorker {
	return &EtiquetasWorker{
		pedidoRepo:  pedidoRepo,
		rdb:         rdb,
		dispatcher:  dispatcher,
		storagePath: storagePath,
	}
}

// Process resolves the batch's orders and renders the sticker sheet.
func (w *EtiquetasWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EtiquetasJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("etiquetas_worker: invalid payload")
		return
	}
	if len(payload.PedidoIDs) == 0 {
		log.Warn().Msg("etiquetas_worker: empty batch — skipping")
		return
	}

	pedidos := make([]model.Pedido, 0, len(payload.PedidoIDs))
	for _, raw := range payload.PedidoIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			log.Warn().Str("pedido_id", raw).Msg("etiquetas_worker: ID invalido, se omite")
			continue
		}
		pedido, err := w.pedidoRepo.FindByID(ctx, id)
		if err != nil {
			log.Error().Err(err).Str("pedido_id", raw).Msg("etiquetas_worker: lookup failed")
			continue
		}
		if pedido == nil {
			log.Warn().Str("pedido_id", raw).Msg("etiquetas_worker: pedido no encontrado, se omite")
			continue
		}
		pedidos = append(pedidos, *pedido)
	}
	if len(pedidos) == 0 {
		log.Warn().Msg("etiquetas_worker: ningun pedido resoluble — skipping")
		return
	}

	var path string
	var err error
	for intento := 1; intento <= maxIntentosEtiquetas; intento++ {
		path, err = infra.GenerateEtiquetasPDF(pedidos, w.storagePath)
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", intento).Msg("etiquetas_worker: generation failed, retrying")
		time.Sleep(time.Duration(intento) * time.Second)
	}
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueEtiquetas, "etiquetas", raw, err.Error(), maxIntentosEtiquetas)
		return
	}

	log.Info().Str("path", path).Int("pedidos", len(pedidos)).Msg("etiquetas_worker: sheet generated")

	if payload.NotificarEmail != "" && w.dispatcher != nil {
		err := w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
			ToEmail: payload.NotificarEmail,
			Subject: "Etiquetas de pedidos urgentes",
			Body:    "Se adjunta la hoja de etiquetas del lote urgente.",
			PDFPath: path,
		})
		if err != nil {
			log.Error().Err(err).Msg("etiquetas_worker: failed to enqueue notification email")
		}
	}
}
