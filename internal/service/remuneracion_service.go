package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/agenda"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccionRemuneracionCreada    = "creada"
	AccionRemuneracionEliminada = "eliminada"
)

// RemuneracionService manages the daily payout ledger: an idempotent
// mark/unmark toggle per (pedido, fecha, tipo) plus per-courier aggregation
// and a live per-date stream.
type RemuneracionService interface {
	Alternar(ctx context.Context, actorNombre string, req dto.AlternarRemuneracionRequest) (*dto.AlternarRemuneracionResponse, error)
	ListarPorFecha(ctx context.Context, fecha string) ([]dto.RemuneracionResponse, error)
	TotalesPorFecha(ctx context.Context, fecha string) (*dto.TotalesRemuneracionResponse, error)
	Suscribir(ctx context.Context, fecha string) (<-chan []dto.RemuneracionResponse, error)
}

type remuneracionService struct {
	repo       repository.RemuneracionRepository
	pedidoRepo repository.PedidoRepository
	rdb        *redis.Client // nil disables publish/subscribe (unit test mode)
}

func NewRemuneracionService(
	repo repository.RemuneracionRepository,
	pedidoRepo repository.PedidoRepository,
	rdb *redis.Client,
) RemuneracionService {
	return &remuneracionService{repo: repo, pedidoRepo: pedidoRepo, rdb: rdb}
}

func canalRemuneraciones(fecha string) string { return "remuneraciones:" + fecha }

// Alternar runs the toggle inside one transaction: the lookup locks the
// matching row, so two concurrent toggles for the same key serialize instead
// of double-inserting. The composite unique index backs this up at the
// schema level.
func (s *remuneracionService) Alternar(ctx context.Context, actorNombre string, req dto.AlternarRemuneracionRequest) (*dto.AlternarRemuneracionResponse, error) {
	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, fmt.Errorf("pedido_id invalido: %w", err)
	}

	fecha := req.Fecha
	if fecha == "" {
		fecha = agenda.Dia(time.Now()).Format(agenda.FormatoFecha)
	} else if _, err := agenda.ParseFechaLocal(fecha); err != nil {
		return nil, err
	}

	pedido, err := s.pedidoRepo.FindByID(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, ErrPedidoNoEncontrado
	}

	accion := ""
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existente, err := s.repo.FindForToggleTx(ctx, tx, pedidoID, fecha, req.Tipo)
		if err != nil {
			return err
		}
		if existente != nil {
			accion = AccionRemuneracionEliminada
			return s.repo.DeleteTx(ctx, tx, existente.ID)
		}
		accion = AccionRemuneracionCreada
		return s.repo.CreateTx(ctx, tx, &model.Remuneracion{
			PedidoID:           pedidoID,
			Tipo:               req.Tipo,
			Fecha:              fecha,
			Monto:              req.Monto,
			UsuarioNombre:      actorNombre,
			EncomendistaNombre: pedido.NombreEncomendista(),
			Timestamp:          time.Now().Format(time.RFC3339),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	s.publicar(ctx, fecha)
	return &dto.AlternarRemuneracionResponse{Accion: accion, OK: true}, nil
}

// publicar notifies stream subscribers that the date's snapshot changed.
// Best-effort: a failed publish never fails the toggle.
func (s *remuneracionService) publicar(ctx context.Context, fecha string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Publish(ctx, canalRemuneraciones(fecha), "cambio").Err(); err != nil {
		log.Warn().Err(err).Str("fecha", fecha).Msg("no se pudo publicar cambio de remuneraciones")
	}
}

func (s *remuneracionService) ListarPorFecha(ctx context.Context, fecha string) ([]dto.RemuneracionResponse, error) {
	recs, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RemuneracionResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.RemuneracionResponse{
			ID:                 rec.ID.String(),
			PedidoID:           rec.PedidoID.String(),
			Tipo:               rec.Tipo,
			Monto:              rec.Monto,
			UsuarioNombre:      rec.UsuarioNombre,
			EncomendistaNombre: rec.EncomendistaNombre,
			Fecha:              rec.Fecha,
			Timestamp:          rec.Timestamp,
		})
	}
	return out, nil
}

// TotalesPorFecha sums monto per courier over the full snapshot. It always
// recomputes from scratch — the snapshot is small (one day) and incremental
// bookkeeping is not worth the drift risk.
func (s *remuneracionService) TotalesPorFecha(ctx context.Context, fecha string) (*dto.TotalesRemuneracionResponse, error) {
	recs, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}

	porCourier := make(map[string]*dto.TotalEncomendista)
	for _, rec := range recs {
		total, ok := porCourier[rec.EncomendistaNombre]
		if !ok {
			total = &dto.TotalEncomendista{
				EncomendistaNombre: rec.EncomendistaNombre,
				TotalRetirado:      decimal.Zero,
				TotalNoRetirado:    decimal.Zero,
			}
			porCourier[rec.EncomendistaNombre] = total
		}
		switch rec.Tipo {
		case model.TipoRemuneracionRetirado:
			total.TotalRetirado = total.TotalRetirado.Add(rec.Monto)
		case model.TipoRemuneracionNoRetirado:
			total.TotalNoRetirado = total.TotalNoRetirado.Add(rec.Monto)
		}
	}

	totales := make([]dto.TotalEncomendista, 0, len(porCourier))
	for _, t := range porCourier {
		totales = append(totales, *t)
	}
	sort.Slice(totales, func(i, j int) bool {
		return totales[i].EncomendistaNombre < totales[j].EncomendistaNombre
	})

	return &dto.TotalesRemuneracionResponse{Fecha: fecha, Totales: totales}, nil
}

// Suscribir delivers the date's full snapshot on subscription and again after
// every toggle, newest-first. The channel closes when ctx is cancelled.
func (s *remuneracionService) Suscribir(ctx context.Context, fecha string) (<-chan []dto.RemuneracionResponse, error) {
	if s.rdb == nil {
		return nil, errors.New("stream de remuneraciones no disponible sin redis")
	}

	pubsub := s.rdb.Subscribe(ctx, canalRemuneraciones(fecha))
	out := make(chan []dto.RemuneracionResponse, 1)

	emitir := func() {
		snapshot, err := s.ListarPorFecha(ctx, fecha)
		if err != nil {
			log.Error().Err(err).Str("fecha", fecha).Msg("no se pudo leer snapshot de remuneraciones")
			return
		}
		select {
		case out <- snapshot:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(out)
		defer func() { _ = pubsub.Close() }()

		emitir() // initial snapshot

		mensajes := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-mensajes:
				if !ok {
					return
				}
				emitir()
			}
		}
	}()

	return out, nil
}
