package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/agenda"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoService interface {
	Crear(ctx context.Context, actorEmail string, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	ObtenerPorCodigo(ctx context.Context, codigo string) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, filtro dto.PedidoFilter) (*dto.PedidoListResponse, error)
	SinFinalizar(ctx context.Context) (*dto.PedidoListResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, actorEmail string, nuevoEstado model.Estado) (*dto.PedidoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	UrgentesEmpacar(ctx context.Context, fechaHoy string) (*dto.PedidoListResponse, error)
	PorRemunerar(ctx context.Context, fechaHoy string) (*dto.PedidoListResponse, error)
	ParaEnvios(ctx context.Context, fechaHoy string, diasAtras int) (*dto.EnvioDelDiaResponse, error)
}

type pedidoService struct {
	repo         repository.PedidoRepository
	productoRepo repository.ProductoRepository
	tiendaRepo   repository.TiendaRepository
}

func NewPedidoService(
	repo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	tiendaRepo repository.TiendaRepository,
) PedidoService {
	return &pedidoService{repo: repo, productoRepo: productoRepo, tiendaRepo: tiendaRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

var ErrPedidoNoEncontrado = errors.New("pedido no encontrado")

// ── Crear ────────────────────────────────────────────────────────────────────
// Creation always forces estado=pendiente and stamps the creator's audit
// pair. Product reservation happens in the SAME transaction as the order
// insert, so a half-created order can never hold products.

func (s *pedidoService) Crear(ctx context.Context, actorEmail string, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id invalido: %w", err)
	}
	tiendaID, err := uuid.Parse(req.TiendaID)
	if err != nil {
		return nil, fmt.Errorf("tienda_id invalido: %w", err)
	}

	// Delivery mode rules: normal needs courier + drop-off point,
	// personalizado needs a free-form address and blank destino fields.
	var encomendistaID, destinoID *uuid.UUID
	switch req.Modo {
	case model.ModoNormal:
		if req.EncomendistaID == nil || req.DestinoID == nil {
			return nil, errors.New("modo normal requiere encomendista_id y destino_id")
		}
		eid, err := uuid.Parse(*req.EncomendistaID)
		if err != nil {
			return nil, fmt.Errorf("encomendista_id invalido: %w", err)
		}
		did, err := uuid.Parse(*req.DestinoID)
		if err != nil {
			return nil, fmt.Errorf("destino_id invalido: %w", err)
		}
		encomendistaID, destinoID = &eid, &did
	case model.ModoPersonalizado:
		if req.DireccionPersonalizada == nil || *req.DireccionPersonalizada == "" {
			return nil, errors.New("modo personalizado requiere direccion_personalizada")
		}
	default:
		return nil, fmt.Errorf("modo desconocido: %s", req.Modo)
	}

	entrega, err := agenda.ParseFechaLocal(req.FechaEntregaProgramada)
	if err != nil {
		return nil, err
	}

	productosID := make([]uuid.UUID, 0, len(req.ProductosID))
	for _, raw := range req.ProductosID {
		pid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("producto_id invalido: %w", err)
		}
		productosID = append(productosID, pid)
	}

	tienda, err := s.tiendaRepo.ObtenerPorID(ctx, tiendaID)
	if err != nil {
		return nil, err
	}
	if tienda == nil {
		return nil, errors.New("tienda no encontrada")
	}

	now := time.Now()
	pedido := model.Pedido{
		ClienteID:              clienteID,
		EncomendistaID:         encomendistaID,
		DestinoID:              destinoID,
		TiendaID:               tiendaID,
		FechaEntregaProgramada: req.FechaEntregaProgramada,
		DiaEntrega:             agenda.NombreDia(entrega),
		HoraInicio:             req.HoraInicio,
		HoraFin:                req.HoraFin,
		Modo:                   req.Modo,
		DireccionPersonalizada: req.DireccionPersonalizada,
		CostoPrendas:           req.CostoPrendas,
		MontoEnvio:             req.MontoEnvio,
		// Total se fija aqui, al escribir.
		Total: req.CostoPrendas.Add(req.MontoEnvio),
	}
	pedido.RegistrarTransicion(model.EstadoPendiente, actorEmail, now)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		prefijoDia := tienda.Prefijo + now.Format("20060102")
		seq, err := s.repo.NextSecuenciaCodigo(ctx, tx, prefijoDia)
		if err != nil {
			return err
		}
		pedido.CodigoPedido = fmt.Sprintf("%s%d", prefijoDia, seq)

		if err := s.repo.Create(ctx, tx, &pedido); err != nil {
			return err
		}
		if err := s.productoRepo.ReservarTx(ctx, tx, productosID, pedido.ID); err != nil {
			return errors.New("al menos un producto ya esta reservado por otro pedido")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := pedidoToResponse(&pedido, now)
	resp.Productos = req.ProductosID
	return resp, nil
}

// ── Lookups ──────────────────────────────────────────────────────────────────

func (s *pedidoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, nil // not-found is not an error
	}
	return pedidoToResponse(pedido, time.Now()), nil
}

func (s *pedidoService) ObtenerPorCodigo(ctx context.Context, codigo string) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, nil
	}
	return pedidoToResponse(pedido, time.Now()), nil
}

func (s *pedidoService) Listar(ctx context.Context, filtro dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	estados, err := parseEstadosQuery(filtro.Estado)
	if err != nil {
		return nil, err
	}
	if filtro.Limite < 1 {
		filtro.Limite = 100
	}
	pedidos, err := s.repo.ListByEstados(ctx, estados, filtro.Limite)
	if err != nil {
		return nil, err
	}
	return listResponse(pedidos, time.Now()), nil
}

// SinFinalizar is the default admin list: finalized estados excluded, sorted
// by the agenda policy (urgency, estado rank, courier, date).
func (s *pedidoService) SinFinalizar(ctx context.Context) (*dto.PedidoListResponse, error) {
	pedidos, err := s.repo.ListSinFinalizar(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return listResponse(agenda.OrdenarSinFinalizar(pedidos, now), now), nil
}

// ── CambiarEstado ────────────────────────────────────────────────────────────

func (s *pedidoService) CambiarEstado(ctx context.Context, id uuid.UUID, actorEmail string, nuevoEstado model.Estado) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, ErrPedidoNoEncontrado
	}

	now := time.Now()

	// Transitions are only recorded when the estado actually changes.
	if pedido.Estado == nuevoEstado {
		return pedidoToResponse(pedido, now), nil
	}

	pedido.RegistrarTransicion(nuevoEstado, actorEmail, now)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, pedido); err != nil {
			return err
		}
		// Liberation releases every reserved product and stamps the date it
		// became available again.
		if nuevoEstado == model.EstadoLiberado {
			fecha := now.Format(agenda.FormatoFecha)
			return s.productoRepo.LiberarTx(ctx, tx, pedido.ID, &fecha)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return pedidoToResponse(pedido, now), nil
}

// Eliminar hard-deletes a pedido (explicit eliminate action only) and frees
// its products without stamping fecha_liberado.
func (s *pedidoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if pedido == nil {
		return ErrPedidoNoEncontrado
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.productoRepo.LiberarTx(ctx, tx, pedido.ID, nil); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
}

// ── Classifier views ─────────────────────────────────────────────────────────
// fechaHoy lets the mobile client pin "today" explicitly (?fecha_hoy=); empty
// falls back to the server clock.

func (s *pedidoService) referencia(fechaHoy string) (time.Time, error) {
	if fechaHoy == "" {
		return time.Now(), nil
	}
	return agenda.ParseFechaLocal(fechaHoy)
}

func (s *pedidoService) UrgentesEmpacar(ctx context.Context, fechaHoy string) (*dto.PedidoListResponse, error) {
	now, err := s.referencia(fechaHoy)
	if err != nil {
		return nil, err
	}
	pedidos, err := s.repo.ListByEstados(ctx, []model.Estado{model.EstadoPendiente}, 0)
	if err != nil {
		return nil, err
	}
	return listResponse(agenda.UrgentesEmpacar(pedidos, now), now), nil
}

func (s *pedidoService) PorRemunerar(ctx context.Context, fechaHoy string) (*dto.PedidoListResponse, error) {
	now, err := s.referencia(fechaHoy)
	if err != nil {
		return nil, err
	}
	pedidos, err := s.repo.ListByEstados(ctx, nil, 0)
	if err != nil {
		return nil, err
	}
	return listResponse(agenda.PorRemunerar(pedidos, now), now), nil
}

func (s *pedidoService) ParaEnvios(ctx context.Context, fechaHoy string, diasAtras int) (*dto.EnvioDelDiaResponse, error) {
	now, err := s.referencia(fechaHoy)
	if err != nil {
		return nil, err
	}
	pedidos, err := s.repo.ListByEstados(ctx, []model.Estado{model.EstadoEnviado}, 0)
	if err != nil {
		return nil, err
	}
	seleccion := agenda.ParaEnvios(pedidos, now, diasAtras)
	return &dto.EnvioDelDiaResponse{
		FechaHoy:  agenda.Dia(now).Format(agenda.FormatoFecha),
		DiasAtras: diasAtras,
		Pedidos:   listResponse(seleccion, now).Data,
	}, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// parseEstadosQuery parses the comma-joined multi-status wire format
// (?estado=enviado,retirado,no-retirado). Empty input = all estados.
func parseEstadosQuery(raw string) ([]model.Estado, error) {
	if raw == "" {
		return nil, nil
	}
	var estados []model.Estado
	inicio := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ',' {
			valor := raw[inicio:i]
			estado, ok := model.ParseEstado(valor)
			if !ok {
				return nil, fmt.Errorf("estado desconocido: %q", valor)
			}
			estados = append(estados, estado)
			inicio = i + 1
		}
	}
	return estados, nil
}

func listResponse(pedidos []model.Pedido, now time.Time) *dto.PedidoListResponse {
	data := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		data = append(data, *pedidoToResponse(&pedidos[i], now))
	}
	return &dto.PedidoListResponse{Data: data, Total: len(data)}
}

func pedidoToResponse(p *model.Pedido, now time.Time) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:                     p.ID.String(),
		CodigoPedido:           p.CodigoPedido,
		Estado:                 string(p.Estado),
		ClienteID:              p.ClienteID.String(),
		TiendaID:               p.TiendaID.String(),
		FechaEntregaProgramada: p.FechaEntregaProgramada,
		DiaEntrega:             p.DiaEntrega,
		HoraInicio:             p.HoraInicio,
		HoraFin:                p.HoraFin,
		Modo:                   p.Modo,
		DireccionPersonalizada: p.DireccionPersonalizada,
		CostoPrendas:           p.CostoPrendas,
		MontoEnvio:             p.MontoEnvio,
		Total:                  p.Total,
		Urgente:                agenda.EsUrgenteEmpacar(p, now),
		Historial:              p.Historial(),
		CreatedAt:              p.CreatedAt.Format(time.RFC3339),
	}
	if p.HoraInicio != "" && p.HoraFin != "" {
		resp.EstadoIntradia = agenda.ClasificarIntradia(p.HoraInicio, p.HoraFin, now).String()
	}
	if p.Cliente != nil {
		resp.ClienteNombre = p.Cliente.Nombre
	}
	if p.EncomendistaID != nil {
		id := p.EncomendistaID.String()
		resp.EncomendistaID = &id
	}
	resp.Encomendista = p.NombreEncomendista()
	if p.DestinoID != nil {
		id := p.DestinoID.String()
		resp.DestinoID = &id
	}
	for _, producto := range p.Productos {
		resp.Productos = append(resp.Productos, producto.ID.String())
	}
	return resp
}
