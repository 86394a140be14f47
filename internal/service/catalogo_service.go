package service

// Catalog services for the simple reference entities: clientes, tiendas y
// productos. Encomendistas (nested destinos/horarios) live in their own file.

import (
	"context"
	"errors"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/repository"

	"github.com/google/uuid"
)

// ── Clientes ─────────────────────────────────────────────────────────────────

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:       c.ID.String(),
		Nombre:   c.Nombre,
		Telefono: c.Telefono,
		Nota:     c.Nota,
		Activo:   c.Activo,
	}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Nota:     req.Nota,
		Activo:   true,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, mapCliente(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	resp := mapCliente(c)
	return &resp, nil
}

func (s *clienteService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Desactivar(ctx, id)
}

// ── Tiendas ──────────────────────────────────────────────────────────────────

type TiendaService interface {
	Crear(ctx context.Context, req dto.CrearTiendaRequest) (dto.TiendaResponse, error)
	Listar(ctx context.Context) ([]dto.TiendaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type tiendaService struct {
	repo repository.TiendaRepository
}

func NewTiendaService(repo repository.TiendaRepository) TiendaService {
	return &tiendaService{repo: repo}
}

func mapTienda(t *model.Tienda) dto.TiendaResponse {
	return dto.TiendaResponse{
		ID:       t.ID.String(),
		Nombre:   t.Nombre,
		Prefijo:  t.Prefijo,
		Telefono: t.Telefono,
		Activo:   t.Activo,
	}
}

func (s *tiendaService) Crear(ctx context.Context, req dto.CrearTiendaRequest) (dto.TiendaResponse, error) {
	// The prefijo seeds every codigo_pedido, so duplicates would collide.
	existente, err := s.repo.ObtenerPorPrefijo(ctx, req.Prefijo)
	if err != nil {
		return dto.TiendaResponse{}, err
	}
	if existente != nil {
		return dto.TiendaResponse{}, errors.New("ya existe una tienda con ese prefijo")
	}

	t := &model.Tienda{
		Nombre:   req.Nombre,
		Prefijo:  req.Prefijo,
		Telefono: req.Telefono,
		Activo:   true,
	}
	if err := s.repo.Crear(ctx, t); err != nil {
		return dto.TiendaResponse{}, err
	}
	return mapTienda(t), nil
}

func (s *tiendaService) Listar(ctx context.Context) ([]dto.TiendaResponse, error) {
	tiendas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TiendaResponse, 0, len(tiendas))
	for i := range tiendas {
		out = append(out, mapTienda(&tiendas[i]))
	}
	return out, nil
}

func (s *tiendaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Desactivar(ctx, id)
}

// ── Productos ────────────────────────────────────────────────────────────────

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error)
	Listar(ctx context.Context, filtro dto.ProductoFilter) ([]dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func mapProducto(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:            p.ID.String(),
		Codigo:        p.Codigo,
		Album:         p.Album,
		Reservado:     p.Reservado,
		FechaLiberado: p.FechaLiberado,
	}
	if p.PedidoID != nil {
		id := p.PedidoID.String()
		resp.PedidoID = &id
	}
	return resp
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error) {
	p := &model.Producto{Codigo: req.Codigo, Album: req.Album}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProducto(p), nil
}

func (s *productoService) Listar(ctx context.Context, filtro dto.ProductoFilter) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, filtro.Album, filtro.Reservado)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, mapProducto(&productos[i]))
	}
	return out, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := mapProducto(p)
	return &resp, nil
}
