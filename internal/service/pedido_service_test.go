package service

import (
	"context"
	"testing"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory stubs. DB() returns nil, which makes runTx call the closure
// directly, so the service logic runs without a database.

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clon := *p
	r.pedidos[p.ID] = &clon
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, nil
	}
	clon := *p
	return &clon, nil
}

func (r *stubPedidoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Pedido, error) {
	for _, p := range r.pedidos {
		if p.CodigoPedido == codigo {
			clon := *p
			return &clon, nil
		}
	}
	return nil, nil
}

func (r *stubPedidoRepo) ListByEstados(_ context.Context, estados []model.Estado, limite int) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if len(estados) > 0 {
			encontrado := false
			for _, e := range estados {
				if p.Estado == e {
					encontrado = true
					break
				}
			}
			if !encontrado {
				continue
			}
		}
		out = append(out, *p)
		if limite > 0 && len(out) == limite {
			break
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListSinFinalizar(_ context.Context) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		switch p.Estado {
		case model.EstadoNoRetirado, model.EstadoCancelado, model.EstadoRetiradoLocal:
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	clon := *p
	r.pedidos[p.ID] = &clon
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) NextSecuenciaCodigo(_ context.Context, _ *gorm.DB, prefijoDia string) (int, error) {
	n := 1
	for _, p := range r.pedidos {
		if len(p.CodigoPedido) >= len(prefijoDia) && p.CodigoPedido[:len(prefijoDia)] == prefijoDia {
			n++
		}
	}
	return n, nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) agregar(codigo string) uuid.UUID {
	id := uuid.New()
	r.productos[id] = &model.Producto{ID: id, Codigo: codigo, Album: "album-1"}
	return id
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *stubProductoRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) ListByPedido(_ context.Context, pedidoID uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.PedidoID != nil && *p.PedidoID == pedidoID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ string, _ *bool) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) ReservarTx(_ context.Context, _ *gorm.DB, ids []uuid.UUID, pedidoID uuid.UUID) error {
	for _, id := range ids {
		p, ok := r.productos[id]
		if !ok || p.Reservado {
			return gorm.ErrInvalidData
		}
	}
	for _, id := range ids {
		p := r.productos[id]
		p.Reservado = true
		pid := pedidoID
		p.PedidoID = &pid
	}
	return nil
}

func (r *stubProductoRepo) LiberarTx(_ context.Context, _ *gorm.DB, pedidoID uuid.UUID, fechaLiberado *string) error {
	for _, p := range r.productos {
		if p.PedidoID != nil && *p.PedidoID == pedidoID {
			p.Reservado = false
			p.PedidoID = nil
			p.FechaLiberado = fechaLiberado
		}
	}
	return nil
}

type stubTiendaRepo struct {
	tienda *model.Tienda
}

func (r *stubTiendaRepo) Crear(_ context.Context, _ *model.Tienda) error { return nil }
func (r *stubTiendaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Tienda, error) {
	if r.tienda != nil && r.tienda.ID == id {
		return r.tienda, nil
	}
	return nil, nil
}
func (r *stubTiendaRepo) ObtenerPorPrefijo(_ context.Context, _ string) (*model.Tienda, error) {
	return nil, nil
}
func (r *stubTiendaRepo) Listar(_ context.Context) ([]model.Tienda, error) { return nil, nil }
func (r *stubTiendaRepo) Desactivar(_ context.Context, _ uuid.UUID) error  { return nil }

// ── Helpers ──────────────────────────────────────────────────────────────────

type entorno struct {
	svc       PedidoService
	pedidos   *stubPedidoRepo
	productos *stubProductoRepo
	tienda    *model.Tienda
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	pedidos := newStubPedidoRepo()
	productos := newStubProductoRepo()
	tienda := &model.Tienda{ID: uuid.New(), Nombre: "Eli", Prefijo: "EG", Activo: true}
	return &entorno{
		svc:       NewPedidoService(pedidos, productos, &stubTiendaRepo{tienda: tienda}),
		pedidos:   pedidos,
		productos: productos,
		tienda:    tienda,
	}
}

func (e *entorno) requestValida(productosID ...uuid.UUID) dto.CrearPedidoRequest {
	ids := make([]string, 0, len(productosID))
	for _, id := range productosID {
		ids = append(ids, id.String())
	}
	dir := "Av. Siempre Viva 742"
	return dto.CrearPedidoRequest{
		ClienteID:              uuid.New().String(),
		TiendaID:               e.tienda.ID.String(),
		ProductosID:            ids,
		FechaEntregaProgramada: "2025-03-08",
		HoraInicio:             "14:00",
		HoraFin:                "16:00",
		Modo:                   model.ModoPersonalizado,
		DireccionPersonalizada: &dir,
		CostoPrendas:           decimal.NewFromInt(80),
		MontoEnvio:             decimal.NewFromInt(10),
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrear_FuerzaPendienteYAuditoria(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	resp, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(prod))
	require.NoError(t, err)

	assert.Equal(t, string(model.EstadoPendiente), resp.Estado)
	assert.Equal(t, "80", resp.CostoPrendas.String())
	assert.Equal(t, "90", resp.Total.String(), "total = costo_prendas + monto_envio")

	require.Len(t, resp.Historial, 1)
	assert.Equal(t, model.EstadoPendiente, resp.Historial[0].Estado)
	assert.Equal(t, "ana@taller.pe", resp.Historial[0].Usuario)
}

func TestCrear_CodigoSecuencialPorTiendaYDia(t *testing.T) {
	e := nuevoEntorno(t)
	p1 := e.productos.agregar("P-001")
	p2 := e.productos.agregar("P-002")

	r1, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(p1))
	require.NoError(t, err)
	r2, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(p2))
	require.NoError(t, err)

	assert.Regexp(t, `^EG\d{8}1$`, r1.CodigoPedido)
	assert.Regexp(t, `^EG\d{8}2$`, r2.CodigoPedido)
}

func TestCrear_ReservaProductosEnLaCreacion(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	resp, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(prod))
	require.NoError(t, err)

	guardado := e.productos.productos[prod]
	assert.True(t, guardado.Reservado)
	require.NotNil(t, guardado.PedidoID)
	assert.Equal(t, resp.ID, guardado.PedidoID.String())
}

func TestCrear_ProductoYaReservadoFalla(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	_, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(prod))
	require.NoError(t, err)

	_, err = e.svc.Crear(context.Background(), "bea@taller.pe", e.requestValida(prod))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reservado")
}

func TestCrear_ModoNormalRequiereEncomendista(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	req := e.requestValida(prod)
	req.Modo = model.ModoNormal
	req.DireccionPersonalizada = nil

	_, err := e.svc.Crear(context.Background(), "ana@taller.pe", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encomendista_id")
}

func TestCrear_ModoPersonalizadoRequiereDireccion(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	req := e.requestValida(prod)
	req.DireccionPersonalizada = nil

	_, err := e.svc.Crear(context.Background(), "ana@taller.pe", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "direccion_personalizada")
}

func TestCambiarEstado_RegistraParAuditoria(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	resp, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(prod))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	actualizado, err := e.svc.CambiarEstado(context.Background(), id, "bea@taller.pe", model.EstadoEmpacada)
	require.NoError(t, err)
	assert.Equal(t, string(model.EstadoEmpacada), actualizado.Estado)

	guardado := e.pedidos.pedidos[id]
	require.NotNil(t, guardado.EstadoEmpacadaUser)
	assert.Equal(t, "bea@taller.pe", *guardado.EstadoEmpacadaUser)
	require.NotNil(t, guardado.EstadoPendienteUser, "el par de creacion se conserva")
	assert.Equal(t, "ana@taller.pe", *guardado.EstadoPendienteUser)
}

func TestCambiarEstado_MismoEstadoNoRegistra(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	resp, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(prod))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	otra, err := e.svc.CambiarEstado(context.Background(), id, "bea@taller.pe", model.EstadoPendiente)
	require.NoError(t, err)
	assert.Equal(t, string(model.EstadoPendiente), otra.Estado)

	guardado := e.pedidos.pedidos[id]
	assert.Equal(t, "ana@taller.pe", *guardado.EstadoPendienteUser,
		"una transicion al mismo estado no pisa el par existente")
}

func TestCambiarEstado_LiberadoSueltaProductosConFecha(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	resp, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(prod))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	_, err = e.svc.CambiarEstado(context.Background(), id, "ana@taller.pe", model.EstadoLiberado)
	require.NoError(t, err)

	guardado := e.productos.productos[prod]
	assert.False(t, guardado.Reservado)
	assert.Nil(t, guardado.PedidoID)
	require.NotNil(t, guardado.FechaLiberado, "la liberacion estampa la fecha")
	assert.Len(t, *guardado.FechaLiberado, 10)
}

func TestEliminar_SueltaProductosSinFecha(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	resp, err := e.svc.Crear(context.Background(), "ana@taller.pe", e.requestValida(prod))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, e.svc.Eliminar(context.Background(), id))

	_, existe := e.pedidos.pedidos[id]
	assert.False(t, existe)

	guardado := e.productos.productos[prod]
	assert.False(t, guardado.Reservado)
	assert.Nil(t, guardado.PedidoID)
	assert.Nil(t, guardado.FechaLiberado, "la eliminacion no estampa fecha_liberado")
}

func TestEliminar_NoEncontrado(t *testing.T) {
	e := nuevoEntorno(t)
	err := e.svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPedidoNoEncontrado)
}

func TestListar_EstadoDesconocido(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.svc.Listar(context.Background(), dto.PedidoFilter{Estado: "enviado,volando"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volando")
}

func TestUrgentesEmpacar_FechaHoyExplicita(t *testing.T) {
	e := nuevoEntorno(t)
	prod := e.productos.agregar("P-001")

	// Entrega el sabado 2025-01-11; con hoy = miercoles 2025-01-08 el limite
	// de urgencia es 2025-01-15, asi que el pedido califica.
	req := e.requestValida(prod)
	req.FechaEntregaProgramada = "2025-01-11"
	_, err := e.svc.Crear(context.Background(), "ana@taller.pe", req)
	require.NoError(t, err)

	lista, err := e.svc.UrgentesEmpacar(context.Background(), "2025-01-08")
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.True(t, lista.Data[0].Urgente)

	// Con hoy corrido un mes el mismo pedido ya no es urgente: su fecha quedo
	// atras pero el filtro solo mira pendientes dentro de la ventana.
	lista, err = e.svc.UrgentesEmpacar(context.Background(), "2025-01-20")
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total, "fechas pasadas siguen siendo urgentes")
}

func TestUrgentesEmpacar_FechaInvalida(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.svc.UrgentesEmpacar(context.Background(), "08/01/2025")
	assert.Error(t, err)
}
