package service

import (
	"context"
	"sort"
	"testing"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRemuneracionRepo struct {
	registros []model.Remuneracion
}

func (r *stubRemuneracionRepo) FindForToggleTx(_ context.Context, _ *gorm.DB, pedidoID uuid.UUID, fecha, tipo string) (*model.Remuneracion, error) {
	for i := range r.registros {
		reg := r.registros[i]
		if reg.PedidoID == pedidoID && reg.Fecha == fecha && reg.Tipo == tipo {
			clon := reg
			return &clon, nil
		}
	}
	return nil, nil
}

func (r *stubRemuneracionRepo) CreateTx(_ context.Context, _ *gorm.DB, reg *model.Remuneracion) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	r.registros = append(r.registros, *reg)
	return nil
}

func (r *stubRemuneracionRepo) DeleteTx(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	for i := range r.registros {
		if r.registros[i].ID == id {
			r.registros = append(r.registros[:i], r.registros[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubRemuneracionRepo) ListByFecha(_ context.Context, fecha string) ([]model.Remuneracion, error) {
	var out []model.Remuneracion
	for _, reg := range r.registros {
		if reg.Fecha == fecha {
			out = append(out, reg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (r *stubRemuneracionRepo) DB() *gorm.DB { return nil }

type entornoRemuneracion struct {
	svc      RemuneracionService
	repo     *stubRemuneracionRepo
	pedidoID uuid.UUID
}

func nuevoEntornoRemuneracion(t *testing.T) *entornoRemuneracion {
	t.Helper()
	pedidos := newStubPedidoRepo()
	pedido := &model.Pedido{
		ID:           uuid.New(),
		Estado:       model.EstadoRetirado,
		Encomendista: &model.Encomendista{Nombre: "Olva"},
	}
	pedidos.pedidos[pedido.ID] = pedido

	repo := &stubRemuneracionRepo{}
	return &entornoRemuneracion{
		svc:      NewRemuneracionService(repo, pedidos, nil),
		repo:     repo,
		pedidoID: pedido.ID,
	}
}

func (e *entornoRemuneracion) alternar(t *testing.T, tipo, fecha string) *dto.AlternarRemuneracionResponse {
	t.Helper()
	resp, err := e.svc.Alternar(context.Background(), "Ana", dto.AlternarRemuneracionRequest{
		PedidoID: e.pedidoID.String(),
		Tipo:     tipo,
		Fecha:    fecha,
		Monto:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	return resp
}

func TestAlternar_CreaYElimina(t *testing.T) {
	e := nuevoEntornoRemuneracion(t)

	resp := e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-08")
	assert.Equal(t, AccionRemuneracionCreada, resp.Accion)
	assert.True(t, resp.OK)
	require.Len(t, e.repo.registros, 1)
	assert.Equal(t, "Olva", e.repo.registros[0].EncomendistaNombre)
	assert.Equal(t, "Ana", e.repo.registros[0].UsuarioNombre)

	resp = e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-08")
	assert.Equal(t, AccionRemuneracionEliminada, resp.Accion)
	assert.Empty(t, e.repo.registros, "dos toggles vuelven al estado inicial")
}

func TestAlternar_TresVecesDejaUnRegistro(t *testing.T) {
	e := nuevoEntornoRemuneracion(t)

	e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-08")
	e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-08")
	e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-08")

	assert.Len(t, e.repo.registros, 1)
}

func TestAlternar_TiposIndependientes(t *testing.T) {
	e := nuevoEntornoRemuneracion(t)

	e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-08")
	e.alternar(t, model.TipoRemuneracionNoRetirado, "2025-01-08")

	assert.Len(t, e.repo.registros, 2, "retirado y no-retirado son llaves distintas")
}

func TestAlternar_FechasIndependientes(t *testing.T) {
	e := nuevoEntornoRemuneracion(t)

	e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-08")
	e.alternar(t, model.TipoRemuneracionRetirado, "2025-01-11")

	assert.Len(t, e.repo.registros, 2)
}

func TestAlternar_PedidoInexistente(t *testing.T) {
	e := nuevoEntornoRemuneracion(t)

	_, err := e.svc.Alternar(context.Background(), "Ana", dto.AlternarRemuneracionRequest{
		PedidoID: uuid.New().String(),
		Tipo:     model.TipoRemuneracionRetirado,
		Monto:    decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, ErrPedidoNoEncontrado)
}

func TestAlternar_FechaInvalida(t *testing.T) {
	e := nuevoEntornoRemuneracion(t)

	_, err := e.svc.Alternar(context.Background(), "Ana", dto.AlternarRemuneracionRequest{
		PedidoID: e.pedidoID.String(),
		Tipo:     model.TipoRemuneracionRetirado,
		Fecha:    "08-01-2025",
		Monto:    decimal.NewFromInt(5),
	})
	assert.Error(t, err)
}

func TestTotalesPorFecha_SumaPorEncomendista(t *testing.T) {
	repo := &stubRemuneracionRepo{}
	pedidos := newStubPedidoRepo()
	svc := NewRemuneracionService(repo, pedidos, nil)

	monto := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	repo.registros = []model.Remuneracion{
		{ID: uuid.New(), PedidoID: uuid.New(), Tipo: model.TipoRemuneracionRetirado, Fecha: "2025-01-08", Monto: monto(5), EncomendistaNombre: "Olva"},
		{ID: uuid.New(), PedidoID: uuid.New(), Tipo: model.TipoRemuneracionRetirado, Fecha: "2025-01-08", Monto: monto(7), EncomendistaNombre: "Olva"},
		{ID: uuid.New(), PedidoID: uuid.New(), Tipo: model.TipoRemuneracionNoRetirado, Fecha: "2025-01-08", Monto: monto(3), EncomendistaNombre: "Olva"},
		{ID: uuid.New(), PedidoID: uuid.New(), Tipo: model.TipoRemuneracionRetirado, Fecha: "2025-01-08", Monto: monto(4), EncomendistaNombre: "Shalom"},
		{ID: uuid.New(), PedidoID: uuid.New(), Tipo: model.TipoRemuneracionRetirado, Fecha: "2025-01-11", Monto: monto(9), EncomendistaNombre: "Olva"},
	}

	resp, err := svc.TotalesPorFecha(context.Background(), "2025-01-08")
	require.NoError(t, err)
	require.Len(t, resp.Totales, 2)

	// Ordenado por nombre.
	assert.Equal(t, "Olva", resp.Totales[0].EncomendistaNombre)
	assert.Equal(t, "12", resp.Totales[0].TotalRetirado.String())
	assert.Equal(t, "3", resp.Totales[0].TotalNoRetirado.String())
	assert.Equal(t, "Shalom", resp.Totales[1].EncomendistaNombre)
	assert.Equal(t, "4", resp.Totales[1].TotalRetirado.String())
}

func TestListarPorFecha_MasRecientePrimero(t *testing.T) {
	repo := &stubRemuneracionRepo{}
	svc := NewRemuneracionService(repo, newStubPedidoRepo(), nil)

	repo.registros = []model.Remuneracion{
		{ID: uuid.New(), PedidoID: uuid.New(), Tipo: model.TipoRemuneracionRetirado, Fecha: "2025-01-08", Timestamp: "2025-01-08T10:00:00Z"},
		{ID: uuid.New(), PedidoID: uuid.New(), Tipo: model.TipoRemuneracionRetirado, Fecha: "2025-01-08", Timestamp: "2025-01-08T12:00:00Z"},
	}

	out, err := svc.ListarPorFecha(context.Background(), "2025-01-08")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-01-08T12:00:00Z", out[0].Timestamp)
}
