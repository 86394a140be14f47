package service

import (
	"context"
	"strings"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/repository"

	"github.com/google/uuid"
)

type EncomendistaService interface {
	Crear(ctx context.Context, req dto.CrearEncomendistaRequest) (dto.EncomendistaResponse, error)
	Listar(ctx context.Context) ([]dto.EncomendistaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EncomendistaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type encomendistaService struct {
	repo repository.EncomendistaRepository
}

func NewEncomendistaService(repo repository.EncomendistaRepository) EncomendistaService {
	return &encomendistaService{repo: repo}
}

func (s *encomendistaService) Crear(ctx context.Context, req dto.CrearEncomendistaRequest) (dto.EncomendistaResponse, error) {
	e := &model.Encomendista{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Email:    req.Email,
		Activo:   true,
	}
	for _, d := range req.Destinos {
		destino := model.Destino{Nombre: d.Nombre}
		for _, h := range d.Horarios {
			destino.Horarios = append(destino.Horarios, model.Horario{
				Dias:       strings.Join(h.Dias, ","),
				HoraInicio: h.HoraInicio,
				HoraFin:    h.HoraFin,
			})
		}
		e.Destinos = append(e.Destinos, destino)
	}

	if err := s.repo.Crear(ctx, e); err != nil {
		return dto.EncomendistaResponse{}, err
	}
	return mapEncomendista(e), nil
}

func (s *encomendistaService) Listar(ctx context.Context) ([]dto.EncomendistaResponse, error) {
	encomendistas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EncomendistaResponse, 0, len(encomendistas))
	for i := range encomendistas {
		out = append(out, mapEncomendista(&encomendistas[i]))
	}
	return out, nil
}

func (s *encomendistaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EncomendistaResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	resp := mapEncomendista(e)
	return &resp, nil
}

func (s *encomendistaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Desactivar(ctx, id)
}

func mapEncomendista(e *model.Encomendista) dto.EncomendistaResponse {
	resp := dto.EncomendistaResponse{
		ID:       e.ID.String(),
		Nombre:   e.Nombre,
		Telefono: e.Telefono,
		Email:    e.Email,
		Activo:   e.Activo,
		Destinos: make([]dto.DestinoResponse, 0, len(e.Destinos)),
	}
	for _, d := range e.Destinos {
		destino := dto.DestinoResponse{
			ID:       d.ID.String(),
			Nombre:   d.Nombre,
			Horarios: make([]dto.HorarioResponse, 0, len(d.Horarios)),
		}
		for _, h := range d.Horarios {
			destino.Horarios = append(destino.Horarios, dto.HorarioResponse{
				ID:         h.ID.String(),
				Dias:       strings.Split(h.Dias, ","),
				HoraInicio: h.HoraInicio,
				HoraFin:    h.HoraFin,
			})
		}
		resp.Destinos = append(resp.Destinos, destino)
	}
	return resp
}
