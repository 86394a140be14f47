package handler

import (
	"net/http"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/apierror"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/middleware"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/model"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear pedido
// @Description  Crea un pedido en estado pendiente, genera el codigo y reserva los productos en la misma transaccion.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Datos del pedido"
// @Success      201  {object} dto.PedidoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Crear(c.Request.Context(), claims.Email, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar pedidos
// @Description  Filtra por estados (coma-separados) con limite configurable.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        estado query string false "Estados separados por coma, p.ej. enviado,retirado"
// @Param        limite query int    false "Maximo de registros (default 100)"
// @Success      200 {object} dto.PedidoListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/pedidos [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	var filtro dto.PedidoFilter
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SinFinalizar godoc
// @Summary      Pedidos sin finalizar
// @Description  Lista de trabajo por defecto: excluye estados finalizados y ordena por urgencia, estado, encomendista y fecha.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PedidoListResponse
// @Router       /v1/pedidos-sin-finalizar [get]
func (h *PedidosHandler) SinFinalizar(c *gin.Context) {
	resp, err := h.svc.SinFinalizar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pedido/{id} [get]
func (h *PedidosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar el pedido"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorCodigo godoc
// @Summary      Obtener pedido por codigo
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        codigo path string true "Codigo del pedido, p.ej. EG202501081"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pedido/codigo/{codigo} [get]
func (h *PedidosHandler) ObtenerPorCodigo(c *gin.Context) {
	resp, err := h.svc.ObtenerPorCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar el pedido"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de un pedido
// @Description  Registra la transicion con el par de auditoria (email del actor + timestamp). Liberar suelta los productos reservados.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "UUID del pedido"
// @Param        body body dto.CambiarEstadoRequest true "Nuevo estado"
// @Success      200  {object} dto.PedidoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/pedido/{id}/cambiar-estado [post]
func (h *PedidosHandler) CambiarEstado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	estado, ok := model.ParseEstado(req.Estado)
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("Estado desconocido: "+req.Estado))
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, claims.Email, estado)
	if err != nil {
		if err == service.ErrPedidoNoEncontrado {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar pedido
// @Description  Borra el pedido y suelta sus productos sin estampar fecha_liberado.
// @Tags         pedidos
// @Security     BearerAuth
// @Param        id path string true "UUID del pedido"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pedido/{id} [delete]
func (h *PedidosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if err == service.ErrPedidoNoEncontrado {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// UrgentesEmpacar godoc
// @Summary      Pedidos urgentes por empacar
// @Description  Pendientes cuya fecha de entrega cae antes del limite de urgencia (ultimo dia de envio + 7 dias).
// @Tags         agenda
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_hoy query string false "Hoy del cliente, YYYY-MM-DD (default: reloj del servidor)"
// @Success      200 {object} dto.PedidoListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/pedidos-urgentes-empacar [get]
func (h *PedidosHandler) UrgentesEmpacar(c *gin.Context) {
	var q dto.FechaHoyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.UrgentesEmpacar(c.Request.Context(), q.FechaHoy)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorRemunerar godoc
// @Summary      Pedidos por remunerar
// @Description  Pedidos con fecha de entrega vencida cuyo estado no esta excluido de remuneracion.
// @Tags         agenda
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_hoy query string false "Hoy del cliente, YYYY-MM-DD"
// @Success      200 {object} dto.PedidoListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/pedidos-por-remunerar [get]
func (h *PedidosHandler) PorRemunerar(c *gin.Context) {
	var q dto.FechaHoyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.PorRemunerar(c.Request.Context(), q.FechaHoy)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ParaEnvios godoc
// @Summary      Pedidos enviados del dia
// @Description  Pedidos enviados con entrega hoy o hasta dias_atras dias antes, para el tablero de retiro.
// @Tags         agenda
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_hoy  query string false "Hoy del cliente, YYYY-MM-DD"
// @Param        dias_atras query int    false "Dias hacia atras (default 0)"
// @Success      200 {object} dto.EnvioDelDiaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/pedidos-para-envios [get]
func (h *PedidosHandler) ParaEnvios(c *gin.Context) {
	var q dto.FechaHoyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ParaEnvios(c.Request.Context(), q.FechaHoy, q.DiasAtras)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
