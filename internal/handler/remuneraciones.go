package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/agenda"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/apierror"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/middleware"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type RemuneracionesHandler struct{ svc service.RemuneracionService }

func NewRemuneracionesHandler(svc service.RemuneracionService) *RemuneracionesHandler {
	return &RemuneracionesHandler{svc: svc}
}

// fechaQuery resolves the ?fecha= param, defaulting to the server-local today.
func fechaQuery(c *gin.Context) (string, bool) {
	fecha := c.Query("fecha")
	if fecha == "" {
		return agenda.Dia(time.Now()).Format(agenda.FormatoFecha), true
	}
	if _, err := agenda.ParseFechaLocal(fecha); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha invalida, se espera YYYY-MM-DD"))
		return "", false
	}
	return fecha, true
}

// Alternar godoc
// @Summary      Alternar remuneracion
// @Description  Marca o desmarca el pago de un pedido para (pedido, fecha, tipo). Idempotente: dos llamadas vuelven al estado inicial.
// @Tags         remuneraciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AlternarRemuneracionRequest true "Toggle"
// @Success      200  {object} dto.AlternarRemuneracionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/remuneraciones/alternar [post]
func (h *RemuneracionesHandler) Alternar(c *gin.Context) {
	var req dto.AlternarRemuneracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Alternar(c.Request.Context(), claims.Nombre, req)
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

// Listar godoc
// @Summary      Remuneraciones del dia
// @Tags         remuneraciones
// @Produce      json
// @Security     BearerAuth
// @Param        fecha query string false "YYYY-MM-DD (default: hoy)"
// @Success      200 {array} dto.RemuneracionResponse
// @Router       /v1/remuneraciones [get]
func (h *RemuneracionesHandler) Listar(c *gin.Context) {
	fecha, ok := fechaQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorFecha(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar remuneraciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Totales godoc
// @Summary      Totales por encomendista
// @Description  Suma retirado / no-retirado por encomendista sobre el snapshot completo del dia.
// @Tags         remuneraciones
// @Produce      json
// @Security     BearerAuth
// @Param        fecha query string false "YYYY-MM-DD (default: hoy)"
// @Success      200 {object} dto.TotalesRemuneracionResponse
// @Router       /v1/remuneraciones/totales [get]
func (h *RemuneracionesHandler) Totales(c *gin.Context) {
	fecha, ok := fechaQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.TotalesPorFecha(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular totales"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stream godoc
// @Summary      Stream de remuneraciones (SSE)
// @Description  Emite el snapshot completo del dia al conectar y tras cada toggle, via server-sent events.
// @Tags         remuneraciones
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        fecha query string false "YYYY-MM-DD (default: hoy)"
// @Success      200
// @Router       /v1/remuneraciones/stream [get]
func (h *RemuneracionesHandler) Stream(c *gin.Context) {
	fecha, ok := fechaQuery(c)
	if !ok {
		return
	}

	snapshots, err := h.svc.Suscribir(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		snapshot, ok := <-snapshots
		if !ok {
			return false
		}
		data, err := json.Marshal(snapshot)
		if err != nil {
			return false
		}
		c.SSEvent("remuneraciones", string(data))
		return true
	})
}
