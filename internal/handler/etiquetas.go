package handler

import (
	"net/http"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/apierror"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/service"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/worker"

	"github.com/gin-gonic/gin"
)

type EtiquetasHandler struct {
	pedidos    service.PedidoService
	dispatcher *worker.Dispatcher
}

func NewEtiquetasHandler(pedidos service.PedidoService, dispatcher *worker.Dispatcher) *EtiquetasHandler {
	return &EtiquetasHandler{pedidos: pedidos, dispatcher: dispatcher}
}

type generarEtiquetasRequest struct {
	// PedidoIDs explicit batch; empty = todos los urgentes de hoy.
	PedidoIDs      []string `json:"pedido_ids" validate:"omitempty,dive,uuid"`
	FechaHoy       string   `json:"fecha_hoy"  validate:"omitempty,len=10"`
	NotificarEmail string   `json:"notificar_email" validate:"omitempty,email"`
}

// GenerarUrgentes godoc
// @Summary      Generar etiquetas del lote urgente
// @Description  Encola la generacion asincrona de la hoja de etiquetas (8 por pagina). Sin pedido_ids usa todos los pendientes urgentes.
// @Tags         etiquetas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body generarEtiquetasRequest true "Lote"
// @Success      202  {object} map[string]interface{}
// @Failure      400  {object} apierror.APIError
// @Router       /v1/etiquetas/urgentes [post]
func (h *EtiquetasHandler) GenerarUrgentes(c *gin.Context) {
	var req generarEtiquetasRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ids := req.PedidoIDs
	if len(ids) == 0 {
		urgentes, err := h.pedidos.UrgentesEmpacar(c.Request.Context(), req.FechaHoy)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		for _, p := range urgentes.Data {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusOK, gin.H{"encolado": false, "pedidos": 0})
		return
	}

	err := h.dispatcher.EnqueueEtiquetas(c.Request.Context(), worker.EtiquetasJobPayload{
		PedidoIDs:      ids,
		NotificarEmail: req.NotificarEmail,
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("No se pudo encolar la generacion de etiquetas"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"encolado": true, "pedidos": len(ids)})
}
