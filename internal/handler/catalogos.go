package handler

// CRUD handlers for the reference catalogs. They share the same shape: bind,
// delegate, map service errors to 4xx.

import (
	"net/http"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/apierror"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/dto"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Clientes ─────────────────────────────────────────────────────────────────

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear clienta
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearClienteRequest true "Nueva clienta"
// @Success      201  {object} dto.ClienteResponse
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar clientas
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener clienta
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar la clienta"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Clienta no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar clienta
// @Tags         clientes
// @Security     BearerAuth
// @Param        id path string true "UUID"
// @Success      204
// @Router       /v1/clientes/{id} [delete]
func (h *ClientesHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Encomendistas ────────────────────────────────────────────────────────────

type EncomendistasHandler struct{ svc service.EncomendistaService }

func NewEncomendistasHandler(svc service.EncomendistaService) *EncomendistasHandler {
	return &EncomendistasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear encomendista
// @Description  Crea el encomendista con sus destinos y horarios anidados en un solo insert.
// @Tags         encomendistas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearEncomendistaRequest true "Nuevo encomendista"
// @Success      201  {object} dto.EncomendistaResponse
// @Router       /v1/encomendistas [post]
func (h *EncomendistasHandler) Crear(c *gin.Context) {
	var req dto.CrearEncomendistaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar encomendistas activos
// @Tags         encomendistas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.EncomendistaResponse
// @Router       /v1/encomendistas [get]
func (h *EncomendistasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar encomendistas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener encomendista
// @Tags         encomendistas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID"
// @Success      200 {object} dto.EncomendistaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/encomendistas/{id} [get]
func (h *EncomendistasHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar el encomendista"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Encomendista no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar encomendista
// @Tags         encomendistas
// @Security     BearerAuth
// @Param        id path string true "UUID"
// @Success      204
// @Router       /v1/encomendistas/{id} [delete]
func (h *EncomendistasHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Tiendas ──────────────────────────────────────────────────────────────────

type TiendasHandler struct{ svc service.TiendaService }

func NewTiendasHandler(svc service.TiendaService) *TiendasHandler {
	return &TiendasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear tienda
// @Description  El prefijo alimenta el codigo de pedido, asi que debe ser unico.
// @Tags         tiendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearTiendaRequest true "Nueva tienda"
// @Success      201  {object} dto.TiendaResponse
// @Router       /v1/tiendas [post]
func (h *TiendasHandler) Crear(c *gin.Context) {
	var req dto.CrearTiendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar tiendas
// @Tags         tiendas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TiendaResponse
// @Router       /v1/tiendas [get]
func (h *TiendasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tiendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar tienda
// @Tags         tiendas
// @Security     BearerAuth
// @Param        id path string true "UUID"
// @Success      204
// @Router       /v1/tiendas/{id} [delete]
func (h *TiendasHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Productos ────────────────────────────────────────────────────────────────

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProductoRequest true "Nuevo producto"
// @Success      201  {object} dto.ProductoResponse
// @Router       /v1/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        album     query string false "Filtrar por album"
// @Param        reservado query bool   false "Filtrar por reserva"
// @Success      200 {array} dto.ProductoResponse
// @Router       /v1/productos [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filtro dto.ProductoFilter
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener producto
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID"
// @Success      200 {object} dto.ProductoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/productos/{id} [get]
func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar el producto"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
