package handler

import (
	"net/http"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/apierror"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ImportacionHandler struct{ svc service.ImportacionService }

func NewImportacionHandler(svc service.ImportacionService) *ImportacionHandler {
	return &ImportacionHandler{svc: svc}
}

// ImportarCSV godoc
// @Summary      Importar hoja de calculo
// @Description  Parsea una hoja exportada a CSV en bloques por fecha y devuelve borradores de pedidos, clientas y encomendistas detectados. No persiste nada.
// @Tags         importacion
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        archivo formData file true "CSV exportado de la hoja"
// @Success      200 {object} dto.ImportacionResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/importacion/csv [post]
func (h *ImportacionHandler) ImportarCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Se espera el archivo CSV en el campo 'archivo'"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer func() { _ = file.Close() }()

	resp, err := h.svc.ParsearCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
