package handlers

import (
	"log"
	request "motorcar_consultancy/internal/adapter/http/dto/request"
	response "motorcar_consultancy/internal/adapter/http/dto/response"
	"motorcar_consultancy/internal/domain/entities"
	"motorcar_consultancy/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ServiceSelectionHandler struct {
	usecase usecase.IServiceSelectionUseCase
}

func NewServiceSelectionHandler(uc usecase.IServiceSelectionUseCase) *ServiceSelectionHandler {
	return &ServiceSelectionHandler{usecase: uc}
}

// SelectService godoc
// @Summary      Record a service selection
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SelectServiceRequest  true  "Selected service"
// @Success      200      {object}  response.ServiceSelectionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /select-service [post]
func (h *ServiceSelectionHandler) SelectService(c *gin.Context) {
	var payload request.SelectServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[selection][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	sel, err := h.usecase.Record(c.Request.Context(), payload.Service, payload.Timestamp)
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to record service selection")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ServiceSelectionResponse{
		Success: true,
		Message: "Service selection recorded",
		ID:      sel.ID,
		Data:    sel,
	})
}

// ListServiceSelections godoc
// @Summary      List service selections, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.ListResponse[entities.ServiceSelection]
// @Failure      500  {object}  pkg.HTTPError
// @Router       /service-selections [get]
func (h *ServiceSelectionHandler) ListServiceSelections(c *gin.Context) {
	selections, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to fetch service selections")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewList(selections))
}

// GetServiceSelection godoc
// @Summary      Get a service selection by id
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Service selection id"
// @Success      200  {object}  response.ItemResponse[entities.ServiceSelection]
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-selections/{id} [get]
func (h *ServiceSelectionHandler) GetServiceSelection(c *gin.Context) {
	sel, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to fetch service selection")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ItemResponse[entities.ServiceSelection]{Success: true, Data: sel})
}
