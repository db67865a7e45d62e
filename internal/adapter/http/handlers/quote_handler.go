package handlers

import (
	request "motorcar_consultancy/internal/adapter/http/dto/request"
	response "motorcar_consultancy/internal/adapter/http/dto/response"
	"motorcar_consultancy/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the service catalog and checkout summaries.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListServices godoc
// @Summary      Service catalog
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  response.ListResponse[response.CatalogEntryResponse]
// @Router       /services [get]
func (h *QuoteHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewList(response.FromCatalog(h.usecase.Catalog())))
}

// QuoteCheckout godoc
// @Summary      Compose line items and totals for a service
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Service and quantities"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /checkout/quote [post]
func (h *QuoteHandler) QuoteCheckout(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Quote(payload.ToInput())
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to compose quote")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}
