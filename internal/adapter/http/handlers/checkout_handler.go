package handlers

import (
	"log"
	request "motorcar_consultancy/internal/adapter/http/dto/request"
	response "motorcar_consultancy/internal/adapter/http/dto/response"
	"motorcar_consultancy/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles consultation requests (checkout orders).

type CheckoutHandler struct {
	usecase usecase.IOrderUseCase
}

func NewCheckoutHandler(uc usecase.IOrderUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// SubmitCheckout godoc
// @Summary      Submit a consultation request
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "Checkout form"
// @Success      200      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) SubmitCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to submit consultation request")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CheckoutResponse{
		Success: true,
		Message: "Consultation request submitted successfully",
		OrderID: order.ID,
		Data:    response.FromOrder(order),
	})
}

// ListConsultationRequests godoc
// @Summary      List consultation requests, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.ListResponse[response.OrderResponse]
// @Failure      500  {object}  pkg.HTTPError
// @Router       /consultation-requests [get]
func (h *CheckoutHandler) ListConsultationRequests(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[checkout][handler] list failed err=%v", err)
		appErr := mapSubmissionError(err, "Failed to fetch consultation requests")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewList(response.FromOrders(orders)))
}

// GetConsultationRequest godoc
// @Summary      Get a consultation request by id
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Consultation request id"
// @Success      200  {object}  response.ItemResponse[response.OrderResponse]
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /consultation-requests/{id} [get]
func (h *CheckoutHandler) GetConsultationRequest(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to fetch consultation request")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ItemResponse[response.OrderResponse]{Success: true, Data: response.FromOrder(order)})
}
