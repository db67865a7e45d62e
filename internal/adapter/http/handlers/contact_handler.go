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

// ContactHandler handles the general inquiry form.

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// SendContact godoc
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ContactRequest  true  "Contact form"
// @Success      200      {object}  response.ContactResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /contact [post]
func (h *ContactHandler) SendContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[contact][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	msg, err := h.usecase.Send(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to send message")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ContactResponse{
		Success: true,
		Message: "Message sent successfully",
		ID:      msg.ID,
		Data:    msg,
	})
}

// ListContactMessages godoc
// @Summary      List contact messages, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.ListResponse[entities.ContactMessage]
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contact-messages [get]
func (h *ContactHandler) ListContactMessages(c *gin.Context) {
	messages, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to fetch contact messages")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewList(messages))
}

// GetContactMessage godoc
// @Summary      Get a contact message by id
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Contact message id"
// @Success      200  {object}  response.ItemResponse[entities.ContactMessage]
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contact-messages/{id} [get]
func (h *ContactHandler) GetContactMessage(c *gin.Context) {
	msg, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err, "Failed to fetch contact message")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ItemResponse[entities.ContactMessage]{Success: true, Data: msg})
}
