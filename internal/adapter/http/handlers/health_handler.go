package handlers

import (
	response "motorcar_consultancy/internal/adapter/http/dto/response"
	"motorcar_consultancy/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	usecase usecase.IHealthUseCase
}

func NewHealthHandler(uc usecase.IHealthUseCase) *HealthHandler {
	return &HealthHandler{usecase: uc}
}

// Health godoc
// @Summary      Liveness and storage readiness
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	st := h.usecase.Check(c.Request.Context())
	c.JSON(http.StatusOK, response.HealthResponse{
		Success:   true,
		Message:   "MotorCar Consultancy API is running",
		Timestamp: st.CheckedAt,
		Storage:   st.Storage,
		Driver:    st.Driver,
	})
}
