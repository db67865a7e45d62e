package routes

import (
	"motorcar_consultancy/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSelectService        = "/select-service"
	PathCheckout             = "/checkout"
	PathContact              = "/contact"
	PathServices             = "/services"
	PathConsultationRequests = "/consultation-requests"
	PathServiceSelections    = "/service-selections"
	PathContactMessages      = "/contact-messages"
	PathHealth               = "/health"
)

type apiHandlers struct {
	checkout  *handlers.CheckoutHandler
	selection *handlers.ServiceSelectionHandler
	contact   *handlers.ContactHandler
	quote     *handlers.QuoteHandler
	health    *handlers.HealthHandler
}

func addSubmissionRoutes(rg *gin.RouterGroup, h apiHandlers) {
	rg.POST(PathSelectService, h.selection.SelectService)
	rg.POST(PathCheckout, h.checkout.SubmitCheckout)
	rg.POST(PathContact, h.contact.SendContact)
}

func addQuoteRoutes(rg *gin.RouterGroup, h apiHandlers) {
	rg.GET(PathServices, h.quote.ListServices)
	rg.POST(PathCheckout+"/quote", h.quote.QuoteCheckout)
}

// Admin listings. No authentication is applied.
func addAdminRoutes(rg *gin.RouterGroup, h apiHandlers) {
	requests := rg.Group(PathConsultationRequests)
	{
		requests.GET("", h.checkout.ListConsultationRequests)
		requests.GET("/:id", h.checkout.GetConsultationRequest)
	}

	selections := rg.Group(PathServiceSelections)
	{
		selections.GET("", h.selection.ListServiceSelections)
		selections.GET("/:id", h.selection.GetServiceSelection)
	}

	messages := rg.Group(PathContactMessages)
	{
		messages.GET("", h.contact.ListContactMessages)
		messages.GET("/:id", h.contact.GetContactMessage)
	}
}

func addHealthRoutes(rg *gin.RouterGroup, h apiHandlers) {
	rg.GET(PathHealth, h.health.Health)
}

func addPageRoutes(r *gin.Engine, pages *handlers.PagesHandler) {
	r.GET("/", pages.Page("index.html"))
	r.GET("/consult", pages.Page("consult.html"))
	r.GET("/checkout", pages.Page("checkout.html"))
	r.GET("/admin", pages.Page("admin.html"))
}
