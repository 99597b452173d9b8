package routes

import (
	"leadpilot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads      = "/leads"
	PathQuotations = "/quotations"
	PathPayments   = "/payments"
)

func addLeadPilotRoutes(
	rg *gin.RouterGroup,
	leadHandler *handlers.LeadHandler,
	quotationHandler *handlers.QuotationHandler,
	paymentHandler *handlers.DepositPaymentHandler,
) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("/:lead_id", leadHandler.GetLead)
		leads.GET("/:lead_id/quickwins", leadHandler.GetLeadQuickWins)
		leads.GET("/:lead_id/problems", leadHandler.GetLeadProblems)
		leads.POST("/:lead_id/quotations", quotationHandler.CreateQuotationForLead)
		leads.GET("/:lead_id/quotation", quotationHandler.GetLatestQuotationForLead)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("/:quotation_id", quotationHandler.GetQuotation)
		quotations.PATCH("/:quotation_id/accept", quotationHandler.AcceptQuotation)
		quotations.PATCH("/:quotation_id/reject", quotationHandler.RejectQuotation)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quotation_id", paymentHandler.CreateDepositByQuotationID)
		payments.GET("/:quotation_id", paymentHandler.GetDepositByQuotationID)
	}
}
