package routes

import (
	"studio_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients     = "/clients"
	PathAccessCodes = "/access-codes"
	PathCoupons     = "/coupons"
	PathSetups      = "/project-setups"
	PathQuotations  = "/quotations"
	PathProjects    = "/projects"
	PathWorkflow    = "/workflow"
)

func addQuotationRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	accessCodeHandler *handlers.AccessCodeHandler,
	couponHandler *handlers.CouponHandler,
	setupHandler *handlers.ProjectSetupHandler,
	quotationHandler *handlers.QuotationHandler,
	projectHandler *handlers.RunningProjectHandler,
	workflowHandler *handlers.WorkflowHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClientByID)
		clients.GET("/code/:client_code", clientHandler.GetClientByCode)
		clients.PATCH("/:id/archive", clientHandler.ArchiveClient)
		clients.POST("/:id/invite", clientHandler.InviteClient)
	}

	accessCodes := rg.Group(PathAccessCodes)
	{
		accessCodes.POST("", accessCodeHandler.IssueAccessCode)
		accessCodes.GET("", accessCodeHandler.ListAccessCodes)
		accessCodes.POST("/validate", accessCodeHandler.ValidateAccessCode)
		accessCodes.PATCH("/consume", accessCodeHandler.ConsumeAccessCode)
		accessCodes.DELETE("/expired", accessCodeHandler.CleanupExpiredAccessCodes)
	}

	coupons := rg.Group(PathCoupons)
	{
		coupons.POST("", couponHandler.CreateCoupon)
		coupons.GET("/:code", couponHandler.GetCouponByCode)
		coupons.POST("/validate", couponHandler.ValidateCoupon)
	}

	setups := rg.Group(PathSetups)
	{
		setups.POST("", setupHandler.CreateProjectSetup)
		setups.GET("/:id", setupHandler.GetProjectSetupByID)
		setups.GET("/client/:client_id", setupHandler.GetProjectSetupByClientID)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:id", quotationHandler.GetQuotationByID)
		quotations.GET("/client/:client_id", quotationHandler.ListQuotationsByClientID)
		quotations.PATCH("/:id/confirm", quotationHandler.ConfirmQuotation)
		quotations.PATCH("/:id/reject", quotationHandler.RejectQuotation)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("/:id", projectHandler.GetProjectByID)
		projects.GET("/client/:client_id", projectHandler.ListProjectsByClientID)
		projects.PATCH("/:id/progress", projectHandler.UpdateProjectProgress)
		projects.PATCH("/:id/complete", projectHandler.CompleteProject)
	}

	workflow := rg.Group(PathWorkflow)
	{
		workflow.GET("/:client_id", workflowHandler.GetWorkflowStatus)
		workflow.PATCH("/:client_id/steps", workflowHandler.CompleteWorkflowStep)
	}
}
