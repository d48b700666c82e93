package routes

import (
	"seguros_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSimulations = "/simulations"
	PathPolicies    = "/policies"
	PathAdmin       = "/admin"
)

func addSimulationRoutes(
	rg *gin.RouterGroup,
	simulationHandler *handlers.SimulationHandler,
	policyHandler *handlers.PolicyHandler,
	documentHandler *handlers.DocumentHandler,
	watchHandler *handlers.WatchHandler,
) {
	simulations := rg.Group(PathSimulations)
	{
		simulations.POST("", simulationHandler.CreateSimulation)
		simulations.GET("", simulationHandler.ListSimulations)
		simulations.GET("/watch", watchHandler.WatchSimulations)
		simulations.GET("/:id", simulationHandler.GetSimulation)

		simulations.PUT("/:id/documents/quote.pdf", simulationHandler.UploadQuote)
		simulations.DELETE("/:id/documents/quote.pdf", documentHandler.DeleteQuoteDocument)
		simulations.GET("/:id/documents/quote.pdf", documentHandler.DownloadQuoteDocument)

		simulations.POST("/:id/policy", policyHandler.StartPolicy)
		simulations.GET("/:id/policy", policyHandler.GetSimulationPolicy)
	}
}

func addPolicyRoutes(
	rg *gin.RouterGroup,
	policyHandler *handlers.PolicyHandler,
	documentHandler *handlers.DocumentHandler,
	watchHandler *handlers.WatchHandler,
) {
	policies := rg.Group(PathPolicies)
	{
		policies.GET("", policyHandler.ListPolicies)
		policies.GET("/watch", watchHandler.WatchPolicies)
		policies.GET("/:id", policyHandler.GetPolicy)
		policies.PATCH("/:id", policyHandler.SaveDraft)
		policies.POST("/:id/submit", policyHandler.SubmitPolicy)
		policies.PATCH("/:id/status", policyHandler.SetPolicyStatus)

		policies.PUT("/:id/documents/:slot", documentHandler.UploadPolicyDocument)
		policies.DELETE("/:id/documents/:slot", documentHandler.DeletePolicyDocument)
		policies.GET("/:id/documents/:slot", documentHandler.DownloadPolicyDocument)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/policies/export", exportHandler.ExportPolicies)
	}
}
