package handlers

import (
	"net/http"

	request "seguros_xpto/internal/adapter/http/dto/request"
	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/adapter/http/middleware"
	"seguros_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SimulationHandler serves the quote requests ("simulações").
type SimulationHandler struct {
	usecase usecase.ISimulationUseCase
}

func NewSimulationHandler(uc usecase.ISimulationUseCase) *SimulationHandler {
	return &SimulationHandler{usecase: uc}
}

// CreateSimulation godoc
// @Summary      Submit a simulation
// @Description  Creates the simulation, or updates it when the same request is repeated within the same minute. The bearer token is optional: without it the simulation is stored as an anonymous lead. A resubmission that targets another owner's simulation is rejected.
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.SimulationRequest  true  "Simulation"
// @Success      201      {object}  response.SimulationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /simulations [post]
func (h *SimulationHandler) CreateSimulation(c *gin.Context) {
	var payload request.SimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	sim, err := h.usecase.CreateOrUpdate(c.Request.Context(), middleware.Principal(c), payload.ToInput())
	if err != nil {
		writeError(c, mapSimulationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSimulation(sim))
}

// ListSimulations godoc
// @Summary      List simulations
// @Description  Customers see their own simulations. Administrators see every owner, optionally filtered.
// @Tags         simulations
// @Produce      json
// @Security     Bearer
// @Param        owner  query     string  false  "Owner id (administrators only)"
// @Success      200    {array}   response.SimulationResponse
// @Failure      401    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Router       /simulations [get]
func (h *SimulationHandler) ListSimulations(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), middleware.Principal(c), c.Query("owner"))
	if err != nil {
		writeError(c, mapSimulationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSimulations(items))
}

// GetSimulation godoc
// @Summary      Get a simulation
// @Tags         simulations
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Simulation id"
// @Success      200  {object}  response.SimulationResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /simulations/{id} [get]
func (h *SimulationHandler) GetSimulation(c *gin.Context) {
	sim, err := h.usecase.Get(c.Request.Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		writeError(c, mapSimulationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSimulation(sim))
}

// UploadQuote godoc
// @Summary      Attach the quote PDF
// @Description  Administrators only. Marks the simulation as quoted and notifies the owner.
// @Tags         simulations
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        id    path      string  true  "Simulation id"
// @Param        file  formData  file    true  "Quote PDF (max 1 MiB)"
// @Success      200   {object}  response.UploadResponse
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Failure      415   {object}  pkg.HTTPError
// @Router       /simulations/{id}/documents/quote.pdf [put]
func (h *SimulationHandler) UploadQuote(c *gin.Context) {
	if !requireUploader(c) {
		return
	}
	doc, ok := readUpload(c)
	if !ok {
		writeError(c, errMissingFile)
		return
	}

	res, err := h.usecase.AttachQuoteDocument(c.Request.Context(), middleware.Principal(c), c.Param("id"), doc)
	if err != nil {
		writeError(c, mapSimulationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUploadResult(res))
}
