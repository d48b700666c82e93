package handlers

import (
	"context"
	"net/http"

	request "seguros_xpto/internal/adapter/http/dto/request"
	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/adapter/http/middleware"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PolicyHandler serves policies ("apólices") and their status workflow.
type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

// StartPolicy godoc
// @Summary      Start a policy from a quoted simulation
// @Description  Returns the existing policy when one was already started for the simulation.
// @Tags         policies
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Simulation id"
// @Success      201  {object}  response.PolicyResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /simulations/{id}/policy [post]
func (h *PolicyHandler) StartPolicy(c *gin.Context) {
	pol, err := h.usecase.StartFromSimulation(c.Request.Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPolicy(pol))
}

// GetSimulationPolicy godoc
// @Summary      Get the policy started from a simulation
// @Tags         policies
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Simulation id"
// @Success      200  {object}  response.PolicyResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /simulations/{id}/policy [get]
func (h *PolicyHandler) GetSimulationPolicy(c *gin.Context) {
	pol, err := h.usecase.GetBySimulation(c.Request.Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(pol))
}

// ListPolicies godoc
// @Summary      List policies
// @Tags         policies
// @Produce      json
// @Security     Bearer
// @Param        owner  query     string  false  "Owner id (administrators only)"
// @Success      200    {array}   response.PolicyResponse
// @Router       /policies [get]
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), middleware.Principal(c), c.Query("owner"))
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicies(items))
}

// GetPolicy godoc
// @Summary      Get a policy
// @Tags         policies
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Policy id"
// @Success      200  {object}  response.PolicyResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /policies/{id} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	pol, err := h.usecase.Get(c.Request.Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(pol))
}

// SaveDraft godoc
// @Summary      Save policy fields
// @Description  Owners may save while the policy is em_criacao; administrators at any status.
// @Tags         policies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string                       true  "Policy id"
// @Param        payload  body      request.PolicyFieldsRequest  true  "Fields"
// @Success      200      {object}  response.PolicyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /policies/{id} [patch]
func (h *PolicyHandler) SaveDraft(c *gin.Context) {
	h.saveFields(c, h.usecase.SaveDraft)
}

// SubmitPolicy godoc
// @Summary      Submit a policy for validation
// @Tags         policies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string                       true  "Policy id"
// @Param        payload  body      request.PolicyFieldsRequest  true  "Fields"
// @Success      200      {object}  response.PolicyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /policies/{id}/submit [post]
func (h *PolicyHandler) SubmitPolicy(c *gin.Context) {
	h.saveFields(c, h.usecase.Submit)
}

func (h *PolicyHandler) saveFields(
	c *gin.Context,
	save func(ctx context.Context, p entities.Principal, id string, f entities.PolicyFields) (entities.Policy, error),
) {
	var payload request.PolicyFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	pol, err := save(c.Request.Context(), middleware.Principal(c), c.Param("id"), payload.ToFields())
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(pol))
}

// SetPolicyStatus godoc
// @Summary      Change a policy status
// @Description  Administrators only: revert to em_criacao or advance to em_validacao.
// @Tags         policies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string                       true  "Policy id"
// @Param        payload  body      request.PolicyStatusRequest  true  "Target status"
// @Success      200      {object}  response.PolicyResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /policies/{id}/status [patch]
func (h *PolicyHandler) SetPolicyStatus(c *gin.Context) {
	var payload request.PolicyStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	pol, err := h.usecase.SetStatus(c.Request.Context(), middleware.Principal(c), c.Param("id"), entities.PolicyStatus(payload.Status))
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(pol))
}
