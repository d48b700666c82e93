package handlers

import (
	"io"

	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/adapter/http/middleware"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const snapshotEvent = "snapshot"

// WatchHandler streams list snapshots as server-sent events.
type WatchHandler struct {
	observer usecase.IListObserver
}

func NewWatchHandler(observer usecase.IListObserver) *WatchHandler {
	return &WatchHandler{observer: observer}
}

// WatchSimulations godoc
// @Summary      Watch the simulation list
// @Description  Server-sent "snapshot" events. A degraded stream sends one snapshot with a notice and ends.
// @Tags         simulations
// @Produce      text/event-stream
// @Security     Bearer
// @Success      200  {object}  response.ListSnapshotResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /simulations/watch [get]
func (h *WatchHandler) WatchSimulations(c *gin.Context) {
	h.watch(c, entities.EntityKindSimulation)
}

// WatchPolicies godoc
// @Summary      Watch the policy list
// @Tags         policies
// @Produce      text/event-stream
// @Security     Bearer
// @Success      200  {object}  response.ListSnapshotResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /policies/watch [get]
func (h *WatchHandler) WatchPolicies(c *gin.Context) {
	h.watch(c, entities.EntityKindPolicy)
}

func (h *WatchHandler) watch(c *gin.Context, kind entities.EntityKind) {
	snapshots, err := h.observer.Watch(c.Request.Context(), middleware.Principal(c), kind)
	if err != nil {
		writeError(c, mapPolicyError(err))
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		snap, ok := <-snapshots
		if !ok {
			return false
		}
		c.SSEvent(snapshotEvent, response.FromListSnapshot(snap))
		return true
	})
}
