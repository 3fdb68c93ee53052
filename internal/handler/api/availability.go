package api

import (
	"net/http"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availability usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Provider availability
// @Description Compute bookable slots for a provider over a UTC range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Param treatment_id query string false "Treatment ID"
// @Param location_id query string false "Location ID"
// @Param chair_id query string false "Chair ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /providers/{id}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	var params reqdto.AvailabilityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	treatmentID, err := optionalUUIDQuery(c, "treatment_id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid treatment id", nil)
		return
	}
	locationID, err := optionalUUIDQuery(c, "location_id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location id", nil)
		return
	}
	chairID, err := optionalUUIDQuery(c, "chair_id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid chair id", nil)
		return
	}

	slots, err := h.availability.ComputeAvailability(c.Request.Context(), params.ToQuery(providerID, treatmentID, locationID, chairID))
	if err != nil {
		abortAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlots(providerID, slots))
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func abortAvailabilityError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
	case errs.Is(err, errs.ErrInvalidDuration):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration", nil)
	case errs.Is(err, errs.ErrUnknownTimezone):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown schedule timezone", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
