package api

import (
	"net/http"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	suggestions usecase.SuggestionUseCase
}

func NewSuggestionHandler(suggestions usecase.SuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// @Summary Suggest providers
// @Description Rank candidate providers for a requested appointment window
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SuggestionRequest true "Suggestion request"
// @Success 200 {object} resdto.SuggestionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /suggestions [post]
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req reqdto.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ranked, err := h.suggestions.SuggestProviders(c.Request.Context(), req.ToQuery())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid window", nil)
		case errs.Is(err, errs.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration", nil)
		case errs.Is(err, errs.ErrEmptyCandidatePool):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Empty candidate pool", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRanking(ranked))
}
