package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"archbudget/internal/engine"
	"archbudget/internal/responses"
)

// PricingHandler exposes the calculation engine over HTTP. The engine is
// pure, so the handler is a stateless passthrough: snapshot in, results out.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Compute handles POST /api/v1/pricing/compute
func (h *PricingHandler) Compute(c *gin.Context) {
	var snapshot engine.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid calculation data")
		return
	}

	results := engine.ComputeAll(snapshot)

	responses.Success(c, http.StatusOK, results, "Calculation completed")
}

// Defaults handles GET /api/v1/pricing/defaults: the default factor catalog
// and area intervals the UI starts a new calculation from.
func (h *PricingHandler) Defaults(c *gin.Context) {
	res := gin.H{
		"factors":       engine.DefaultFactors(),
		"areaIntervals": engine.DefaultAreaIntervals(),
	}

	responses.Success(c, http.StatusOK, res, "Defaults retrieved successfully")
}
