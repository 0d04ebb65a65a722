package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"archbudget/internal/engine"
)

func newPricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPricingHandler()
	r.POST("/api/v1/pricing/compute", h.Compute)
	r.GET("/api/v1/pricing/defaults", h.Defaults)
	return r
}

func TestPricingHandler_Compute(t *testing.T) {
	router := newPricingRouter()

	snapshot := engine.Snapshot{
		Area: 120,
		Selections: engine.Selections{
			engine.FactorStage:        3,
			engine.FactorDetail:       3,
			engine.FactorTechnical:    2,
			engine.FactorBureaucratic: 1,
			engine.FactorMonitoring:   2,
		},
		Rate:            engine.RateInputs{Manual: true, ManualRate: 50},
		DiscountPercent: 10,
		EstimatedHours:  100,
	}
	body, err := json.Marshal(snapshot)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string         `json:"status"`
		Data   engine.Results `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)
	require.Equal(t, engine.Computed(2.17), resp.Data.GlobalComplexity)
	require.Equal(t, engine.Computed(10850.0), resp.Data.ProjectPrice)
	require.Equal(t, engine.Computed(9765.0), resp.Data.ProjectPriceWithDiscount)
	require.Equal(t, 2, resp.Data.AreaLevel)
}

func TestPricingHandler_ComputeEmptySnapshot(t *testing.T) {
	router := newPricingRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/compute", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// An empty snapshot is not an error: results come back incomplete.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			GlobalComplexity *float64 `json:"globalComplexity"`
			ProjectPrice     *float64 `json:"projectPrice"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Data.GlobalComplexity)
	require.Nil(t, resp.Data.ProjectPrice)
}

func TestPricingHandler_ComputeMalformedBody(t *testing.T) {
	router := newPricingRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/compute", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingHandler_Defaults(t *testing.T) {
	router := newPricingRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing/defaults", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Factors       []engine.Factor       `json:"factors"`
			AreaIntervals []engine.AreaInterval `json:"areaIntervals"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Factors, 6)
	require.Len(t, resp.Data.AreaIntervals, 5)

	for _, f := range resp.Data.Factors {
		require.NotEmpty(t, f.ID)
		require.Len(t, f.Options, 5)
	}
}
