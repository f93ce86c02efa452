package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/clock"
	"auction-engine/internal/events"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router over the in-memory repository with a
// fixed clock, so deadline behaviour is controllable from the tests.
func SetupTestRouter() (*gin.Engine, *clock.FixedClock) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	fixed := clock.NewFixed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	service := auction.NewAuctionService(repo, events.NewMemorySink(), auction.Options{Clock: fixed})
	router := server.SetupRouter(service)
	return router, fixed
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if data, ok := resp["data"].(map[string]any); ok {
			resp = data
		}
	}

	return resp, w
}

// CreateActiveLot drives a lot through create/submit/activate over the API and
// returns its id. An empty endTime leaves the window to the service defaults.
func CreateActiveLot(t *testing.T, router *gin.Engine, sellerID string, startingPrice int64, endTime string) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/lots", helpers.CreateLotRequest{
		SellerID:      sellerID,
		Title:         "test lot",
		StartingPrice: startingPrice,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	lotID := resp["lot_id"].(string)
	require.NotEmpty(t, lotID)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/lots/"+lotID+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/lots/"+lotID+"/activate", helpers.ActivateLotRequest{EndTime: endTime})
	require.Equal(t, http.StatusOK, w.Code)

	return lotID
}
