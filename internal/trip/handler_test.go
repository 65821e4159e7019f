package trip

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SearchResponse), args.Error(1)
}

func newTestRouter(s Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewTripHandler(s).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSearchHandler_OK(t *testing.T) {
	svc := new(MockSearcher)
	svc.On("Search", mock.Anything, SearchRequest{
		Destinations:      []string{"Paris", "Tokyo"},
		AvailabilityDates: []string{"2025-12-01", "2025-12-02"},
		MinNights:         intPtr(1),
	}).Return(&SearchResponse{
		Results: []DestinationResult{
			{Destination: "Paris", Best: &PricedTrip{Depart: "2025-12-01", Return: "2025-12-02", Price: 245}},
			{Destination: "Tokyo", Best: nil},
		},
	}, nil)

	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/search",
		`{"destinations":["Paris","Tokyo"],"availabilityDates":["2025-12-01","2025-12-02"],"minNights":1}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []struct {
			Destination string           `json:"destination"`
			Best        *json.RawMessage `json:"best"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, "Paris", body.Results[0].Destination)
	assert.JSONEq(t, `{"depart":"2025-12-01","return":"2025-12-02","price":245}`, string(*body.Results[0].Best))
	assert.Nil(t, body.Results[1].Best)
	assert.Contains(t, rec.Body.String(), `"best":null`)
	svc.AssertExpectations(t)
}

func TestSearchHandler_MalformedJSON(t *testing.T) {
	svc := new(MockSearcher)

	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/search", `{"destinations":"Paris"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
	svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchHandler_ValidationError(t *testing.T) {
	svc := new(MockSearcher)
	svc.On("Search", mock.Anything, mock.Anything).
		Return(nil, newValidationError("destinations (array) required"))

	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/search", `{"availabilityDates":["2025-12-01"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"destinations (array) required","code":"VALIDATION_ERROR"}`, rec.Body.String())
}

func TestSearchHandler_InvalidDate(t *testing.T) {
	svc := new(MockSearcher)
	svc.On("Search", mock.Anything, mock.Anything).Return(nil, &InvalidDateError{Value: "soon"})

	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/search",
		`{"destinations":["Paris"],"availabilityDates":["soon"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_DATE"`)
}

func TestSearchHandler_InternalError(t *testing.T) {
	svc := new(MockSearcher)
	svc.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("search aborted: context canceled"))

	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/search",
		`{"destinations":["Paris"],"availabilityDates":["2025-12-01"]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"search aborted: context canceled","code":"INTERNAL_FAILURE"}`, rec.Body.String())
}

func TestHealthHandler(t *testing.T) {
	rec := doJSON(t, newTestRouter(new(MockSearcher)), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
