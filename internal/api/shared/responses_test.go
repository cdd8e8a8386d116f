package shared_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactsapp/contacts-api/internal/api/shared"
)

func TestRespondWithData(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithData(rec, req, http.StatusOK, map[string]string{"username": "john"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"username":"john"}}`, rec.Body.String())
}

func TestRespondWithPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithPage(rec, req, []string{"a", "b"}, shared.Paging{
		Page:      2,
		TotalPage: 3,
		TotalItem: 25,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["a","b"],"paging":{"page":2,"total_page":3,"total_item":25}}`, rec.Body.String())
}

func TestRespondWithErrorString(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithError(rec, req, http.StatusNotFound, "Contact is not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":"Contact is not found"}`, rec.Body.String())
}

func TestRespondWithErrorList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithError(rec, req, http.StatusBadRequest, []string{
		"username is required",
		"password is required",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"username is required", "password is required"}, body["errors"])
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := shared.SetTraceID(context.Background())

	traceID := shared.GetTraceID(ctx)
	assert.Len(t, traceID, shared.TraceIDLength*2)

	other := shared.GetTraceID(shared.SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestGetTraceIDAbsent(t *testing.T) {
	assert.Equal(t, "", shared.GetTraceID(context.Background()))
}
