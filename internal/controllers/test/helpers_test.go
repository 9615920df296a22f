package controllers_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bionicotaku/lingo-services-tube/internal/controllers"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestServer(registrars ...controllers.RouteRegistrar) *khttp.Server {
	srv := khttp.NewServer()
	router := srv.Route("/")
	for _, r := range registrars {
		r.RegisterRoutes(router)
	}
	return srv
}

func userInfoHeader(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"sub": userID.String()})
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(payload)
}

func serve(srv *khttp.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func decodeJSON[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}
