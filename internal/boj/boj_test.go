package boj_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/stretchr/testify/require"
)

// newJudge starts a fake judge and returns a client whose session points at it.
func newJudge(t *testing.T, mux *http.ServeMux) (*boj.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	session, err := boj.NewSession(boj.WithBaseURL(srv.URL), boj.WithTransport(srv.Client().Transport))
	require.NoError(t, err)
	return boj.NewClient(session), srv
}

func htmlPage(body string) string {
	return "<!DOCTYPE html><html><head><meta charset=\"utf-8\"></head><body>" + body + "</body></html>"
}
