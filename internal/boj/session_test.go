package boj_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieMap(cookies []*http.Cookie) map[string]string {
	m := make(map[string]string, len(cookies))
	for _, c := range cookies {
		m[c.Name] = c.Value
	}
	return m
}

func TestApplyIsIdempotent(t *testing.T) {
	session, err := boj.NewSession()
	require.NoError(t, err)

	login := boj.LoginCookie{AutoLogin: "aaaaa", OnlineJudge: "saafa"}
	session.Apply(login)
	once := cookieMap(session.Cookies())

	session.Apply(login)
	twice := session.Cookies()

	assert.Len(t, twice, 2)
	assert.Equal(t, once, cookieMap(twice))
	assert.Equal(t, map[string]string{"bojautologin": "aaaaa", "OnlineJudge": "saafa"}, once)
}

func TestApplyOverwrites(t *testing.T) {
	session, err := boj.NewSession()
	require.NoError(t, err)

	session.Apply(boj.LoginCookie{AutoLogin: "old", OnlineJudge: "old"})
	session.Apply(boj.LoginCookie{AutoLogin: "new", OnlineJudge: "newer"})

	assert.Equal(t, map[string]string{"bojautologin": "new", "OnlineJudge": "newer"}, cookieMap(session.Cookies()))
}

func TestApplyPanicsOnInvalidCookie(t *testing.T) {
	session, err := boj.NewSession()
	require.NoError(t, err)

	assert.Panics(t, func() {
		session.Apply(boj.LoginCookie{AutoLogin: "has;semicolon", OnlineJudge: "x"})
	})
}

func TestCookiesAreSentWithEveryRequest(t *testing.T) {
	var got []map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		got = append(got, cookieMap(r.Cookies()))
		_, _ = w.Write([]byte(htmlPage(`<a class="username">alice</a>`)))
	})
	client, _ := newJudge(t, mux)
	client.Session().Apply(boj.LoginCookie{AutoLogin: "auto", OnlineJudge: "oj"})

	for i := 0; i < 2; i++ {
		_, err := client.CurrentUsername(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "auto", c["bojautologin"])
		assert.Equal(t, "oj", c["OnlineJudge"])
	}
}

func TestNewSessionRejectsRelativeBaseURL(t *testing.T) {
	_, err := boj.NewSession(boj.WithBaseURL("/status"))
	require.Error(t, err)
}

func TestFetchReportsHTTPError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	})
	client, _ := newJudge(t, mux)

	_, err := client.Session().Fetch(context.Background(), http.MethodGet, "/", nil)

	var httpErr *boj.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestFetchReportsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	session, err := boj.NewSession(boj.WithBaseURL(url))
	require.NoError(t, err)

	_, err = session.Fetch(context.Background(), http.MethodGet, "/", nil)

	var transportErr *boj.TransportError
	require.ErrorAs(t, err, &transportErr)
	var httpErr *boj.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestFetchSendsQueryAndForm(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		_, _ = w.Write([]byte(htmlPage(`<p id="m">` + r.Method + `</p><p id="v">` + r.Form.Get("k") + `</p>`)))
	})
	client, _ := newJudge(t, mux)
	ctx := context.Background()

	doc, err := client.Session().Fetch(ctx, http.MethodGet, "/echo", map[string][]string{"k": {"query"}})
	require.NoError(t, err)
	assert.Equal(t, "GET", doc.Find("#m").Text())
	assert.Equal(t, "query", doc.Find("#v").Text())

	doc, err = client.Session().Fetch(ctx, http.MethodPost, "/echo", map[string][]string{"k": {"form"}})
	require.NoError(t, err)
	assert.Equal(t, "POST", doc.Find("#m").Text())
	assert.Equal(t, "form", doc.Find("#v").Text())
}

func TestFetchKeepsBasePathPrefix(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boj/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(htmlPage(`<p id="q">` + r.URL.Query().Get("problem_id") + `</p>`)))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	session, err := boj.NewSession(boj.WithBaseURL(srv.URL+"/boj/"), boj.WithTransport(srv.Client().Transport))
	require.NoError(t, err)

	doc, err := session.Fetch(context.Background(), http.MethodGet, "/status", map[string][]string{"problem_id": {"1000"}})
	require.NoError(t, err)
	assert.Equal(t, "1000", doc.Find("#q").Text())
}
