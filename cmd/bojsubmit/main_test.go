package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/programme-lv/bojclient/api"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/config"
	"github.com/programme-lv/bojclient/internal/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func page(body string) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"></head><body>` + body + `</body></html>`
}

// judge is a minimal fake of the judge that requires the login cookies.
func judge(t *testing.T, loggedIn bool) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	var rows []string
	polls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("bojautologin")
		if !loggedIn || err != nil || c.Value != "tok" {
			_, _ = w.Write([]byte(page(`<a href="/login">로그인</a>`)))
			return
		}
		_, _ = w.Write([]byte(page(`<a class="username">alice</a>`)))
	})
	mux.HandleFunc("GET /submit/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page(`<input name="csrf_key" value="k">`)))
	})
	mux.HandleFunc("POST /submit/{id}", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if r.PostFormValue("csrf_key") == "k" && r.PostFormValue("source") != "" {
			rows = append(rows, `<tr id="solution-9001"><td>9001</td><td>alice</td><td>`+r.PathValue("id")+`</td><td>기다리는 중</td></tr>`)
		}
	})
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = w.Write([]byte(page(`<table>` + strings.Join(rows, "") + `</table>`)))
	})
	mux.HandleFunc("POST /status/ajax", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		polls++
		if polls < 2 {
			_, _ = w.Write([]byte(`{"solution_id":"9001","result_name":"채점 중 (10%)"}`))
			return
		}
		_, _ = w.Write([]byte(`{"solution_id":"9001","time":"0","memory":"2020","result_name":"맞았습니다!!"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// workspace creates a project directory with .bc.yml and isolates XDG lookups.
func workspace(t *testing.T, yml string) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
	for _, k := range []string{config.EnvAutoLogin, config.EnvOnlineJudge, config.EnvLanguage, config.EnvTargetFile} {
		t.Setenv(k, "")
	}

	dir := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bc.yml"), []byte(yml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cpp"), []byte("int main() {}\n"), 0o644))
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newCommand(&stdout, &stderr).Run(context.Background(), append([]string{"bojsubmit"}, args...))
	return stdout.String(), stderr.String(), err
}

func loginYml(baseURL string) string {
	return fmt.Sprintf(`boj_auto_login: tok
online_judge: sess
language: Cpp17
target_file: main.cpp
base_url: %s/
poll_interval: 1ms
`, baseURL)
}

func TestLanguages(t *testing.T) {
	dir := workspace(t, "")

	out, _, err := run(t, "--dir", dir, "languages")
	require.NoError(t, err)

	assert.Contains(t, out, "Cpp17")
	assert.Contains(t, out, "C++17 (Clang)")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(boj.Languages())+1)
}

func TestWhoami(t *testing.T) {
	srv := judge(t, true)
	dir := workspace(t, loginYml(srv.URL))

	out, _, err := run(t, "--dir", dir, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)
}

func TestWhoamiRejectedCookies(t *testing.T) {
	srv := judge(t, false)
	dir := workspace(t, loginYml(srv.URL))

	_, _, err := run(t, "--dir", dir, "whoami")
	require.ErrorIs(t, err, boj.ErrNotAuthenticated)
	assert.Contains(t, describe(err), "check the boj_auto_login and online_judge cookies")
}

func TestMissingLogin(t *testing.T) {
	dir := workspace(t, "language: Cpp17\n")

	_, _, err := run(t, "--dir", dir, "whoami")
	require.ErrorIs(t, err, config.ErrMissingLogin)
}

func TestSubmitWaitJSON(t *testing.T) {
	srv := judge(t, true)
	dir := workspace(t, loginYml(srv.URL))

	out, _, err := run(t, "--dir", dir, "submit", "--wait", "--json", "1000")
	require.NoError(t, err)

	var report api.RunReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, api.Settled, report.Status)
	assert.Equal(t, "alice", report.Username)
	assert.Equal(t, uint32(1000), report.ProblemID)
	require.NotNil(t, report.SolutionID)
	assert.Equal(t, uint32(9001), *report.SolutionID)
	assert.Equal(t, "Accepted", report.Verdict)
	assert.NotEmpty(t, report.RunUuid)
}

func TestSubmitProgressLines(t *testing.T) {
	srv := judge(t, true)
	dir := workspace(t, loginYml(srv.URL))

	out, _, err := run(t, "--dir", dir, "submit", "--language", "C++17", "1000")
	require.NoError(t, err)

	assert.Contains(t, out, "-- Logged in as alice --")
	assert.Contains(t, out, "-> Solution 9001")
	assert.Contains(t, out, "still being graded")
}

func TestSubmitUnknownLanguage(t *testing.T) {
	srv := judge(t, true)
	dir := workspace(t, loginYml(srv.URL))

	_, _, err := run(t, "--dir", dir, "submit", "--language", "Brainfuck", "1000")
	require.Error(t, err)
	assert.ErrorIs(t, err, boj.ErrUnknownLanguage)
}

func TestSubmitFlagsDoNotChangeSharedConfig(t *testing.T) {
	srv := judge(t, true)
	dir := workspace(t, loginYml(srv.URL))

	var stdout, stderr bytes.Buffer
	a := &app{stdout: &stdout, stderr: &stderr}
	err := a.command().Run(context.Background(), []string{
		"bojsubmit", "--dir", dir, "submit", "--language", "Python3", "--open", "close", "--max-attempts", "3", "1000",
	})
	require.NoError(t, err)

	require.NotNil(t, a.cfg)
	assert.Equal(t, "Cpp17", a.cfg.Language)
	assert.Equal(t, boj.Open.String(), a.cfg.CodeOpen)
	assert.Equal(t, poller.DefaultMaxAttempts, a.cfg.PollMaxAttempts)
}

func TestStatus(t *testing.T) {
	srv := judge(t, true)
	dir := workspace(t, loginYml(srv.URL))

	_, _, err := run(t, "--dir", dir, "submit", "1000")
	require.NoError(t, err)

	out, _, err := run(t, "--dir", dir, "status", "--me", "--problem", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "9001")
	assert.Contains(t, out, "기다리는 중")
}

func TestWatch(t *testing.T) {
	srv := judge(t, true)
	dir := workspace(t, loginYml(srv.URL))

	out, _, err := run(t, "--dir", dir, "watch", "9001")
	require.NoError(t, err)
	assert.Contains(t, out, "맞았습니다!! (Accepted)")

	_, _, err = run(t, "--dir", dir, "watch", "abc")
	assert.Error(t, err)
}

func TestConfigMasksCookies(t *testing.T) {
	dir := workspace(t, "boj_auto_login: abcdefgh\nonline_judge: secretsecret\n")

	out, _, err := run(t, "--dir", dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, ".bc.yml"))
	assert.Contains(t, out, "boj_auto_login: abcd****")
	assert.NotContains(t, out, "secretsecret")
}
