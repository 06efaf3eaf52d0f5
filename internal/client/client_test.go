package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reolink-cli/pkg/models"
)

const loginOK = `[{"cmd":"Login","code":0,"value":{"Token":{"leaseTime":3600,"name":"abc123"}}}]`
const loginRejected = `[{"cmd":"Login","code":1,"error":{"rspCode":-7,"detail":"login failed"}}]`
const irLightsAuto = `[{"cmd":"GetIrLights","code":0,"value":{"IrLights":{"state":"Auto"}}}]`

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type fakeResponse struct {
	status int
	body   string
}

// fakeCamera records every request and replays canned responses in order,
// repeating the last one when the script runs out.
type fakeCamera struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	script   []fakeResponse
}

func newFakeCamera(t *testing.T, script ...fakeResponse) *fakeCamera {
	t.Helper()
	require.NotEmpty(t, script)

	f := &fakeCamera{script: script}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		n := len(f.requests)
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   body,
		})
		resp := f.script[len(f.script)-1]
		if n < len(f.script) {
			resp = f.script[n]
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeCamera) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeCamera) config() Config {
	return Config{BaseURL: f.srv.URL, Username: "admin", Password: "secret"}
}

func decodeCommands(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var cmds []map[string]any
	require.NoError(t, json.Unmarshal(body, &cmds))
	return cmds
}

func TestNewLogsInAndStoresToken(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{http.StatusOK, loginOK})

	c := New(cam.config())
	require.Equal(t, "abc123", c.Token())

	reqs := cam.calls()
	require.Len(t, reqs, 1)

	req := reqs[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/cgi-bin/api.cgi", req.Path)
	assert.Equal(t, "Login", req.Query.Get("cmd"))
	assert.False(t, req.Query.Has("token"), "no token before the first login succeeds")

	cmds := decodeCommands(t, req.Body)
	require.Len(t, cmds, 1)
	assert.Equal(t, "Login", cmds[0]["cmd"])
	assert.Equal(t, float64(models.ActionWrite), cmds[0]["action"])

	user := cmds[0]["param"].(map[string]any)["User"].(map[string]any)
	assert.Equal(t, "admin", user["userName"])
	assert.Equal(t, "secret", user["password"])
}

func TestNewSurvivesRejectedLogin(t *testing.T) {
	cam := newFakeCamera(t,
		fakeResponse{http.StatusOK, loginRejected},
		fakeResponse{http.StatusOK, irLightsAuto},
	)

	c := New(cam.config())
	assert.Empty(t, c.Token())

	// Follow-up commands go out without a token and succeed or fail on
	// the camera's own terms.
	state, err := c.GetIrLights()
	require.NoError(t, err)
	assert.Equal(t, "Auto", state)

	reqs := cam.calls()
	require.Len(t, reqs, 2)
	assert.False(t, reqs[1].Query.Has("token"))
}

func TestLoginMalformedPayload(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{http.StatusOK, `[{"cmd":"Login","code":0}]`})

	c := Resume(cam.config(), "")
	err := c.Login()
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Empty(t, c.Token())
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	cam := newFakeCamera(t,
		fakeResponse{http.StatusServiceUnavailable, ""},
		fakeResponse{http.StatusServiceUnavailable, ""},
		fakeResponse{http.StatusOK, irLightsAuto},
	)

	c := Resume(cam.config(), "tok123")

	envelope := []models.Command{{Action: models.ActionRead, Cmd: "GetIrLights"}}
	results, err := c.Do(http.MethodPost, "GetIrLights", envelope)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Code)

	reqs := cam.calls()
	require.Len(t, reqs, 3)
	for _, req := range reqs {
		assert.Equal(t, "GetIrLights", req.Query.Get("cmd"))
		assert.Equal(t, "tok123", req.Query.Get("token"))
		assert.Equal(t, reqs[0].Body, req.Body, "every attempt replays the same body")
	}
}

func TestDoExhaustsTransport(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{http.StatusInternalServerError, ""})

	c := Resume(cam.config(), "tok123")

	results, err := c.Do(http.MethodPost, "GetIrLights", []models.Command{{
		Action: models.ActionRead,
		Cmd:    "GetIrLights",
	}})
	require.ErrorIs(t, err, ErrTransportExhausted)
	assert.Nil(t, results)
	assert.Len(t, cam.calls(), 3)
}

func TestDoTransportErrorExhausts(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{http.StatusOK, "[]"})
	cfg := cam.config()
	cam.srv.Close()

	c := Resume(cfg, "tok123")

	_, err := c.Do(http.MethodPost, "GetIrLights", []models.Command{{
		Action: models.ActionRead,
		Cmd:    "GetIrLights",
	}})
	require.ErrorIs(t, err, ErrTransportExhausted)
}

func TestDoReturnsApplicationErrorsAsIs(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{
		http.StatusOK,
		`[{"cmd":"SetIrLights","code":1,"error":{"rspCode":-9,"detail":"not supported"}}]`,
	})

	c := Resume(cam.config(), "tok123")

	results, err := c.Do(http.MethodPost, "SetIrLights", []models.Command{{
		Action: models.ActionWrite,
		Cmd:    "SetIrLights",
	}})
	require.NoError(t, err, "application-level rejections are not transport failures")
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Code)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, -9, results[0].Error.RspCode)

	assert.Len(t, cam.calls(), 1, "no retry on an application-level rejection")
}

func TestDoMalformedJSONDoesNotRetry(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{http.StatusOK, "<html>not json</html>"})

	c := Resume(cam.config(), "tok123")

	results, err := c.Do(http.MethodPost, "GetIrLights", []models.Command{{
		Action: models.ActionRead,
		Cmd:    "GetIrLights",
	}})
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Nil(t, results)
	assert.Len(t, cam.calls(), 1)
}

func TestLogoutClearsToken(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{
		http.StatusOK,
		`[{"cmd":"Logout","code":0,"value":{"rspCode":200}}]`,
	})

	c := Resume(cam.config(), "tok123")

	require.NoError(t, c.Logout())
	assert.Empty(t, c.Token())

	reqs := cam.calls()
	require.Len(t, reqs, 1)
	assert.Equal(t, "tok123", reqs[0].Query.Get("token"))
}

func TestLogoutClearsTokenOnRejection(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{
		http.StatusOK,
		`[{"cmd":"Logout","code":1,"error":{"rspCode":-1,"detail":"please login first"}}]`,
	})

	c := Resume(cam.config(), "expired")

	err := c.Logout()
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Empty(t, c.Token())
}

func TestReloginOverwritesToken(t *testing.T) {
	cam := newFakeCamera(t,
		fakeResponse{http.StatusOK, loginOK},
		fakeResponse{http.StatusOK, `[{"cmd":"Login","code":0,"value":{"Token":{"leaseTime":3600,"name":"fresh456"}}}]`},
	)

	c := New(cam.config())
	require.Equal(t, "abc123", c.Token())

	// Token expiry surfaces as a CommandError; the host reacts by calling
	// Login again, which replaces the old token.
	require.NoError(t, c.Login())
	assert.Equal(t, "fresh456", c.Token())
}

func TestRejectedLoginClearsPreviousToken(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{http.StatusOK, loginRejected})

	c := Resume(cam.config(), "stale")

	err := c.Login()
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "Login", cmdErr.Cmd)
	assert.Equal(t, -7, cmdErr.RspCode)
	assert.Empty(t, c.Token())
}

func TestTransportExhaustionIsDistinguishable(t *testing.T) {
	cam := newFakeCamera(t, fakeResponse{http.StatusBadGateway, ""})

	c := Resume(cam.config(), "tok123")

	_, err := c.GetIrLights()
	require.ErrorIs(t, err, ErrTransportExhausted)
	assert.False(t, errors.Is(err, ErrMalformedResponse))
}
