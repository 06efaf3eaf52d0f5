package client

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"reolink-cli/pkg/models"
)

// All commands go through the camera's single CGI endpoint.
const apiPath = "/cgi-bin/api.cgi"

// transportAttempts is how many back-to-back tries each exchange gets
// before the transport is considered exhausted.
const transportAttempts = 3

type Client struct {
	HTTP   *resty.Client
	Config Config

	log zerolog.Logger

	mu    sync.RWMutex
	token string
}

type Config struct {
	BaseURL  string
	Username string
	Password string

	// Logger receives leveled diagnostics. The zero value discards
	// everything, so library consumers opt in explicitly.
	Logger zerolog.Logger
}

// New builds a client and immediately attempts a login. Construction never
// fails: if the login is rejected the failure is logged, the token stays
// empty and authenticated commands will come back with the camera's own
// authorization error.
func New(cfg Config) *Client {
	c := &Client{
		HTTP:   newHTTP(cfg),
		Config: cfg,
		log:    cfg.Logger,
	}
	if err := c.Login(); err != nil {
		c.log.Warn().Err(err).Msg("initial login failed, continuing without token")
	}
	return c
}

// Resume builds a client around a previously persisted token, skipping the
// login round-trip. Used by hosts that save the session between runs.
func Resume(cfg Config, token string) *Client {
	c := &Client{
		HTTP:   newHTTP(cfg),
		Config: cfg,
		log:    cfg.Logger,
	}
	c.token = token
	return c
}

func newHTTP(cfg Config) *resty.Client {
	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")

	// Reolink cameras ship self-signed certs
	r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})

	return r
}

// Token returns the current session token, empty until a login succeeds.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Login authenticates with the camera and stores the session token for
// subsequent commands. Reauthentication overwrites the previous token.
func (c *Client) Login() error {
	c.log.Debug().Str("user", c.Config.Username).Msg("creating camera session")

	envelope := []models.Command{{
		Action: models.ActionWrite,
		Cmd:    "Login",
		Param: models.LoginParam{
			User: models.UserCredentials{
				UserName: c.Config.Username,
				Password: c.Config.Password,
			},
		},
	}}

	// redactBody keeps the credentials out of the logs
	results, err := c.do(http.MethodPost, "Login", envelope, true)
	if err != nil {
		c.setToken("")
		return err
	}

	value, err := decodeFirst[models.TokenValue]("Login", results)
	if err != nil {
		c.setToken("")
		return err
	}
	if value.Token.Name == "" {
		c.setToken("")
		return fmt.Errorf("%w: Login: empty token name", ErrMalformedResponse)
	}

	c.setToken(value.Token.Name)
	c.log.Debug().Int("leaseTime", value.Token.LeaseTime).Msg("camera session established")
	return nil
}

// Logout invalidates the camera session. The local token is cleared even
// when the camera rejects the command, so the next Login starts clean.
func (c *Client) Logout() error {
	results, err := c.Do(http.MethodPost, "Logout", []models.Command{{
		Action: models.ActionWrite,
		Cmd:    "Logout",
	}})
	c.setToken("")
	if err != nil {
		return err
	}
	return checkFirst("Logout", results)
}

// Do sends a command envelope to the camera and returns the parsed result
// envelope. Transport success is HTTP 200 alone: a 200 response carrying
// application-level rejections is returned as-is for the caller to inspect.
// Non-200 statuses and network errors are retried back-to-back up to
// transportAttempts times; exhaustion wraps ErrTransportExhausted.
func (c *Client) Do(method, cmd string, envelope []models.Command) ([]models.CommandResult, error) {
	return c.do(method, cmd, envelope, false)
}

func (c *Client) do(method, cmd string, envelope []models.Command, redactBody bool) ([]models.CommandResult, error) {
	token := c.Token()

	var results []models.CommandResult
	attempt := 0

	err := retry.Do(func() error {
		attempt++

		ev := c.log.Debug().Str("cmd", cmd).Int("attempt", attempt).Int("maxAttempts", transportAttempts)
		if !redactBody {
			ev = ev.Interface("body", envelope)
		}
		ev.Msg("sending request")

		req := c.HTTP.R().SetQueryParam("cmd", cmd)
		if len(envelope) > 0 {
			req.SetBody(envelope)
		}
		if token != "" {
			req.SetQueryParam("token", token)
		}

		resp, err := req.Execute(method, apiPath)
		if err != nil {
			return err
		}
		if resp.StatusCode() != http.StatusOK {
			return fmt.Errorf("unexpected HTTP status %s", resp.Status())
		}

		// Parse failures on a 200 are not transport flakiness; retrying
		// would just replay the same broken payload.
		if err := json.Unmarshal(resp.Body(), &results); err != nil {
			return retry.Unrecoverable(fmt.Errorf("%w: %s: %v", ErrMalformedResponse, cmd, err))
		}
		return nil
	},
		retry.Attempts(transportAttempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrTransportExhausted, cmd, err)
	}

	return results, nil
}
