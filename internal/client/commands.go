package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"reolink-cli/pkg/models"
)

// fetch sends a single read command and decodes its success payload into T.
// Every GetXxx wrapper is this function with a different value type.
func fetch[T any](c *Client, name string, param any) (T, error) {
	var value T
	results, err := c.Do(http.MethodPost, name, []models.Command{{
		Action: models.ActionRead,
		Cmd:    name,
		Param:  param,
	}})
	if err != nil {
		return value, err
	}
	return decodeFirst[T](name, results)
}

// apply sends a single write command; success is the result code alone.
func apply(c *Client, name string, param any) error {
	results, err := c.Do(http.MethodPost, name, []models.Command{{
		Action: models.ActionWrite,
		Cmd:    name,
		Param:  param,
	}})
	if err != nil {
		return err
	}
	return checkFirst(name, results)
}

// checkFirst validates the first result of an envelope, turning nonzero
// codes into a CommandError carrying the camera's own error detail.
func checkFirst(name string, results []models.CommandResult) error {
	if len(results) == 0 {
		return fmt.Errorf("%w: %s: empty result envelope", ErrMalformedResponse, name)
	}
	r := results[0]
	if r.Code != 0 {
		cmdErr := &CommandError{Cmd: name, Code: r.Code}
		if r.Error != nil {
			cmdErr.RspCode = r.Error.RspCode
			cmdErr.Detail = r.Error.Detail
		}
		return cmdErr
	}
	return nil
}

// decodeFirst checks the first result for success and decodes its value.
// A success result missing the expected value is a malformed response, not
// a crash.
func decodeFirst[T any](name string, results []models.CommandResult) (T, error) {
	var value T
	if err := checkFirst(name, results); err != nil {
		return value, err
	}
	if len(results[0].Value) == 0 {
		return value, fmt.Errorf("%w: %s: success result without value", ErrMalformedResponse, name)
	}
	if err := json.Unmarshal(results[0].Value, &value); err != nil {
		return value, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, name, err)
	}
	return value, nil
}
