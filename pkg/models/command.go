package models

import "encoding/json"

// Action tells the camera whether a command mutates state or only reads it.
type Action int

const (
	ActionWrite Action = 0
	ActionRead  Action = 1
)

// Command is one element of the JSON array the camera expects as request body.
type Command struct {
	Action Action `json:"action"`
	Cmd    string `json:"cmd"`
	Param  any    `json:"param,omitempty"`
}

// CommandResult is one element of the JSON array the camera answers with.
// Value stays raw here; the per-command wrappers decode it into their own
// value struct once the code has been checked.
type CommandResult struct {
	Cmd   string          `json:"cmd"`
	Code  int             `json:"code"`
	Value json.RawMessage `json:"value,omitempty"`
	Error *CommandFault   `json:"error,omitempty"`
}

// CommandFault is the error detail the camera attaches to rejected commands.
type CommandFault struct {
	RspCode int    `json:"rspCode"`
	Detail  string `json:"detail"`
}
