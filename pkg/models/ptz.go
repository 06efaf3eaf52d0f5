package models

// PtzCtrl operations. The camera knows more (Left, Right, ZoomInc, ...);
// only preset recall is wired up so far.
const PtzOpToPos = "ToPos"

// DefaultPtzSpeed is the movement speed the vendor examples use.
const DefaultPtzSpeed = 32

// PtzCtrlParam is the parameter payload of PtzCtrl.
type PtzCtrlParam struct {
	Channel int    `json:"channel"`
	ID      int    `json:"id"`
	Op      string `json:"op"`
	Speed   int    `json:"speed"`
}

// PtzPresetValue wraps the success payload of GetPtzPreset.
type PtzPresetValue struct {
	PtzPreset []PtzPreset `json:"PtzPreset"`
}

// PtzPreset is one stored camera position.
type PtzPreset struct {
	Channel int    `json:"channel"`
	Enable  int    `json:"enable"`
	ID      int    `json:"id"`
	Name    string `json:"name"`
}
