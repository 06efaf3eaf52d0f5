package models

// IR light states accepted by the camera.
const (
	IrLightsAuto = "Auto"
	IrLightsOff  = "Off"
)

// IrLightsParam is the parameter payload of SetIrLights.
type IrLightsParam struct {
	IrLights IrLightsState `json:"IrLights"`
}

// IrLightsValue wraps the success payload of GetIrLights.
type IrLightsValue struct {
	IrLights IrLightsState `json:"IrLights"`
}

type IrLightsState struct {
	State string `json:"state"`
}
