package client

import "reolink-cli/pkg/models"

// GotoPtzPreset drives the camera to a stored preset position.
func (c *Client) GotoPtzPreset(presetID int) error {
	c.log.Debug().Int("preset", presetID).Msg("moving to PTZ preset")

	err := apply(c, "PtzCtrl", models.PtzCtrlParam{
		Channel: 0,
		ID:      presetID,
		Op:      models.PtzOpToPos,
		Speed:   models.DefaultPtzSpeed,
	})
	if err != nil {
		return err
	}

	c.log.Info().Int("preset", presetID).Msg("moved to PTZ preset")
	return nil
}

// GetPtzPresets lists the positions stored on the camera.
func (c *Client) GetPtzPresets() ([]models.PtzPreset, error) {
	value, err := fetch[models.PtzPresetValue](c, "GetPtzPreset", nil)
	if err != nil {
		return nil, err
	}
	return value.PtzPreset, nil
}
