package client

import "reolink-cli/pkg/models"

// GetIrLights reports the infrared light mode, "Auto" or "Off".
func (c *Client) GetIrLights() (string, error) {
	c.log.Debug().Msg("getting IR lights state")

	value, err := fetch[models.IrLightsValue](c, "GetIrLights", nil)
	if err != nil {
		return "", err
	}

	c.log.Info().Str("state", value.IrLights.State).Msg("got IR lights state")
	return value.IrLights.State, nil
}

// SetIrLights switches the infrared light mode.
func (c *Client) SetIrLights(state string) error {
	c.log.Debug().Str("state", state).Msg("setting IR lights state")

	err := apply(c, "SetIrLights", models.IrLightsParam{
		IrLights: models.IrLightsState{State: state},
	})
	if err != nil {
		return err
	}

	c.log.Info().Str("state", state).Msg("set IR lights state")
	return nil
}
