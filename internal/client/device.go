package client

import "reolink-cli/pkg/models"

// GetDevInfo fetches the camera's model, firmware and channel layout.
func (c *Client) GetDevInfo() (*models.DevInfo, error) {
	value, err := fetch[models.DevInfoValue](c, "GetDevInfo", nil)
	if err != nil {
		return nil, err
	}
	return &value.DevInfo, nil
}
