package models

// DevInfoValue wraps the success payload of GetDevInfo.
type DevInfoValue struct {
	DevInfo DevInfo `json:"DevInfo"`
}

// DevInfo describes the camera hardware and firmware.
type DevInfo struct {
	Model      string `json:"model"`
	Name       string `json:"name"`
	Serial     string `json:"serial"`
	FirmVer    string `json:"firmVer"`
	HardVer    string `json:"hardVer"`
	CfgVer     string `json:"cfgVer"`
	DeviceType string `json:"type"`
	ChannelNum int    `json:"channelNum"`
	Wifi       int    `json:"wifi"`
}
