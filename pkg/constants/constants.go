package constants

const (
	AppName = "medreach"

	ConfigName   = "config"
	ConfigFormat = "yaml"

	EnvPrefix = "MEDREACH"
)
