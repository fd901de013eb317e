package config

type Configs struct {
	LogLevel string         `toml:"log_level"`
	Twitter  TwitterConfigs `toml:"twitter"`
}

type TwitterConfigs struct {
	// APIEndpoints are the API v2 base URLs. Only the first is normally
	// used; tests point this at a stub server.
	APIEndpoints []string `toml:"api_endpoints"`

	// AppAccessToken is the bearer token, required for reads.
	AppAccessToken string `toml:"bearer_token"`

	// OAuth 1.0a user-context credentials, required only for posting.
	ConsumerAPIKey    string `toml:"api_key"`
	ConsumerAPISecret string `toml:"api_secret"`
	AccessToken       string `toml:"access_token"`
	AccessTokenSecret string `toml:"access_token_secret"`
}

func (c TwitterConfigs) CanRead() bool {
	return c.AppAccessToken != ""
}

func (c TwitterConfigs) CanWrite() bool {
	return c.ConsumerAPIKey != "" &&
		c.ConsumerAPISecret != "" &&
		c.AccessToken != "" &&
		c.AccessTokenSecret != ""
}
