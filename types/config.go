package types

import "time"

// Config is a struct to hold the configuration data
type Config struct {
	Logging struct {
		OutputLevel  string `yaml:"outputLevel" envconfig:"LOGGING_OUTPUT_LEVEL"`
		OutputStderr bool   `yaml:"outputStderr" envconfig:"LOGGING_OUTPUT_STDERR"`

		FilePath       string `yaml:"filePath" envconfig:"LOGGING_FILE_PATH"`
		FileLevel      string `yaml:"fileLevel" envconfig:"LOGGING_FILE_LEVEL"`
		FileMaxSize    int    `yaml:"fileMaxSize" envconfig:"LOGGING_FILE_MAX_SIZE"` // megabytes
		FileMaxBackups int    `yaml:"fileMaxBackups" envconfig:"LOGGING_FILE_MAX_BACKUPS"`
	} `yaml:"logging"`

	Server struct {
		Port string `yaml:"port" envconfig:"FRONTEND_SERVER_PORT"`
		Host string `yaml:"host" envconfig:"FRONTEND_SERVER_HOST"`
	} `yaml:"server"`

	Frontend struct {
		Enabled bool `yaml:"enabled" envconfig:"FRONTEND_ENABLED"`
		Debug   bool `yaml:"debug" envconfig:"FRONTEND_DEBUG"`
		Pprof   bool `yaml:"pprof" envconfig:"FRONTEND_PPROF"`
		Minify  bool `yaml:"minify" envconfig:"FRONTEND_MINIFY"`

		SiteDomain      string `yaml:"siteDomain" envconfig:"FRONTEND_SITE_DOMAIN"`
		SiteName        string `yaml:"siteName" envconfig:"FRONTEND_SITE_NAME"`
		SiteSubtitle    string `yaml:"siteSubtitle" envconfig:"FRONTEND_SITE_SUBTITLE"`
		SiteDescription string `yaml:"siteDescription" envconfig:"FRONTEND_SITE_DESCRIPTION"`

		PublicRPCUrl string `yaml:"publicRpcUrl" envconfig:"FRONTEND_PUBLIC_RPC_URL"`

		PageCallTimeout  time.Duration `yaml:"pageCallTimeout" envconfig:"FRONTEND_PAGE_CALL_TIMEOUT"`
		HttpReadTimeout  time.Duration `yaml:"httpReadTimeout" envconfig:"FRONTEND_HTTP_READ_TIMEOUT"`
		HttpWriteTimeout time.Duration `yaml:"httpWriteTimeout" envconfig:"FRONTEND_HTTP_WRITE_TIMEOUT"`
		HttpIdleTimeout  time.Duration `yaml:"httpIdleTimeout" envconfig:"FRONTEND_HTTP_IDLE_TIMEOUT"`
	} `yaml:"frontend"`

	RateLimit struct {
		Enabled    bool `yaml:"enabled" envconfig:"RATELIMIT_ENABLED"`
		ProxyCount uint `yaml:"proxyCount" envconfig:"RATELIMIT_PROXY_COUNT"`
		Rate       uint `yaml:"rate" envconfig:"RATELIMIT_RATE"`
		Burst      uint `yaml:"burst" envconfig:"RATELIMIT_BURST"`
	} `yaml:"rateLimit"`

	ExecutionApi struct {
		// Connection selects the transport used for vault reads: "rpc" uses the configured
		// endpoints, "public" uses frontend.publicRpcUrl.
		Connection  string           `yaml:"connection" envconfig:"EXECUTIONAPI_CONNECTION"`
		Endpoint    string           `yaml:"endpoint" envconfig:"EXECUTIONAPI_ENDPOINT"`
		Endpoints   []EndpointConfig `yaml:"endpoints"`
		CallTimeout time.Duration    `yaml:"callTimeout" envconfig:"EXECUTIONAPI_CALL_TIMEOUT"`
	} `yaml:"executionapi"`

	Vaults struct {
		Addresses []string `yaml:"addresses" envconfig:"VAULT_ADDRESSES"`
		Duration  string   `yaml:"duration" envconfig:"VAULT_DURATION_LABEL"`
	} `yaml:"vaults"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" envconfig:"METRICS_ENABLED"`
		Public  bool   `yaml:"public" envconfig:"METRICS_PUBLIC"`
		Host    string `yaml:"host" envconfig:"METRICS_HOST"`
		Port    string `yaml:"port" envconfig:"METRICS_PORT"`
	} `yaml:"metrics"`
}

type EndpointConfig struct {
	Url     string            `yaml:"url"`
	Name    string            `yaml:"name"`
	Headers map[string]string `yaml:"headers"`
}
