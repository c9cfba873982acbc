package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/0xDegenDeveloper/ui-clone/config"
	"github.com/0xDegenDeveloper/ui-clone/types"
)

// Config is the globally accessible configuration
var Config *types.Config

const (
	ConnectionRpc    = "rpc"
	ConnectionPublic = "public"
)

// ReadConfig will process a configuration
func ReadConfig(cfg *types.Config, path string) error {
	err := readConfigFile(cfg, path)
	if err != nil {
		return err
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	err = readConfigEnv(cfg)
	if err != nil {
		return fmt.Errorf("error reading config from environment: %w", err)
	}

	switch cfg.ExecutionApi.Connection {
	case "":
		cfg.ExecutionApi.Connection = ConnectionRpc
	case ConnectionRpc, ConnectionPublic:
	default:
		return fmt.Errorf("unknown execution api connection: %v", cfg.ExecutionApi.Connection)
	}

	// endpoints
	if cfg.ExecutionApi.Endpoints == nil && cfg.ExecutionApi.Endpoint != "" {
		cfg.ExecutionApi.Endpoints = []types.EndpointConfig{
			{
				Url:  cfg.ExecutionApi.Endpoint,
				Name: "default",
			},
		}
	}
	if cfg.ExecutionApi.Connection == ConnectionRpc && len(cfg.ExecutionApi.Endpoints) == 0 {
		return fmt.Errorf("missing execution endpoints (need at least 1 endpoint for rpc connection)")
	}
	if cfg.ExecutionApi.Connection == ConnectionPublic && cfg.Frontend.PublicRPCUrl == "" {
		return fmt.Errorf("missing frontend.publicRpcUrl (required for public connection)")
	}

	log.WithFields(log.Fields{
		"connection": cfg.ExecutionApi.Connection,
		"endpoints":  len(cfg.ExecutionApi.Endpoints),
		"vaults":     len(cfg.Vaults.Addresses),
	}).Infof("did init config")

	return nil
}

func readConfigFile(cfg *types.Config, path string) error {
	err := yaml.Unmarshal([]byte(config.DefaultConfigYml), cfg)
	if err != nil {
		return fmt.Errorf("error decoding default config: %v", err)
	}
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening config file %v: %v", path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return fmt.Errorf("error decoding config file %v: %v", path, err)
	}

	return nil
}

func readConfigEnv(cfg *types.Config) error {
	return envconfig.Process("", cfg)
}
