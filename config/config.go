package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/jsonc"
)

type Config struct {
	HTTPServerPort string `json:"http_server_port" validate:"required,numeric"`
	LogFile        string `json:"log_file" validate:"required"`
	LogMaxSizeMB   int    `json:"log_max_size_mb" validate:"gte=0"` // 0 uses the lumberjack default
	DebugMode      bool   `json:"debug_mode"`                       // also print logs to console when true

	CacheMaxAge          int    `json:"cache_max_age" validate:"gte=0"` // period in (s) before external catalog sources are reloaded
	RemoteMachineAddress string `json:"remote_machine_address"`         // optional: merge the catalog of another xraydbd

	Catalog []CatalogSource `json:"catalog" validate:"dive"`
}

// CatalogSource is one external material catalog.
type CatalogSource struct {
	Type string `json:"type" validate:"required,oneof=yaml xml mssql mdb"`
	Path string `json:"path" validate:"required_unless=Type mssql"` // yaml/xml: file or folder. mdb: OLE DB connection string.

	// mssql only
	Address  string `json:"address" validate:"required_if=Type mssql"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database" validate:"required_if=Type mssql"`
	Table    string `json:"table" validate:"required_if=Type mssql,required_if=Type mdb"`
}

var validate = validator.New()

// LoadConfig reads a JSON config file. Comments are allowed.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes config JSON over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	conf := Config{
		HTTPServerPort: "8080",
		LogFile:        "xraydb.log",
		CacheMaxAge:    60,
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), &conf); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := validate.Struct(&conf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &conf, nil
}

func (c *Config) CacheAge() time.Duration {
	return time.Duration(c.CacheMaxAge) * time.Second
}
