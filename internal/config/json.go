package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		BaseURL          string   `json:"base_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			AvatarDir string `json:"avatar_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Mail struct {
		APIKey         string   `json:"api_key"`
		APIURL         string   `json:"api_url"`
		From           string   `json:"from"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			BaseURL:          jsonCfg.App.BaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				AvatarDir: jsonCfg.Storage.Files.AvatarDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Mail: Mail{
			APIKey:         jsonCfg.Mail.APIKey,
			APIURL:         jsonCfg.Mail.APIURL,
			From:           jsonCfg.Mail.From,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
