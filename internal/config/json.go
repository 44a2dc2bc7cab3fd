package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type so that operators can write durations as
// "30s" / "24h" in the config file.
type StructuredJSONConfig struct {
	App struct {
		Pepper             string   `json:"pepper"`
		BcryptCost         int      `json:"bcrypt_cost"`
		ActivationRequired bool     `json:"activation_required"`
		ActivationTTL      Duration `json:"activation_ttl"`
		AutologinEnabled   bool     `json:"autologin_enabled"`
		AutologinTTL       Duration `json:"autologin_ttl"`
		MaxTries           int      `json:"max_tries"`
		RelevanceWindow    Duration `json:"relevance_window"`
		BanDuration        Duration `json:"ban_duration"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Session struct {
		CookieName          string   `json:"cookie_name"`
		AutologinCookieName string   `json:"autologin_cookie_name"`
		TTL                 Duration `json:"ttl"`
	} `json:"session,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
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
			Pepper:             jsonCfg.App.Pepper,
			BcryptCost:         jsonCfg.App.BcryptCost,
			ActivationRequired: jsonCfg.App.ActivationRequired,
			ActivationTTL:      time.Duration(jsonCfg.App.ActivationTTL),
			AutologinEnabled:   jsonCfg.App.AutologinEnabled,
			AutologinTTL:       time.Duration(jsonCfg.App.AutologinTTL),
			MaxTries:           jsonCfg.App.MaxTries,
			RelevanceWindow:    time.Duration(jsonCfg.App.RelevanceWindow),
			BanDuration:        time.Duration(jsonCfg.App.BanDuration),
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Session: Session{
			CookieName:          jsonCfg.Session.CookieName,
			AutologinCookieName: jsonCfg.Session.AutologinCookieName,
			TTL:                 time.Duration(jsonCfg.Session.TTL),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a JSON number of
// nanoseconds or a string accepted by [time.ParseDuration].
type Duration time.Duration

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %s", string(data))
	}
}
