package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the on-disk shape of the configuration
// artifact. The artifact is the primary configuration source and the durable
// run state: state.lastDate is the watermark rewritten by [CommitWatermark].
type StructuredJSONConfig struct {
	Website struct {
		URL   string `json:"url"`
		Login struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"login"`
	} `json:"website"`

	ClickSend struct {
		Username string `json:"username"`
		APIKey   string `json:"api_key"`
		BaseURL  string `json:"base_url"`
	} `json:"clicksend"`

	Email struct {
		Enabled bool `json:"enabled"`
		From    struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"from"`
		To struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"to"`
	} `json:"email"`

	Mailing struct {
		Enabled    bool   `json:"enabled"`
		Name       string `json:"name"`
		Line1      string `json:"line1"`
		Line2      string `json:"line2"`
		City       string `json:"city"`
		State      string `json:"state"`
		PostalCode string `json:"postalCode"`
		Country    string `json:"country"`
	} `json:"mailing"`

	SMS struct {
		Enabled bool   `json:"enabled"`
		Number  string `json:"number"`
	} `json:"sms"`

	Template string `json:"template"`

	Ledger struct {
		DSN string `json:"dsn"`
	} `json:"ledger,omitempty"`

	Delivery struct {
		IndependentChannels bool     `json:"independent_channels"`
		RequestTimeout      Duration `json:"request_timeout"`
	} `json:"delivery,omitempty"`

	State struct {
		LastDate string `json:"lastDate"`
	} `json:"state"`
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

	var lastDate time.Time
	if jsonCfg.State.LastDate != "" {
		lastDate, err = time.Parse(time.RFC3339, jsonCfg.State.LastDate)
		if err != nil {
			return nil, fmt.Errorf("error parsing state.lastDate: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Website: Website{
			URL: jsonCfg.Website.URL,
			Login: Login{
				Email:    jsonCfg.Website.Login.Email,
				Password: jsonCfg.Website.Login.Password,
			},
		},
		Provider: Provider{
			Username: jsonCfg.ClickSend.Username,
			APIKey:   jsonCfg.ClickSend.APIKey,
			BaseURL:  jsonCfg.ClickSend.BaseURL,
		},
		Email: EmailChannel{
			Enabled: jsonCfg.Email.Enabled,
			From: EmailFrom{
				ID:   jsonCfg.Email.From.ID,
				Name: jsonCfg.Email.From.Name,
			},
			To: EmailTo{
				Email: jsonCfg.Email.To.Email,
				Name:  jsonCfg.Email.To.Name,
			},
		},
		Mailing: MailingChannel{
			Enabled:    jsonCfg.Mailing.Enabled,
			Name:       jsonCfg.Mailing.Name,
			Line1:      jsonCfg.Mailing.Line1,
			Line2:      jsonCfg.Mailing.Line2,
			City:       jsonCfg.Mailing.City,
			State:      jsonCfg.Mailing.State,
			PostalCode: jsonCfg.Mailing.PostalCode,
			Country:    jsonCfg.Mailing.Country,
		},
		SMS: SMSChannel{
			Enabled: jsonCfg.SMS.Enabled,
			Number:  jsonCfg.SMS.Number,
		},
		Delivery: Delivery{
			IndependentChannels: jsonCfg.Delivery.IndependentChannels,
			RequestTimeout:      time.Duration(jsonCfg.Delivery.RequestTimeout),
		},
		Compose: Compose{
			TemplatePath: jsonCfg.Template,
		},
		Ledger: Ledger{
			DSN: jsonCfg.Ledger.DSN,
		},
		State: State{
			LastDate: lastDate,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
