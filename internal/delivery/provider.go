package delivery

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/automailer/internal/config"
	"github.com/MKhiriev/automailer/internal/logger"
	"github.com/MKhiriev/automailer/models"
)

const (
	sendEmailPath       = "/v3/email/send"
	uploadPath          = "/v3/uploads"
	returnAddressesPath = "/v3/post-return-addresses"
	priceLetterPath     = "/v3/post/letters/price"
	sendLetterPath      = "/v3/post/letters/send"
	sendSMSPath         = "/v3/sms/send"
)

type clickSendProvider struct {
	client *resty.Client
	logger *logger.Logger
}

// NewClickSendProvider builds a [Provider] talking to the provider endpoint
// in cfg, authenticated with the account username and API key via basic auth.
func NewClickSendProvider(cfg config.Provider, timeout time.Duration, log *logger.Logger) Provider {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetBasicAuth(cfg.Username, cfg.APIKey)

	return &clickSendProvider{client: cli, logger: log}
}

func (p *clickSendProvider) SendEmail(ctx context.Context, msg models.EmailMessage) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(sendEmailPath)
	if err != nil {
		return fmt.Errorf("%w: send email request: %v", ErrDelivery, err)
	}

	return mapHTTPError(resp)
}

func (p *clickSendProvider) UploadFile(ctx context.Context, content []byte) (string, error) {
	req := models.UploadRequest{Content: base64.StdEncoding.EncodeToString(content)}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("convert", "post").
		SetBody(req).
		Post(uploadPath)
	if err != nil {
		return "", fmt.Errorf("%w: upload request: %v", ErrDelivery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var upload models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &upload); err != nil {
		return "", fmt.Errorf("%w: decode upload response: %v", ErrDelivery, err)
	}
	if upload.Data.URL == "" {
		return "", fmt.Errorf("%w: upload response carries no file url", ErrDelivery)
	}

	return upload.Data.URL, nil
}

func (p *clickSendProvider) ListReturnAddresses(ctx context.Context) ([]models.ReturnAddress, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(returnAddressesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list return addresses request: %v", ErrDelivery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ReturnAddressListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("%w: decode return addresses: %v", ErrDelivery, err)
	}

	return list.Data.Data, nil
}

func (p *clickSendProvider) PriceLetter(ctx context.Context, letter models.Letter) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(letter).
		Post(priceLetterPath)
	if err != nil {
		return "", fmt.Errorf("%w: price letter request: %v", ErrDelivery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var price models.LetterPriceResponse
	if err = json.Unmarshal(resp.Body(), &price); err != nil {
		return "", fmt.Errorf("%w: decode letter price: %v", ErrDelivery, err)
	}

	return fmt.Sprintf("%s%.2f", price.Data.Currency.Prefix, price.Data.TotalPrice), nil
}

func (p *clickSendProvider) SendLetter(ctx context.Context, letter models.Letter) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(letter).
		Post(sendLetterPath)
	if err != nil {
		return fmt.Errorf("%w: send letter request: %v", ErrDelivery, err)
	}

	return mapHTTPError(resp)
}

func (p *clickSendProvider) SendSMS(ctx context.Context, msg models.SMSMessage) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SMSCollection{Messages: []models.SMSMessage{msg}}).
		Post(sendSMSPath)
	if err != nil {
		return fmt.Errorf("%w: send sms request: %v", ErrDelivery, err)
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrDelivery, resp.StatusCode(), body)
}
