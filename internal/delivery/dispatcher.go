package delivery

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/automailer/internal/config"
	"github.com/MKhiriev/automailer/internal/logger"
	"github.com/MKhiriev/automailer/models"
)

const (
	emailSubject       = "New Statement"
	emailBody          = "A new statement has been generated."
	attachmentFilename = "statement.pdf"
	attachmentMIMEType = "application/pdf"

	smsBody = "Hello! Automailer has sent a letter to your insurance company due to a new statement being available."
)

// Dispatcher fans one composed document out to every enabled channel, in
// fixed order: email, letter, SMS.
type Dispatcher struct {
	provider    Provider
	email       config.EmailChannel
	mailing     config.MailingChannel
	sms         config.SMSChannel
	independent bool
	logger      *logger.Logger
}

// NewDispatcher wires a Dispatcher from the channel configuration in cfg.
func NewDispatcher(provider Provider, cfg *config.StructuredConfig, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		provider:    provider,
		email:       cfg.Email,
		mailing:     cfg.Mailing,
		sms:         cfg.SMS,
		independent: cfg.Delivery.IndependentChannels,
		logger:      log,
	}
}

// Dispatch attempts every enabled channel for the document. In legacy mode
// the first channel failure aborts the remaining channels; in independent
// mode all enabled channels are attempted. Either way a non-nil error is
// returned when any attempted channel failed, alongside the report of what
// was attempted.
func (d *Dispatcher) Dispatch(ctx context.Context, statementID string, document []byte) (models.DeliveryReport, error) {
	log := logger.FromContext(ctx)
	report := models.DeliveryReport{StatementID: statementID}

	channels := []struct {
		name    models.Channel
		enabled bool
		send    func(context.Context, []byte, *models.DeliveryReport) error
	}{
		{models.ChannelEmail, d.email.Enabled, d.sendEmail},
		{models.ChannelLetter, d.mailing.Enabled, d.sendLetter},
		{models.ChannelSMS, d.sms.Enabled, d.sendSMS},
	}

	for _, ch := range channels {
		if !ch.enabled {
			continue
		}

		err := ch.send(ctx, document, &report)
		if err != nil {
			err = fmt.Errorf("%s channel: %w", ch.name, err)
			log.Err(err).Str("channel", string(ch.name)).Msg("channel delivery failed")
		}
		report.Results = append(report.Results, models.ChannelResult{Channel: ch.name, Err: err})

		if err != nil && !d.independent {
			return report, err
		}
	}

	return report, report.FirstErr()
}

func (d *Dispatcher) sendEmail(ctx context.Context, document []byte, _ *models.DeliveryReport) error {
	logger.FromContext(ctx).Info().Msg("sending email")

	msg := models.EmailMessage{
		To:      []models.EmailAddress{{Email: d.email.To.Email, Name: d.email.To.Name}},
		From:    models.EmailFrom{EmailAddressID: d.email.From.ID, Name: d.email.From.Name},
		Subject: emailSubject,
		Body:    emailBody,
		Attachments: []models.EmailAttachment{{
			Content:     base64.StdEncoding.EncodeToString(document),
			Type:        attachmentMIMEType,
			Filename:    attachmentFilename,
			Disposition: "attachment",
		}},
	}

	return d.provider.SendEmail(ctx, msg)
}

func (d *Dispatcher) sendLetter(ctx context.Context, document []byte, report *models.DeliveryReport) error {
	log := logger.FromContext(ctx)

	log.Info().Msg("uploading document to provider")
	fileURL, err := d.provider.UploadFile(ctx, document)
	if err != nil {
		return err
	}

	log.Info().Msg("getting return address(es)")
	addresses, err := d.provider.ListReturnAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return fmt.Errorf("%w: account has no return address configured", ErrDelivery)
	}
	returnAddr := addresses[0]
	log.Info().Int64("return_address_id", returnAddr.ReturnAddressID).Msg("using return address")

	letter := models.Letter{
		FileURL: fileURL,
		Recipients: []models.LetterRecipient{{
			AddressName:       d.mailing.Name,
			AddressLine1:      d.mailing.Line1,
			AddressLine2:      d.mailing.Line2,
			AddressCity:       d.mailing.City,
			AddressState:      d.mailing.State,
			AddressPostalCode: d.mailing.PostalCode,
			AddressCountry:    d.mailing.Country,
			ReturnAddressID:   returnAddr.ReturnAddressID,
		}},
	}

	// Pricing is informational: it is logged and reported, never used to
	// gate the send.
	price, err := d.provider.PriceLetter(ctx, letter)
	if err != nil {
		return err
	}
	report.LetterPrice = price
	log.Info().Str("price", price).Msg("sending letter will cost")

	log.Info().Msg("sending letter")
	return d.provider.SendLetter(ctx, letter)
}

func (d *Dispatcher) sendSMS(ctx context.Context, _ []byte, _ *models.DeliveryReport) error {
	logger.FromContext(ctx).Info().Msg("sending notification")

	return d.provider.SendSMS(ctx, models.SMSMessage{To: d.sms.Number, Body: smsBody})
}
