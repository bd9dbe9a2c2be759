// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package delivery

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/automailer/internal/config"
	"github.com/MKhiriev/automailer/internal/logger"
	"github.com/MKhiriev/automailer/internal/mock"
	"github.com/MKhiriev/automailer/models"
)

func testChannelConfig(email, letter, sms, independent bool) *config.StructuredConfig {
	return &config.StructuredConfig{
		Email: config.EmailChannel{
			Enabled: email,
			From:    config.EmailFrom{ID: 77, Name: "Practice"},
			To:      config.EmailTo{Email: "insurer@example.com", Name: "Claims Dept"},
		},
		Mailing: config.MailingChannel{
			Enabled:    letter,
			Name:       "Claims Dept",
			Line1:      "1 Insurance Way",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    "US",
		},
		SMS: config.SMSChannel{
			Enabled: sms,
			Number:  "+15550001111",
		},
		Delivery: config.Delivery{IndependentChannels: independent},
	}
}

func newTestDispatcher(t *testing.T, cfg *config.StructuredConfig) (*Dispatcher, *mock.MockProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	return NewDispatcher(provider, cfg, logger.Nop()), provider
}

var document = []byte("%PDF-1.7 composed")

// ── Email channel ────────────────────────────────────────────────────────────

func TestDispatch_EmailOnly(t *testing.T) {
	d, provider := newTestDispatcher(t, testChannelConfig(true, false, false, false))

	provider.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg models.EmailMessage) error {
			assert.Equal(t, "New Statement", msg.Subject)
			assert.Equal(t, "A new statement has been generated.", msg.Body)
			assert.Equal(t, int64(77), msg.From.EmailAddressID)
			require.Len(t, msg.To, 1)
			assert.Equal(t, "insurer@example.com", msg.To[0].Email)
			require.Len(t, msg.Attachments, 1)
			assert.Equal(t, "statement.pdf", msg.Attachments[0].Filename)
			assert.Equal(t, "application/pdf", msg.Attachments[0].Type)
			assert.Equal(t, base64.StdEncoding.EncodeToString(document), msg.Attachments[0].Content)
			return nil
		})

	report, err := d.Dispatch(context.Background(), "42", document)

	require.NoError(t, err)
	assert.Equal(t, "42", report.StatementID)
	require.Len(t, report.Results, 1)
	assert.Equal(t, models.ChannelEmail, report.Results[0].Channel)
	assert.NoError(t, report.Results[0].Err)
}

// ── Letter channel ───────────────────────────────────────────────────────────

func TestDispatch_LetterFlow(t *testing.T) {
	d, provider := newTestDispatcher(t, testChannelConfig(false, true, false, false))

	gomock.InOrder(
		provider.EXPECT().UploadFile(gomock.Any(), document).Return("https://files.example.com/doc.pdf", nil),
		provider.EXPECT().ListReturnAddresses(gomock.Any()).Return([]models.ReturnAddress{
			{ReturnAddressID: 100, AddressName: "Practice"},
			{ReturnAddressID: 200, AddressName: "Branch"},
		}, nil),
		provider.EXPECT().PriceLetter(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, letter models.Letter) (string, error) {
				assert.Equal(t, "https://files.example.com/doc.pdf", letter.FileURL)
				assert.Zero(t, letter.PriorityPost)
				assert.Zero(t, letter.Colour)
				assert.Zero(t, letter.Duplex)
				assert.Zero(t, letter.TemplateUsed)
				require.Len(t, letter.Recipients, 1)
				assert.Equal(t, "Claims Dept", letter.Recipients[0].AddressName)
				// the first configured return address wins
				assert.Equal(t, int64(100), letter.Recipients[0].ReturnAddressID)
				return "$1.95", nil
			}),
		provider.EXPECT().SendLetter(gomock.Any(), gomock.Any()).Return(nil),
	)

	report, err := d.Dispatch(context.Background(), "42", document)

	require.NoError(t, err)
	assert.Equal(t, "$1.95", report.LetterPrice)
}

func TestDispatch_LetterNoReturnAddress(t *testing.T) {
	d, provider := newTestDispatcher(t, testChannelConfig(false, true, false, false))

	provider.EXPECT().UploadFile(gomock.Any(), document).Return("https://files.example.com/doc.pdf", nil)
	provider.EXPECT().ListReturnAddresses(gomock.Any()).Return(nil, nil)

	_, err := d.Dispatch(context.Background(), "42", document)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelivery)
	assert.Contains(t, err.Error(), "no return address")
}

func TestDispatch_LetterPriceRecordedEvenWhenSendFails(t *testing.T) {
	d, provider := newTestDispatcher(t, testChannelConfig(false, true, false, false))

	provider.EXPECT().UploadFile(gomock.Any(), document).Return("https://files.example.com/doc.pdf", nil)
	provider.EXPECT().ListReturnAddresses(gomock.Any()).Return([]models.ReturnAddress{{ReturnAddressID: 100}}, nil)
	provider.EXPECT().PriceLetter(gomock.Any(), gomock.Any()).Return("$1.95", nil)
	provider.EXPECT().SendLetter(gomock.Any(), gomock.Any()).Return(errors.New("print queue down"))

	report, err := d.Dispatch(context.Background(), "42", document)

	require.Error(t, err)
	assert.Equal(t, "$1.95", report.LetterPrice)
	assert.Equal(t, []models.Channel{models.ChannelLetter}, report.Failed())
}

// ── Channel ordering and failure modes ───────────────────────────────────────

func TestDispatch_LegacyAbortsOnFirstFailure(t *testing.T) {
	d, provider := newTestDispatcher(t, testChannelConfig(true, true, true, false))

	provider.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp relay rejected"))
	// no letter or sms expectations: the run must stop at the email failure

	report, err := d.Dispatch(context.Background(), "42", document)

	require.Error(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, models.ChannelEmail, report.Results[0].Channel)
}

func TestDispatch_IndependentAttemptsAllChannels(t *testing.T) {
	d, provider := newTestDispatcher(t, testChannelConfig(true, true, true, true))

	provider.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp relay rejected"))
	provider.EXPECT().UploadFile(gomock.Any(), document).Return("https://files.example.com/doc.pdf", nil)
	provider.EXPECT().ListReturnAddresses(gomock.Any()).Return([]models.ReturnAddress{{ReturnAddressID: 100}}, nil)
	provider.EXPECT().PriceLetter(gomock.Any(), gomock.Any()).Return("$1.95", nil)
	provider.EXPECT().SendLetter(gomock.Any(), gomock.Any()).Return(nil)
	provider.EXPECT().SendSMS(gomock.Any(), gomock.Any()).Return(nil)

	report, err := d.Dispatch(context.Background(), "42", document)

	require.Error(t, err)
	require.Len(t, report.Results, 3)
	assert.Equal(t, []models.Channel{models.ChannelEmail}, report.Failed())
}

func TestDispatch_SMSText(t *testing.T) {
	d, provider := newTestDispatcher(t, testChannelConfig(false, false, true, false))

	provider.EXPECT().SendSMS(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg models.SMSMessage) error {
			assert.Equal(t, "+15550001111", msg.To)
			assert.Contains(t, msg.Body, "Automailer has sent a letter")
			return nil
		})

	_, err := d.Dispatch(context.Background(), "42", document)
	require.NoError(t, err)
}

func TestDispatch_NoChannelsEnabled(t *testing.T) {
	d, _ := newTestDispatcher(t, testChannelConfig(false, false, false, false))

	report, err := d.Dispatch(context.Background(), "42", document)

	require.NoError(t, err)
	assert.Empty(t, report.Results)
}
