package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/automailer/models"
)

// The listing response sets this cookie in a browser; subsequent API calls
// expect it to be present.
const (
	redirectTargetCookie = "ember_simple_auth-redirectTarget"
	redirectTargetValue  = "%2Fbilling"
)

var pdfMagic = []byte("%PDF")

func (h *httpPortalClient) FetchNew(ctx context.Context, session *Session, watermark time.Time) ([]models.StatementRecord, error) {
	h.logger.Info().Msg("fetching statements")

	resp, err := h.client.R().
		SetContext(ctx).
		SetCookies(session.Cookies()).
		SetHeaders(apiHeaders).
		SetQueryParam("filter[thisType]", statementType).
		SetQueryParam("page[size]", listingPageSize).
		Get(listingPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list statements: %v", ErrFetch, err)
	}
	if !acceptStatus(resp.StatusCode()) {
		return nil, fmt.Errorf("%w: list statements: unexpected status %d", ErrFetch, resp.StatusCode())
	}
	session.SetCookie(redirectTargetCookie, redirectTargetValue)
	session.Merge(resp.Cookies())

	var listing models.StatementListing
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, fmt.Errorf("%w: decode statement listing: %v", ErrFetch, err)
	}

	fresh := filterNew(listing.Data, watermark)
	h.logger.Info().
		Int("listed", len(listing.Data)).
		Int("new", len(fresh)).
		Time("watermark", watermark).
		Msg("found statements")

	records := make([]models.StatementRecord, 0, len(fresh))
	for _, item := range fresh {
		record, err := h.download(ctx, session, item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (h *httpPortalClient) download(ctx context.Context, session *Session, item models.StatementItem) (models.StatementRecord, error) {
	path := downloadPathPrefix + url.PathEscape(item.Attributes.CursorID) + ".pdf"
	h.logger.Info().Str("path", path).Msg("downloading statement document")

	resp, err := h.client.R().
		SetContext(ctx).
		SetCookies(session.Cookies()).
		SetHeaders(apiHeaders).
		Get(path)
	if err != nil {
		return models.StatementRecord{}, fmt.Errorf("%w: download statement %s: %v", ErrFetch, item.ID, err)
	}
	if !acceptStatus(resp.StatusCode()) {
		return models.StatementRecord{}, fmt.Errorf("%w: download statement %s: unexpected status %d", ErrFetch, item.ID, resp.StatusCode())
	}

	// The bytes must be a PDF document, not an HTML error page or a
	// re-encoded text body.
	body := resp.Body()
	if !bytes.HasPrefix(body, pdfMagic) {
		return models.StatementRecord{}, fmt.Errorf("%w: download statement %s: response is not a PDF document", ErrFetch, item.ID)
	}
	session.Merge(resp.Cookies())

	return models.StatementRecord{
		ID:        item.ID,
		CursorID:  item.Attributes.CursorID,
		CreatedAt: item.Attributes.CreatedAt,
		Document:  body,
	}, nil
}

// filterNew keeps the items created strictly after watermark, preserving
// listing order.
func filterNew(items []models.StatementItem, watermark time.Time) []models.StatementItem {
	fresh := make([]models.StatementItem, 0, len(items))
	for _, item := range items {
		if item.Attributes.CreatedAt.After(watermark) {
			fresh = append(fresh, item)
		}
	}
	return fresh
}
