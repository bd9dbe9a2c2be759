// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package portal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/automailer/models"
)

const listingJSON = `{
	"data": [
		{"id": "41", "type": "billing-items", "attributes": {"createdAt": "2022-11-02T10:00:00Z", "cursorId": "cursor/41"}},
		{"id": "42", "type": "billing-items", "attributes": {"createdAt": "2023-06-15T10:00:00Z", "cursorId": "cursor/42"}},
		{"id": "43", "type": "billing-items", "attributes": {"createdAt": "2024-01-20T10:00:00Z", "cursorId": "cursor/43"}}
	]
}`

func authedSession(srvURL string) *Session {
	s := NewSession(srvURL)
	s.SetCookie("_session_id", "authenticated")
	return s
}

// ── FetchNew ─────────────────────────────────────────────────────────────────

func TestFetchNew_FiltersByWatermarkAndDownloads(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/client-portal-api/billing-items", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "superbill", req.URL.Query().Get("filter[thisType]"))
		assert.Equal(t, "10", req.URL.Query().Get("page[size]"))
		assert.Equal(t, "2019-01-17", req.Header.Get("api-version"))
		assert.Equal(t, "web", req.Header.Get("application-platform"))
		assert.Equal(t, "0.0.0+85ec7a61", req.Header.Get("application-build-version"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingJSON))
	})
	r.Get("/client-portal-api/billing-items/{cursor}.pdf", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "2019-01-17", req.Header.Get("api-version"))
		_, _ = w.Write([]byte("%PDF-1.7 " + chi.URLParam(req, "cursor")))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	watermark := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	records, err := c.FetchNew(context.Background(), authedSession(srv.URL), watermark)

	require.NoError(t, err)
	require.Len(t, records, 2)
	// listing order is preserved
	assert.Equal(t, "42", records[0].ID)
	assert.Equal(t, "cursor/42", records[0].CursorID)
	assert.Equal(t, "43", records[1].ID)
	assert.True(t, records[0].CreatedAt.Before(records[1].CreatedAt))
	assert.Contains(t, string(records[0].Document), "%PDF")
}

func TestFetchNew_NothingNew(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/client-portal-api/billing-items", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(listingJSON))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	watermark := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records, err := c.FetchNew(context.Background(), authedSession(srv.URL), watermark)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchNew_SetsRedirectTargetCookie(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/client-portal-api/billing-items", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	session := authedSession(srv.URL)
	_, err := c.FetchNew(context.Background(), session, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "%2Fbilling", session.Cookie("ember_simple_auth-redirectTarget"))
}

func TestFetchNew_ListingUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchNew(context.Background(), authedSession(srv.URL), time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchNew_MalformedListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance page</html>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchNew(context.Background(), authedSession(srv.URL), time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchNew_DownloadNotPDF(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/client-portal-api/billing-items", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(listingJSON))
	})
	r.Get("/client-portal-api/billing-items/{cursor}.pdf", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`<html>session expired</html>`))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchNew(context.Background(), authedSession(srv.URL), time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "not a PDF")
}

func TestFetchNew_DownloadFails(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/client-portal-api/billing-items", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(listingJSON))
	})
	r.Get("/client-portal-api/billing-items/{cursor}.pdf", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchNew(context.Background(), authedSession(srv.URL), time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

// ── filterNew ────────────────────────────────────────────────────────────────

func TestFilterNew(t *testing.T) {
	mark := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	item := func(id string, at time.Time) models.StatementItem {
		return models.StatementItem{ID: id, Attributes: models.StatementAttributes{CreatedAt: at}}
	}

	tests := []struct {
		name  string
		items []models.StatementItem
		want  []string
	}{
		{"empty listing", nil, nil},
		{"all old", []models.StatementItem{item("1", mark.Add(-time.Hour))}, nil},
		{"exactly at watermark is not new", []models.StatementItem{item("1", mark)}, nil},
		{"one second past watermark is new", []models.StatementItem{item("1", mark.Add(time.Second))}, []string{"1"}},
		{
			"mixed keeps listing order",
			[]models.StatementItem{
				item("old", mark.Add(-time.Hour)),
				item("b", mark.Add(48 * time.Hour)),
				item("a", mark.Add(time.Hour)),
			},
			[]string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterNew(tt.items, mark)
			require.Len(t, got, len(tt.want))
			for i, id := range tt.want {
				assert.Equal(t, id, got[i].ID)
			}
		})
	}
}
