// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package portal implements the authenticated client for the statement
// portal.
//
// The portal exposes no formal API contract: authentication is a browser-style
// handshake (CSRF token scraped from the rendered login page, cookies
// accumulated across redirects), and the statement listing/download endpoints
// require the session cookies plus static API version headers.
//
// The primary abstraction is [Client], which decouples the run coordinator
// from the HTTP handshake details. Session state is an explicit [Session]
// value threaded through every call rather than a hidden cookie jar: cookies
// accumulate monotonically within a session and are never expired by the
// client (their lifetime is server-driven).
//
// Error values defined in errors.go let callers distinguish handshake
// failures ([ErrAuth]) from listing/download failures ([ErrFetch]) via
// [errors.Is].
package portal
