// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package delivery fans a composed document out to the configured delivery
// channels: email (attachment), physical letter (upload + print-and-post),
// and SMS notification.
//
// The [Provider] interface abstracts the delivery provider's REST surface; a
// resty-based implementation authenticated with the account username and API
// key ships in provider.go. [Dispatcher] drives the per-channel fan-out on
// top of a Provider.
//
// Channel failure isolation is selectable: in the legacy mode the first
// failing channel aborts the remaining ones for the same statement, in
// independent mode every enabled channel is attempted and the failures are
// reported together.
package delivery
