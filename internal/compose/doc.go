// Package compose builds the mailable document for one statement: a cover
// page stamped with the current date, merged with the statement PDF fetched
// from the portal.
//
// The cover page comes from a configured PDF template, or from a built-in
// generated page when no template is configured. Merging preserves page
// content and order exactly and supports inputs with differing page counts
// and geometry.
package compose
