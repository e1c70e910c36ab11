// Package web exposes the HTTP surface: the upload form, the Google OAuth
// consent flow, and the upload/purge actions that drive reconciliation.
package web
