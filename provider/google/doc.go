// Package google validates Google-issued ID tokens and resolves them to
// local user accounts.
package google
