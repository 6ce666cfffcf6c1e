// Package auth implements email/password user accounts for the
// userAuthentication service: registration, credential verification,
// password changes, and JWT access/refresh token issuance with custom
// user claims. Persistence goes through bun repositories; payload
// validation uses ozzo-validation; HTTP handlers bind to fiber.
package auth
