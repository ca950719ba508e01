package constants

import "time"

// ContextKeyUserID is the gin context key holding the authenticated user ID.
const ContextKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length on registration.
const MinPasswordLength = 6

// TokenIssuer is the issuer claim stamped on every bearer token.
const TokenIssuer = "journali.nl"

// TokenTTL is the lifetime of an issued bearer token.
const TokenTTL = 30 * 24 * time.Hour
