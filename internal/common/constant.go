// Package common contains shared constants and sentinel errors used across
// Hoopa Connect components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultRoleName is the role assumed for users without a role assignment.
const DefaultRoleName = "user"
