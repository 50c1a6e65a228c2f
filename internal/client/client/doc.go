// Package client contains the CLI's connection to the Hoopa Connect backend.
//
// # Overview
//
// The package provides:
//  1. GRPCClient, which manages a connection, injects the access token via an
//     interceptor, refreshes an expired access token once and maps gRPC status
//     codes to the sentinel errors in internal/common.
//  2. MarketplaceRemote, the marketplace collection in the shape the generic
//     list mediator expects.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     session database, an SQLite file migrated with goose.
//
// # Error Handling
//
// NotFound, Unauthenticated, PermissionDenied and AlreadyExists map to
// common.ErrorNotFound, common.ErrorUnauthorized, common.ErrorForbidden and
// common.ErrorAlreadyExists. InvalidArgument wraps common.ErrValidation.
// Unreachable servers yield ErrUnavailable.
package client
