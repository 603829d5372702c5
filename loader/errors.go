// SPDX-License-Identifier: MIT
// Package: skynet/loader
//
// errors.go - sentinel errors for the loader package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach position/context with %w.

package loader

import "errors"

// ErrSyntax indicates a token that is not a base-10 integer, or trailing data
// after a complete description.
var ErrSyntax = errors.New("loader: syntax error")

// ErrTruncated indicates the integer stream ended before the description was complete.
var ErrTruncated = errors.New("loader: truncated description")

// ErrNegative indicates a negative count or node ID.
var ErrNegative = errors.New("loader: negative value")

// ErrNoGateways indicates a description without any gateway.
var ErrNoGateways = errors.New("loader: no gateways")

// ErrAgentOnGateway indicates the agent would start on a gateway.
var ErrAgentOnGateway = errors.New("loader: agent starts on a gateway")

// ErrUnknownAgent indicates the agent's node appears in no link and is not a gateway.
var ErrUnknownAgent = errors.New("loader: agent node not on the board")

// ErrUnsupportedFormat indicates a file extension the loader does not read.
var ErrUnsupportedFormat = errors.New("loader: unsupported format")
