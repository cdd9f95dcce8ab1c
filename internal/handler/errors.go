// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportAddress is returned by NewHandlers when the server section
// names no listen address, leaving nothing to build a handler for.
var errNoTransportAddress = errors.New("server config has neither an HTTP nor a gRPC address")
