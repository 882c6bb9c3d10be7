// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means no transport address is configured, for the
// core service or the gateway. Startup fails on it.
var errNoHandlersAreCreated = errors.New("no handlers are created")
