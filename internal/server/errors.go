// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when no address is configured or a
// handler for the configured address is missing.
var errNoServersAreCreated = errors.New("no servers are created")
