// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSON wraps every failure to decode a request body: syntax
// errors, non-object bodies, wrong field types and oversized bodies.
var ErrInvalidJSON = errors.New("invalid JSON body")
