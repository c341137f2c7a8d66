// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrMalformedApp is returned by [App.UnmarshalJSON] when the payload is
// valid JSON but not an object, or when a known field is not a string.
var ErrMalformedApp = errors.New("malformed app record")

// ErrMalformedRequest is returned when a delete or session request body is
// not a JSON object or carries a field of the wrong type.
var ErrMalformedRequest = errors.New("malformed request")
