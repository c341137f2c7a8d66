// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
)

// AdminAccess is the named state of the admin credential.
type AdminAccess int

const (
	// AdminAccessDisabled means no admin password is configured: every
	// mutating request is refused as "disabled".
	AdminAccessDisabled AdminAccess = iota

	// AdminAccessEnabled means mutating requests are checked against the
	// configured admin password.
	AdminAccessEnabled
)

func (a AdminAccess) String() string {
	if a == AdminAccessEnabled {
		return "enabled"
	}
	return "disabled"
}

// SecretSource is the named state of the session signing secret.
type SecretSource int

const (
	// SecretFromConfig means the secret was supplied by configuration.
	SecretFromConfig SecretSource = iota

	// SecretGenerated means no secret was configured and a random one was
	// generated for this run; session tokens do not survive a restart.
	SecretGenerated
)

func (s SecretSource) String() string {
	if s == SecretGenerated {
		return "generated"
	}
	return "config"
}

const generatedSecretBytes = 32

// resolveStates derives AdminAccess and SecretSource from the merged values
// and fills in a generated secret when none was configured.
func (cfg *StructuredConfig) resolveStates() error {
	if cfg.App.AdminPassword == "" {
		cfg.App.AdminAccess = AdminAccessDisabled
	} else {
		cfg.App.AdminAccess = AdminAccessEnabled
	}

	if cfg.App.SecretKey != "" {
		cfg.App.SecretSource = SecretFromConfig
		return nil
	}

	secret, err := generateSecret(generatedSecretBytes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGeneratingSecret, err)
	}
	cfg.App.SecretKey = secret
	cfg.App.SecretSource = SecretGenerated

	return nil
}

func generateSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "******"
}

func maskDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "******")
	}
	return u.String()
}
