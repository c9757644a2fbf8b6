// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package redact provides utilities to strip sensitive values from strings
// before they appear in output, logs, or error messages.
package redact

import (
	"net/url"
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output. Bucket credentials are picked up by the gocloud.dev
// drivers from these variables.
var sensitiveEnvVars = []string{
	"AWS_SECRET_ACCESS_KEY",
	"AWS_SESSION_TOKEN",
	"AZURE_STORAGE_KEY",
	"AZURE_STORAGE_SAS_TOKEN",
	"SURVEYBOARD_METRICS_TOKEN",
}

// sensitiveParams are bucket URL query parameters that carry credentials.
var sensitiveParams = []string{
	"access_key",
	"access_key_id",
	"secret_key",
	"secret_access_key",
	"session_token",
	"sas_token",
	"sig",
	"token",
}

const mask = "[REDACTED]"

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// resetCache resets the cached secrets. Used by tests that change env vars
// between calls.
func resetCache() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// String replaces any occurrence of a known sensitive environment variable
// value with "[REDACTED]". Secret values are cached on first call.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, mask)
	}
	return s
}

// URL masks the password part of the userinfo and any credential-bearing
// query parameter of a bucket URL. Unparseable input goes through String.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return String(raw)
	}
	if u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			for _, p := range sensitiveParams {
				if strings.EqualFold(key, p) {
					q.Set(key, "xxxxx")
				}
			}
		}
		u.RawQuery = q.Encode()
	}
	return String(u.String())
}
