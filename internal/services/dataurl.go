package services

import (
	"encoding/base64"
	"errors"
	"strings"
)

var errBadDataURL = errors.New("malformed data URL")

// ParseDataURL splits a base64 data URL into its media type and raw bytes.
func ParseDataURL(s string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, errBadDataURL
	}
	meta, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, errBadDataURL
	}
	mime = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errBadDataURL
	}
	return mime, data, nil
}

// BuildDataURL is the inverse of ParseDataURL.
func BuildDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
