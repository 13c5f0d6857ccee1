package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bactien/YCBG/internal/models"
)

// ErrInvalidPayload marks a share payload that could not be decoded.
// Malformed links fail closed: the caller alerts and redirects away.
var ErrInvalidPayload = errors.New("invalid share payload")

// EncodeShare serializes the quotation as it currently stands (saved or not)
// into the self-contained payload embedded in a share URL. URL-safe base64
// keeps the payload routable as a single path segment.
func EncodeShare(q *models.QuotationRequest) (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeShare reverses EncodeShare. Payloads minted by older clients used
// standard base64, so every alphabet and padding variant is accepted. Any
// decoding or parsing failure is reported as ErrInvalidPayload.
func DecodeShare(payload string) (*models.QuotationRequest, error) {
	var data []byte
	var err error
	for _, enc := range []*base64.Encoding{
		base64.URLEncoding, base64.RawURLEncoding,
		base64.StdEncoding, base64.RawStdEncoding,
	} {
		data, err = enc.DecodeString(payload)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	var q models.QuotationRequest
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &q, nil
}

// ShareFragment is the URL fragment the recipient opens read-only.
func ShareFragment(payload string) string {
	return "#/view/" + payload
}
