package evidence

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	evidenceerrors "go-geoattend/internal/evidence/errors"

	_ "golang.org/x/image/webp"
)

const DefaultMaxBytes int64 = 5 << 20

type decoded struct {
	data        []byte
	contentType string
	ext         string
}

var formats = map[string]struct{ contentType, ext string }{
	"jpeg": {"image/jpeg", "jpg"},
	"png":  {"image/png", "png"},
	"webp": {"image/webp", "webp"},
}

// decodePayload accepts raw base64 or a data URL, checks the size ceiling
// and sniffs the image header. Pixels are never decoded.
func decodePayload(payload string, maxBytes int64) (*decoded, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		i := strings.IndexByte(payload, ',')
		if i < 0 {
			return nil, evidenceerrors.ErrInvalidBase64
		}
		payload = payload[i+1:]
	}
	if payload == "" {
		return nil, evidenceerrors.ErrEmptyPayload
	}

	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > maxBytes+2 {
		return nil, evidenceerrors.ErrPayloadTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some clients strip padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, evidenceerrors.ErrInvalidBase64
		}
	}
	if len(data) == 0 {
		return nil, evidenceerrors.ErrEmptyPayload
	}
	if int64(len(data)) > maxBytes {
		return nil, evidenceerrors.ErrPayloadTooLarge
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, evidenceerrors.ErrUnsupportedImage
	}
	f, ok := formats[format]
	if !ok {
		return nil, evidenceerrors.ErrUnsupportedImage
	}

	return &decoded{data: data, contentType: f.contentType, ext: f.ext}, nil
}
