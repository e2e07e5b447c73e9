package server

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/playperu/worldtour/internal/travel"
)

var errBadPhoto = errors.New("photo must be a base64 data URL or base64 data with a mimeType")

// decodePhoto accepts either "data:image/jpeg;base64,..." or bare base64
// with the MIME type given separately.
func decodePhoto(data, mimeType string) (travel.Photo, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return travel.Photo{}, nil
	}
	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return travel.Photo{}, errBadPhoto
		}
		mimeType, data = strings.TrimSuffix(header, ";base64"), payload
	}
	if mimeType == "" {
		return travel.Photo{}, errBadPhoto
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return travel.Photo{}, errBadPhoto
	}
	if sniffed := http.DetectContentType(raw); strings.HasPrefix(sniffed, "image/") {
		mimeType = sniffed
	}
	return travel.Photo{MIMEType: mimeType, Data: raw}, nil
}
