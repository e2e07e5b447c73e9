// Package export renders a finished (or partial) journey as a single
// self-contained HTML page.
package export

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/playperu/worldtour/internal/travel"
)

//go:embed itinerary.html.tmpl
var itineraryHTML string

var itineraryTmpl = template.Must(template.New("itinerary").Funcs(template.FuncMap{
	"photoURL": photoURL,
}).Parse(itineraryHTML))

const qrSize = 256

type Itinerary struct {
	Nickname    string
	Entries     []travel.HistoryEntry
	ShareURL    string
	GeneratedAt time.Time
}

type page struct {
	Itinerary
	QRCode template.URL
}

// Write renders the itinerary to w. Photos are inlined as data URIs, so
// the page needs no network access to display.
func Write(w io.Writer, it Itinerary) error {
	p := page{Itinerary: it}
	if it.ShareURL != "" {
		png, err := QRCode(it.ShareURL, qrSize)
		if err != nil {
			return err
		}
		p.QRCode = dataURL("image/png", png)
	}
	if err := itineraryTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("rendering itinerary: %w", err)
	}
	return nil
}

// QRCode encodes url as a PNG of size x size pixels.
func QRCode(url string, size int) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return png, nil
}

func dataURL(mime string, data []byte) template.URL {
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data))
}

func photoURL(p *travel.Photo) template.URL {
	if p == nil || len(p.Data) == 0 {
		return ""
	}
	return dataURL(p.MIMEType, p.Data)
}
