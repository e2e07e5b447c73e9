package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/playperu/worldtour/internal/travel"
)

func testEntries() []travel.HistoryEntry {
	photo := &travel.Photo{MIMEType: "image/png", Data: []byte("souvenir")}
	return []travel.HistoryEntry{
		{
			Round:         1,
			City:          travel.City{Name: "Kyoto", Country: "Japan"},
			Landmark:      travel.Landmark{Name: "Fushimi Inari Taisha"},
			LandmarkPhoto: photo,
			Diary:         "Walked through a thousand gates <3",
			Date:          "2025/12/20",
		},
		{
			Round:    2,
			City:     travel.City{Name: "Honolulu", Country: "United States"},
			Landmark: travel.Landmark{Name: "Diamond Head"},
			Diary:    "Sunrise hike!",
			Date:     "2026/01/03",
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Itinerary{
		Nickname:    "Mia",
		Entries:     testEntries(),
		GeneratedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Mia's world tour",
		"Stop 1: Kyoto, Japan",
		"Fushimi Inari Taisha",
		"2025/12/20",
		"Walked through a thousand gates &lt;3",
		"Stop 2: Honolulu, United States",
		"Diamond Head",
		"Sunrise hike!",
		"data:image/png;base64,c291dmVuaXI=",
		"2026/01/05",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "QR code") {
		t.Error("expected no QR code without a share URL")
	}
	if n := strings.Count(out, "<img"); n != 1 {
		t.Errorf("expected 1 image for the one stored photo, got %d", n)
	}
}

func TestWriteWithShareURL(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Itinerary{
		Nickname: "Mia",
		Entries:  testEntries(),
		ShareURL: "https://tour.example.com/api/journeys/abc/itinerary",
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `alt="QR code"`) {
		t.Error("expected a QR code image")
	}
	if !strings.Contains(out, "https://tour.example.com/api/journeys/abc/itinerary") {
		t.Error("expected the share link")
	}
}

func TestQRCode(t *testing.T) {
	data, err := QRCode("https://tour.example.com", 128)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("expected 128x128, got %dx%d", b.Dx(), b.Dy())
	}
}
