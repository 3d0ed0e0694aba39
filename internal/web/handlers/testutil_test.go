package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/cube-scanner/internal/cube"
	"github.com/lucasb-eyer/go-colorful"
)

// solidPNG encodes a width*height PNG filled with one color.
func solidPNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// referencePNG encodes a solid image in the default reference color of a label.
func referencePNG(t *testing.T, label cube.Label) []byte {
	t.Helper()
	ref, ok := cube.DefaultPalette().Lookup(label)
	if !ok {
		t.Fatalf("no reference color for %s", label)
	}
	r, g, b := colorful.Hsv(ref.Color.H, ref.Color.S/cube.ChannelMax, ref.Color.V/cube.ChannelMax).RGB255()
	return solidPNG(t, 30, 30, color.RGBA{R: r, G: g, B: b, A: 255})
}

// multipartRequest builds a POST request carrying the given files and form values.
func multipartRequest(t *testing.T, target string, files map[string][]byte, values map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for field, data := range files {
		part, err := mw.CreateFormFile(field, field+".png")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		part.Write(data)
	}
	for key, value := range values {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
