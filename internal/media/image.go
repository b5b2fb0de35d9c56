package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Decodificadores registrados para image.Decode
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Ancho máximo de las imágenes de promoción publicadas.
const maxPromotionWidth = 1280

const webpQuality = 85

// NormalizePromotionImage decodifica la imagen subida (JPEG o PNG),
// la reduce si excede el ancho máximo y la re-codifica como WebP.
func NormalizePromotionImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = scaleDown(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleDown(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxPromotionWidth {
		return img
	}

	height := bounds.Dy() * maxPromotionWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPromotionWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// DecodeBase64Image acepta el payload del formulario: base64 puro o un
// data URL ("data:image/jpeg;base64,...").
func DecodeBase64Image(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}
	return data, nil
}
