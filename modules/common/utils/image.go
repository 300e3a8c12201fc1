package utils

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPEG 디코더 등록
	_ "image/png"  // PNG 디코더 등록
	"log"
	"math"

	_ "github.com/kolesa-team/go-webp/decoder" // WebP 디코더 등록
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

const (
	maxDimension = 1024
	webpQuality  = 80
)

// NormalizeForGemini - 벤치마킹 이미지 전처리
// png/jpeg/webp를 디코딩해 긴 변 1024px 이하로 축소 후 WebP로 재인코딩한다.
// 디코딩/인코딩 실패 시 원본 바이트와 MIME을 그대로 반환 (분석은 계속 진행).
func NormalizeForGemini(data []byte, mimeType string) ([]byte, string) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("⚠️  Image decode failed (%v) - sending original bytes", err)
		return data, mimeType
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxDimension || height > maxDimension {
		scale := float64(maxDimension) / math.Max(float64(width), float64(height))
		newWidth := int(float64(width) * scale)
		newHeight := int(float64(height) * scale)
		img = resizeImage(img, newWidth, newHeight)
		log.Printf("🔄 Image downscaled: %dx%d → %dx%d", width, height, newWidth, newHeight)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, webpQuality)
	if err != nil {
		log.Printf("⚠️  WebP encoder options failed (%v) - sending original bytes", err)
		return data, mimeType
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, options); err != nil {
		log.Printf("⚠️  WebP encode failed (%v) - sending original bytes", err)
		return data, mimeType
	}

	log.Printf("✅ Image normalized (%s): %d bytes → %d bytes webp", format, len(data), buf.Len())
	return buf.Bytes(), "image/webp"
}

// resizeImage - Nearest Neighbor 방식 리사이즈
func resizeImage(src image.Image, targetWidth, targetHeight int) image.Image {
	srcBounds := src.Bounds()
	scaleX := float64(srcBounds.Dx()) / float64(targetWidth)
	scaleY := float64(srcBounds.Dy()) / float64(targetHeight)

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			srcX := srcBounds.Min.X + int(float64(x)*scaleX)
			srcY := srcBounds.Min.Y + int(float64(y)*scaleY)
			dst.Set(x, y, src.At(srcX, srcY))
		}
	}
	return dst
}
