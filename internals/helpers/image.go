// file: internals/helpers/image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"agripadi_backend/internals/configs"
)

const maxImageBytes = 5 * 1024 * 1024

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SaveImageAsWebP terima upload multipart (jpg/jpeg/png/webp), resize maksimal
// 1600px sisi terpanjang, konversi ke WebP, lalu simpan ke UPLOAD_DIR.
// Return: URL publik file (UPLOAD_BASE_URL + nama file).
func SaveImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxImageBytes {
		return "", fmt.Errorf("ukuran gambar maksimal 5MB")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))

	var img image.Image
	switch ext {
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(src)
		if err != nil {
			return "", fmt.Errorf("file JPEG tidak valid")
		}
	case ".png":
		img, err = png.Decode(src)
		if err != nil {
			return "", fmt.Errorf("file PNG tidak valid")
		}
	case ".webp":
		img, err = webp.Decode(src)
		if err != nil {
			return "", fmt.Errorf("file WebP tidak valid")
		}
	default:
		return "", fmt.Errorf("format tidak didukung (jpg, jpeg, png, webp)")
	}

	// Resize kalau kebesaran (jaga rasio)
	if b := img.Bounds(); b.Dx() > 1600 || b.Dy() > 1600 {
		img = imaging.Fit(img, 1600, 1600, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fmt.Errorf("gagal konversi ke WebP: %w", err)
	}

	base := filenameSanitizer.ReplaceAllString(strings.TrimSuffix(fileHeader.Filename, ext), "-")
	if base == "" {
		base = "image"
	}
	name := fmt.Sprintf("%s_%s.webp", base, time.Now().Format("20060102_150405"))

	dir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return configs.UploadBaseURL + "/" + folder + "/" + name, nil
}
