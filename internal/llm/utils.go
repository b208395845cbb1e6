package llm

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Salam-35/PhdTrack-sub000/constants"
)

// ReadImageDataURL loads an image file and encodes it as a base64 data URL
// for a vision request. PDF input is rejected with ErrPDFUnsupported; other
// non-image formats are rejected via the format map.
func ReadImageDataURL(path string) (dataURL, mimeType string, err error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch constants.MapExtToFormat(ext) {
	case constants.IMAGE:
	case constants.PDF:
		return "", "", ErrPDFUnsupported
	default:
		return "", "", fmt.Errorf("unsupported transcript file format: %q", ext)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	mt := mime.TypeByExtension("." + ext)
	if mt == "" || !strings.HasPrefix(mt, "image/") {
		// fallbacks
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}
