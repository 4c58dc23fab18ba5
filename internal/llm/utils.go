package llm

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// maxVisionMB caps the attachment size we are willing to inline as a data URL.
const maxVisionMB = 20

// ShouldAttachImage decides whether the scan itself goes to the model. We
// attach whenever the file is a readable image under the size gate; the
// scoresheet's table structure survives vision far better than it survives
// flat OCR text.
func ShouldAttachImage(req ExtractRequest) (attach bool, dataURL, mimeType string) {
	if req.ImagePath == "" {
		return false, "", ""
	}
	st, err := os.Stat(req.ImagePath)
	if err != nil || st.IsDir() || st.Size() > maxVisionMB*1024*1024 {
		return false, "", ""
	}
	u, mt, err := readAsDataURL(req.ImagePath)
	if err != nil {
		return false, "", ""
	}
	return true, u, mt
}

func readAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
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
