// Package docintel wraps the Azure Document Intelligence REST API for
// scoresheet OCR. It returns both the flat content lines that the line-based
// extraction strategies consume and per-line tokens with bounding polygons
// for the spatial strategy.
package docintel

import "github.com/kyletan/ippt-tracker/internal/extract"

// Result is the analyzed scoresheet in the shapes the extraction strategies
// consume.
type Result struct {
	Lines      []string
	Tokens     []extract.Token
	Confidence float32 // mean word confidence, 0 when the service omits it
	Pages      int
	Raw        []byte // full analyzeResult payload, persisted for audit
}

// analyze operation envelope (api-version 2024-11-30).

type analyzeOperation struct {
	Status        string         `json:"status"` // notStarted | running | succeeded | failed
	Error         *apiError      `json:"error,omitempty"`
	AnalyzeResult *analyzeResult `json:"analyzeResult,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) String() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Message
}

type analyzeResult struct {
	Content string `json:"content"`
	Pages   []page `json:"pages"`
}

type page struct {
	PageNumber int    `json:"pageNumber"`
	Lines      []line `json:"lines"`
	Words      []word `json:"words"`
}

// Polygon is 8 floats: x1,y1,...,x4,y4 clockwise from top-left.
type line struct {
	Content string    `json:"content"`
	Polygon []float64 `json:"polygon"`
}

type word struct {
	Content    string    `json:"content"`
	Polygon    []float64 `json:"polygon"`
	Confidence float64   `json:"confidence"`
}

func polygonToBBox(poly []float64) []extract.Point {
	if len(poly) < 2 || len(poly)%2 != 0 {
		return nil
	}
	pts := make([]extract.Point, 0, len(poly)/2)
	for i := 0; i+1 < len(poly); i += 2 {
		pts = append(pts, extract.Point{X: poly[i], Y: poly[i+1]})
	}
	return pts
}
