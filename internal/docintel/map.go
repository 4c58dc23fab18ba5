package docintel

import (
	"strings"

	"github.com/kyletan/ippt-tracker/internal/extract"
)

// mapResult converts the service layout into strategy inputs. Lines come from
// the per-page line objects when present; otherwise Content is split on
// newlines so line-offset strategies still have something to index into.
func mapResult(ar *analyzeResult) Result {
	var res Result
	res.Pages = len(ar.Pages)

	var confSum float64
	var confN int
	for _, p := range ar.Pages {
		for _, ln := range p.Lines {
			res.Lines = append(res.Lines, ln.Content)
			res.Tokens = append(res.Tokens, extract.Token{
				Text: ln.Content,
				BBox: polygonToBBox(ln.Polygon),
			})
		}
		for _, w := range p.Words {
			if w.Confidence > 0 {
				confSum += w.Confidence
				confN++
			}
		}
	}
	if len(res.Lines) == 0 && ar.Content != "" {
		res.Lines = strings.Split(ar.Content, "\n")
	}
	if confN > 0 {
		res.Confidence = float32(confSum / float64(confN))
	}
	return res
}
