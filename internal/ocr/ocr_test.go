package ocr

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	stdout map[string]string // keyed by last arg ("" for plain, "tsv" for tsv mode)
	err    error
	calls  int
}

func (s *stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	s.calls++
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	key := ""
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		key = "tsv"
	}
	return []byte(s.stdout[key]), nil, nil
}

const sheetText = "1\nID001\nPTE JOHN TAN\n35\n40\n9:30\n2\nID002\nPTE MARCUS LIM\n3\nID003\nCPL WEI JIE NG\n4\n5\n"

func newStubExtractor(cfg Config, r Runner) *Extractor {
	e := NewExtractor(cfg, slog.New(slog.DiscardHandler))
	e.runner = r
	return e
}

func TestExtractImageSplitsLines(t *testing.T) {
	e := newStubExtractor(Config{}, &stubRunner{stdout: map[string]string{"": sheetText}})

	res, err := e.Extract(context.Background(), "sheet.jpg")
	require.NoError(t, err)
	require.Equal(t, "image-ocr", res.Method)
	require.Equal(t, "1", res.Lines[0])
	require.Equal(t, "PTE JOHN TAN", res.Lines[2])
	// run-time, serials and rank markers all present in the text
	require.Greater(t, res.Confidence, float32(0.5))
}

func TestExtractRejectsNonImage(t *testing.T) {
	e := newStubExtractor(Config{}, &stubRunner{})
	_, err := e.Extract(context.Background(), "batch.pdf")
	require.Error(t, err)
}

func TestExtractTesseractFailure(t *testing.T) {
	e := newStubExtractor(Config{}, &stubRunner{err: context.DeadlineExceeded})
	_, err := e.Extract(context.Background(), "sheet.png")
	require.ErrorContains(t, err, "tesseract")
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n"

func TestTSVConfidenceBlend(t *testing.T) {
	tsv := tsvHeader +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tPTE\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\tTAN\n" +
		"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\t-1\t\n"
	r := &stubRunner{stdout: map[string]string{"": sheetText, "tsv": tsv}}
	e := newStubExtractor(Config{EnableTSVConfidence: true}, r)

	res, err := e.Extract(context.Background(), "sheet.jpg")
	require.NoError(t, err)
	require.Equal(t, 2, r.calls)
	// engine mean 0.8, heuristic 0.7 -> 0.7*0.8 + 0.3*0.7
	require.InDelta(t, 0.77, res.Confidence, 1e-3)
}

func TestTSVConfidenceReadsConfColumn(t *testing.T) {
	// The recognized words are the rep counts themselves; the mean must come
	// from the conf column, not the text column.
	tsv := tsvHeader +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\t35\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t50\t40\n"
	e := newStubExtractor(Config{EnableTSVConfidence: true}, &stubRunner{stdout: map[string]string{"tsv": tsv}})

	c, _, err := e.tesseractTSVConfidence(context.Background(), "sheet.jpg")
	require.NoError(t, err)
	require.InDelta(t, 0.70, c, 1e-6)
}

func TestTSVConfidenceAlphabeticWords(t *testing.T) {
	tsv := tsvHeader +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tPTE\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\tTAN\n"
	e := newStubExtractor(Config{EnableTSVConfidence: true}, &stubRunner{stdout: map[string]string{"tsv": tsv}})

	c, _, err := e.tesseractTSVConfidence(context.Background(), "sheet.jpg")
	require.NoError(t, err)
	require.InDelta(t, 0.80, c, 1e-6)
}

func TestHeuristicConfidenceGarbage(t *testing.T) {
	require.Less(t, heuristicConfidence("%%%%"), float32(0.4))
}
