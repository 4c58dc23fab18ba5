package llm

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt composes the system message: what an IPPT scoresheet
// looks like and the strict output rules.
func BuildSystemPrompt(req ExtractRequest) string {
	maxRows := req.MaxSoldiers
	if maxRows <= 0 {
		maxRows = 10
	}
	parts := []string{
		"You are an IPPT (Individual Physical Proficiency Test) scoresheet parser. Return ONLY JSON that matches the provided JSON Schema.",
		"The sheet lists one soldier per row with: full name (may carry a rank prefix such as PTE, LCP, CPL, SGT, 2LT, LTA or CPT), sit-up repetitions, push-up repetitions, and a 2.4km run time formatted M:SS or MM:SS.",
		fmt.Sprintf("The form has at most %d rows. Extract every visible row; never invent rows.", maxRows),
		"Repetition counts are whole numbers between 0 and 200.",
		"Run times stay under 31 minutes; seconds are always two digits.",
		"Handle OCR artifacts intelligently: a glued rank and name should be split, an obviously misread digit corrected from context.",
		"Omit a field you cannot read rather than guessing wildly; the name is required.",
		"Set 'confidence' per row between 0 and 1 reflecting how certain you are about that row.",
		"Never output null.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the filename hint and, when no image is attached,
// the raw OCR text. Low-confidence OCR text is deliberately withheld when the
// model can see the image itself.
func BuildUserPrompt(req ExtractRequest, imageAttached bool) string {
	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	if imageAttached {
		b.WriteString("\nThe scanned scoresheet image is attached. Read the table row by row.\n")
		return b.String()
	}
	ocr := strings.TrimSpace(req.OCRText)
	b.WriteString("\nOCR text of the scoresheet (first ~4k chars):\n")
	if len(ocr) > 4000 {
		b.WriteString(ocr[:4000])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(ocr)
	}
	return b.String()
}
