// Package resume turns a resume PDF into a structured record: full text,
// canonical sections, and contact fields. The pipeline is a set of stateless
// pure functions over immutable inputs; every heuristic step degrades to a
// fallback value instead of failing, and only an undecodable PDF raises.
package resume

import "errors"

// Record is the structured result of one extraction. It is created fresh per
// request and never mutated afterwards.
type Record struct {
	FullText string      `json:"full_text"`
	Sections *SectionMap `json:"sections"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Name     string      `json:"name"`
}

// Process runs the full pipeline on resume PDF bytes: text extraction,
// section segmentation and field extraction. Failures come back wrapped in
// *ProcessingError; errors.As still reaches the underlying *ExtractionError
// for undecodable input.
func Process(data []byte) (*Record, error) {
	if len(data) == 0 {
		return nil, &ProcessingError{Err: errors.New("no file content provided")}
	}

	fullText, err := ExtractText(data)
	if err != nil {
		return nil, &ProcessingError{Err: err}
	}

	return assemble(fullText), nil
}

func assemble(fullText string) *Record {
	sections := Segment(fullText)
	return &Record{
		FullText: fullText,
		Sections: sections,
		Email:    ExtractEmail(fullText),
		Phone:    ExtractPhone(fullText),
		Name:     ExtractName(fullText, sections),
	}
}
