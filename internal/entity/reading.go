package entity

import "encoding/json"

// Reading is a single phonetic transcription of a character in one
// language variety. Annotation is optional example-usage text; the
// queried character arrives already wrapped in asterisks (e.g. "意*思*")
// and is passed through verbatim.
type Reading struct {
	Transcription string // 讀音
	Annotation    string // 註釋
}

// ReadingCell is every known reading for one (language, character)
// pair. The internal representation is uniform; the shape-shifting the
// frontend branches on happens only in MarshalJSON.
type ReadingCell []Reading

// MarshalJSON collapses the cell at the serialization boundary:
//
//	no readings                      -> ""
//	one reading, no annotation       -> "si5"
//	anything else                    -> [["sɿ1","*思*想"],["sɿ5"]]
//
// Each pair carries the annotation only when present, so clients must
// branch on JSON type, not on a separate flag.
func (c ReadingCell) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return json.Marshal("")
	}
	if len(c) == 1 && c[0].Annotation == "" {
		return json.Marshal(c[0].Transcription)
	}
	pairs := make([][]string, 0, len(c))
	for _, r := range c {
		if r.Annotation == "" {
			pairs = append(pairs, []string{r.Transcription})
		} else {
			pairs = append(pairs, []string{r.Transcription, r.Annotation})
		}
	}
	return json.Marshal(pairs)
}
