// Package language guesses the language of incoming text.
package language

import (
	wlg "github.com/abadojack/whatlanggo"
)

// Undetermined is returned when the language cannot be reliably detected
const Undetermined = "und"

// Detect returns the ISO 639-1 code and confidence in [0,1] for text.
// Unreliable guesses return Undetermined and 0.
func Detect(text string) (code string, conf float64) {
	if len(text) == 0 {
		return Undetermined, 0
	}
	info := wlg.Detect(text)
	if !info.IsReliable() {
		return Undetermined, 0
	}
	iso6391 := info.Lang.Iso6391()
	if iso6391 == "" {
		return Undetermined, info.Confidence
	}
	return iso6391, info.Confidence
}

// SourceCode returns the detected code, or "" when it is undetermined
func SourceCode(text string) string {
	code, _ := Detect(text)
	if code == Undetermined {
		return ""
	}
	return code
}
