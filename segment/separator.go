package segment

import "github.com/npillmayer/parasplit"

// Separators returns the text between consecutive spans, i.e. for n spans
// n-1 strings. For scripts without spaces between sentences the separators
// are empty strings.
func Separators(text string, spans []parasplit.Span, noInterSentenceSpaces bool) []string {
	if len(spans) < 2 {
		return []string{}
	}
	seps := make([]string, len(spans)-1)
	if noInterSentenceSpaces {
		return seps
	}
	for i := 1; i < len(spans); i++ {
		seps[i-1] = text[spans[i-1].To:spans[i].From]
	}
	return seps
}

// TrailingSpaces returns the whitespace following each span, i.e. for n
// spans n strings. The last one is the whitespace at the end of text.
// For scripts without spaces between sentences all of them are empty strings.
func TrailingSpaces(text string, spans []parasplit.Span, noInterSentenceSpaces bool) []string {
	trailing := make([]string, len(spans))
	if noInterSentenceSpaces {
		return trailing
	}
	for i, span := range spans {
		end := len(text)
		if i+1 < len(spans) {
			end = spans[i+1].From
		}
		trailing[i] = text[span.To:end]
	}
	return trailing
}
