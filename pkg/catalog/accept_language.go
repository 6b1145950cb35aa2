package catalog

import "golang.org/x/text/language"

// maxAcceptLanguageLength prevents abuse through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchLanguage parses an Accept-Language header and returns the most
// applicable language from the available languages list. Quality values
// (q=0.9) are honored by the matcher. If the header is empty, malformed, or
// nothing matches, the first available language is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func MatchLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	supported := make([]language.Tag, 0, len(available))
	valid := make([]string, 0, len(available))
	for _, avail := range available {
		tag, err := language.Parse(avail)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		valid = append(valid, avail)
	}
	if len(supported) == 0 {
		return available[0]
	}

	wanted, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(wanted) == 0 {
		return available[0]
	}

	_, index, conf := language.NewMatcher(supported).Match(wanted...)
	if conf == language.No {
		return available[0]
	}
	return valid[index]
}
