package valueobject

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// RecommendationCode is the coded action recommended for a job's risk assessment.
type RecommendationCode struct {
	value string
}

var (
	RecommendationNoAction        = RecommendationCode{value: "NO_ACTION"}
	RecommendationManualReview    = RecommendationCode{value: "MANUAL_REVIEW"}
	RecommendationMeasureRequired = RecommendationCode{value: "MEASURE_REQUIRED"}
)

// supportedLocales are the languages recommendation texts are maintained in.
// The first entry is the fallback.
var supportedLocales = []language.Tag{language.English, language.German}

var localeMatcher = language.NewMatcher(supportedLocales)

var recommendationTexts = mustBuildCatalog(map[language.Tag]map[string]string{
	language.English: {
		"NO_ACTION":        "No action required, keep monitoring.",
		"MANUAL_REVIEW":    "Manual review by a grid engineer recommended.",
		"MEASURE_REQUIRED": "Action required: schedule maintenance or grid reinforcement promptly.",
	},
	language.German: {
		"NO_ACTION":        "Keine Maßnahme nötig, weiter beobachten.",
		"MANUAL_REVIEW":    "Manuelle Prüfung durch Netzingenieur empfohlen.",
		"MEASURE_REQUIRED": "Maßnahme erforderlich: Wartung oder Netzverstärkung zeitnah einplanen.",
	},
})

func mustBuildCatalog(texts map[language.Tag]map[string]string) *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(supportedLocales[0]))
	for tag, entries := range texts {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("failed to register recommendation text %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// MatchLocale maps a BCP 47 locale string onto the closest supported text locale.
// Empty or unparseable input yields English.
func MatchLocale(s string) language.Tag {
	if strings.TrimSpace(s) == "" {
		return supportedLocales[0]
	}
	tag, err := language.Parse(s)
	if err != nil {
		return supportedLocales[0]
	}
	_, idx, _ := localeMatcher.Match(tag)
	return supportedLocales[idx]
}

// Text returns the fixed human-readable message for the code in the given locale.
func (c RecommendationCode) Text(locale language.Tag) string {
	if c.IsZero() {
		return ""
	}
	p := message.NewPrinter(MatchLocale(locale.String()), message.Catalog(recommendationTexts))
	return p.Sprintf(c.value)
}

// String returns the string representation.
func (c RecommendationCode) String() string {
	return c.value
}

// IsZero returns true if the code has not been set.
func (c RecommendationCode) IsZero() bool {
	return c.value == ""
}

// Equal checks equality with another RecommendationCode.
func (c RecommendationCode) Equal(other RecommendationCode) bool {
	return c.value == other.value
}
