package greeting

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/wellwish/wellwish/internal/core"
	"github.com/wellwish/wellwish/internal/relation"
)

// topicRunes caps how much of an important matter is quoted in a draft.
const topicRunes = 20

// topicPlaceholders are all filled from the first important matter when
// the analysis found one.
var topicPlaceholders = []string{"topic", "project", "work", "activity", "memory"}

// topicFallbacks fill topic-like placeholders when the chat history gave
// the analyzer nothing urgent to quote.
var topicFallbacks = map[string]string{
	"topic":    "工作和生活",
	"project":  "合作项目",
	"work":     "工作",
	"activity": "活动",
	"memory":   "往事",
}

// fixedFallbacks fill the remaining vocabulary; these are not derived from
// chat analysis.
var fixedFallbacks = map[string]string{
	"achievement": "工作中",
	"difficulty":  "技术",
	"progress":    "显著进步",
	"experience":  "旅行",
	"moment":      "节日",
	"event":       "家庭聚会",
	"reunion":     "同学聚会",
}

var placeholderPattern = regexp.MustCompile(`\{[a-z]+\}`)

// Composer turns a contact plus chat analysis into a greeting draft.
// Template choice is the only nondeterminism; the rand source is
// injectable so tests can pin it.
type Composer struct {
	rng *rand.Rand
}

// NewComposer creates a composer drawing templates from rng. A nil rng
// gets an unseeded source.
func NewComposer(rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Composer{rng: rng}
}

// Compose drafts a greeting for the contact. Every placeholder in the
// chosen template is substituted; a leftover {token} means the template
// table and the fallback vocabulary drifted apart, which is a defect and
// surfaces as ErrUnresolvedPlaceholder rather than malformed text.
func (c *Composer) Compose(contact *core.Contact, a core.AnalysisResult) (string, error) {
	title := relation.TitleFor(contact.Relation, contact.Name)

	candidates := TemplatesFor(contact.Relation)
	text := candidates[c.rng.Intn(len(candidates))]

	text = strings.ReplaceAll(text, "{title}", title)
	text = strings.ReplaceAll(text, "{name}", contact.Name)

	if len(a.ImportantMatters) > 0 {
		topic := truncateRunes(a.ImportantMatters[0], topicRunes) + "..."
		for _, p := range topicPlaceholders {
			text = strings.ReplaceAll(text, "{"+p+"}", topic)
		}
	} else {
		for _, p := range topicPlaceholders {
			text = strings.ReplaceAll(text, "{"+p+"}", topicFallbacks[p])
		}
	}

	for p, v := range fixedFallbacks {
		text = strings.ReplaceAll(text, "{"+p+"}", v)
	}

	if leftover := placeholderPattern.FindString(text); leftover != "" {
		return "", fmt.Errorf("%w: %s", core.ErrUnresolvedPlaceholder, leftover)
	}

	return text, nil
}

// truncateRunes cuts s to at most max runes. Rune-based so CJK text is
// never split mid-character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
