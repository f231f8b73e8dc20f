package greeting

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/wellwish/wellwish/internal/core"
	"github.com/wellwish/wellwish/internal/testutil"
)

func testComposer(seed int64) *Composer {
	return NewComposer(rand.New(rand.NewSource(seed)))
}

// TestCompose_NoLeftoverPlaceholders draws drafts for every category until
// both alternatives of each template set have been seen, and checks no
// literal {token} survives substitution.
func TestCompose_NoLeftoverPlaceholders(t *testing.T) {
	analyses := []core.AnalysisResult{
		{}, // all fallbacks
		{ImportantMatters: []string{"记得下个月的项目评审会议一定要提前准备材料"}},
	}

	for _, category := range core.AllRelations {
		contact := testutil.ContactFixture("王", category)
		composer := testComposer(1)

		for _, a := range analyses {
			// Enough draws to cover every template in the set
			for i := 0; i < 20; i++ {
				text, err := composer.Compose(contact, a)
				if err != nil {
					t.Fatalf("Compose(%v) error = %v", category, err)
				}
				if strings.ContainsAny(text, "{}") {
					t.Errorf("Compose(%v) left a placeholder: %q", category, text)
				}
				if text == "" {
					t.Errorf("Compose(%v) returned empty text", category)
				}
			}
		}
	}
}

// Every placeholder appearing in the template tables must be covered by
// the substitution vocabulary, or a draft could leak a raw token.
func TestTemplates_PlaceholderVocabulary(t *testing.T) {
	known := map[string]bool{"title": true, "name": true}
	for _, p := range topicPlaceholders {
		known[p] = true
	}
	for p := range fixedFallbacks {
		known[p] = true
	}

	for category, set := range templates {
		if len(set) == 0 {
			t.Errorf("category %v has an empty template set", category)
		}
		for _, tpl := range set {
			for _, token := range placeholderPattern.FindAllString(tpl, -1) {
				name := strings.Trim(token, "{}")
				if !known[name] {
					t.Errorf("template for %v uses unknown placeholder %q", category, token)
				}
			}
		}
	}
}

func TestTemplatesFor_FallsBackToOther(t *testing.T) {
	got := TemplatesFor(core.RelationCategory("imaginary"))
	if len(got) == 0 {
		t.Fatal("TemplatesFor(unknown) returned empty set")
	}

	want := TemplatesFor(core.RelationOther)
	if got[0] != want[0] {
		t.Error("TemplatesFor(unknown) should fall back to the Other set")
	}
}

func TestCompose_TitleSubstitution(t *testing.T) {
	contact := testutil.ContactFixture("王", core.RelationTeacher)

	text, err := testComposer(7).Compose(contact, core.AnalysisResult{})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if !strings.Contains(text, "王老师") {
		t.Errorf("teacher draft %q should address 王老师", text)
	}
}

func TestCompose_TopicFromImportantMatter(t *testing.T) {
	contact := testutil.ContactFixture("小明", core.RelationFriend)
	long := "记得我们说好要一起去爬山的那个周末计划安排"
	a := core.AnalysisResult{ImportantMatters: []string{long}}

	// Both friend templates carry a topic-like placeholder, so any draw
	// must quote the truncated matter.
	text, err := testComposer(3).Compose(contact, a)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	wantTopic := string([]rune(long)[:20]) + "..."
	if !strings.Contains(text, wantTopic) {
		t.Errorf("draft %q should contain truncated matter %q", text, wantTopic)
	}
}

func TestCompose_ShortMatterKeepsEllipsis(t *testing.T) {
	contact := testutil.ContactFixture("小明", core.RelationFriend)
	a := core.AnalysisResult{ImportantMatters: []string{"记得爬山"}}

	text, err := testComposer(3).Compose(contact, a)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if !strings.Contains(text, "记得爬山...") {
		t.Errorf("draft %q should quote the full short matter with ellipsis", text)
	}
}

func TestCompose_FallbacksProduceText(t *testing.T) {
	// Empty analysis must still resolve everything via fallback values
	for _, category := range core.AllRelations {
		contact := testutil.ContactFixture("小李", category)

		text, err := testComposer(11).Compose(contact, core.AnalysisResult{})
		if err != nil {
			t.Fatalf("Compose(%v) error = %v", category, err)
		}
		if strings.TrimSpace(text) == "" {
			t.Errorf("Compose(%v) returned blank draft", category)
		}
	}
}

func TestCompose_DifferentDrawsPossible(t *testing.T) {
	contact := testutil.ContactFixture("小李", core.RelationColleague)
	composer := testComposer(1)

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		text, err := composer.Compose(contact, core.AnalysisResult{})
		if err != nil {
			t.Fatalf("Compose() error = %v", err)
		}
		seen[text] = true
	}

	if len(seen) < 2 {
		t.Error("30 draws produced a single draft; template selection looks stuck")
	}
}
