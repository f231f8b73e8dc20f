package relation

import (
	"testing"

	"github.com/wellwish/wellwish/internal/core"
)

func contactWithNotes(notes string) *core.Contact {
	return &core.Contact{Name: "测试", Notes: notes}
}

func TestClassify_ExplicitRelationWins(t *testing.T) {
	// Notes scream teacher, but the explicit category must pass through
	contact := &core.Contact{
		Name:     "小张",
		Relation: core.RelationFriend,
		Notes:    "我的老师和导师",
	}

	if got := Classify(contact); got != core.RelationFriend {
		t.Errorf("Classify() = %v, want %v", got, core.RelationFriend)
	}
}

func TestClassify_InvalidExplicitRelationFallsThrough(t *testing.T) {
	contact := &core.Contact{
		Name:     "小张",
		Relation: "soulmate",
		Notes:    "大学同学",
	}

	if got := Classify(contact); got != core.RelationClassmate {
		t.Errorf("Classify() = %v, want %v", got, core.RelationClassmate)
	}
}

func TestClassify_ByNotes(t *testing.T) {
	tests := []struct {
		notes string
		want  core.RelationCategory
	}{
		{"我的老师", core.RelationTeacher},
		{"博士导师", core.RelationTeacher},
		{"my mentor from college", core.RelationTeacher},
		{"同事，一起做项目", core.RelationColleague},
		{"coworker on the platform team", core.RelationColleague},
		{"部门领导", core.RelationSuperior},
		{"my boss", core.RelationSuperior},
		{"多年好友", core.RelationFriend},
		{"old friend", core.RelationFriend},
		{"家人", core.RelationFamily},
		{"父母", core.RelationFamily},
		{"高中同学", core.RelationClassmate},
		{"校友", core.RelationClassmate},
		{"", core.RelationOther},
		{"快递员", core.RelationOther},
	}

	for _, tt := range tests {
		if got := Classify(contactWithNotes(tt.notes)); got != tt.want {
			t.Errorf("Classify(notes=%q) = %v, want %v", tt.notes, got, tt.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify(contactWithNotes("My TEACHER")); got != core.RelationTeacher {
		t.Errorf("Classify() = %v, want %v", got, core.RelationTeacher)
	}
}

// TestClassify_PriorityOrder locks in the fixed check sequence: teacher
// beats colleague beats superior, and so on down the table.
func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  core.RelationCategory
	}{
		{"teacher beats colleague", "既是老师也是同事", core.RelationTeacher},
		{"colleague beats superior", "同事，也是我的领导", core.RelationColleague},
		{"superior beats friend", "领导，处得像朋友", core.RelationSuperior},
		{"friend beats family", "朋友，亲如家人", core.RelationFriend},
		{"family beats classmate", "家人，也是同学", core.RelationFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(contactWithNotes(tt.notes)); got != tt.want {
				t.Errorf("Classify(notes=%q) = %v, want %v", tt.notes, got, tt.want)
			}
		})
	}
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		category core.RelationCategory
		name     string
		want     string
	}{
		{core.RelationTeacher, "王", "王老师"},
		{core.RelationTeacher, "王老师", "王老师"}, // already honored
		{core.RelationSuperior, "李", "李总"},
		{core.RelationSuperior, "李总", "李总"},
		{core.RelationSuperior, "李经理", "李经理"},
		{core.RelationFamily, "妈妈", "妈妈"},
		{core.RelationFriend, "小明", "小明"},
		{core.RelationColleague, "小红", "小红"},
		{core.RelationClassmate, "小刚", "小刚"},
		{core.RelationOther, "陌生人", "陌生人"},
	}

	for _, tt := range tests {
		if got := TitleFor(tt.category, tt.name); got != tt.want {
			t.Errorf("TitleFor(%v, %q) = %q, want %q", tt.category, tt.name, got, tt.want)
		}
	}
}
