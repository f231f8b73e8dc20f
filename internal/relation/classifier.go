// Package relation infers how a contact relates to the user.
//
// Classification is deliberately dumb: lower-cased substring matching over
// the contact's notes against fixed keyword tables, checked in a fixed
// priority order. An explicit relation on the contact always wins.
package relation

import (
	"strings"

	"github.com/wellwish/wellwish/internal/core"
)

// categoryKeywords pairs a category with the note substrings that imply it.
// The table order IS the priority order: the first category with a matching
// keyword wins, so notes mentioning both a teacher and a colleague resolve
// to teacher. Keyword sets carry the original Chinese terms plus English
// equivalents, since notes for these contacts are commonly mixed-language.
var categoryKeywords = []struct {
	category core.RelationCategory
	keywords []string
}{
	{core.RelationTeacher, []string{"老师", "导师", "teacher", "mentor"}},
	{core.RelationColleague, []string{"同事", "工作", "colleague", "coworker"}},
	{core.RelationSuperior, []string{"领导", "上司", "下属", "boss", "manager"}},
	{core.RelationFriend, []string{"朋友", "好友", "friend"}},
	{core.RelationFamily, []string{"家人", "父母", "兄弟姐妹", "配偶", "子女", "family", "parents"}},
	{core.RelationClassmate, []string{"同学", "校友", "classmate", "alumni"}},
}

// Classify determines a contact's relationship category. If the contact
// already carries a valid category it is returned unchanged (manual
// overrides win); otherwise the notes decide. Never fails: anything
// unrecognized is RelationOther.
func Classify(contact *core.Contact) core.RelationCategory {
	if contact.Relation != "" && contact.Relation.Valid() {
		return contact.Relation
	}

	notes := strings.ToLower(contact.Notes)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(notes, kw) {
				return entry.category
			}
		}
	}

	return core.RelationOther
}

// Honorific suffixes appended by TitleFor.
const (
	teacherHonorific  = "老师"
	superiorHonorific = "总"
	managerHonorific  = "经理"
)

// TitleFor derives the form of address for a contact. Teachers get the 老师
// honorific and superiors get 总, unless the name already carries one.
// Family members are addressed by name alone, as is everyone else.
func TitleFor(category core.RelationCategory, name string) string {
	switch category {
	case core.RelationTeacher:
		if strings.Contains(name, teacherHonorific) {
			return name
		}
		return name + teacherHonorific
	case core.RelationSuperior:
		if strings.Contains(name, superiorHonorific) || strings.Contains(name, managerHonorific) {
			return name
		}
		return name + superiorHonorific
	default:
		return name
	}
}
