// Package greeting composes holiday greeting drafts and drives the human
// approval cycle around them.
package greeting

import (
	"github.com/wellwish/wellwish/internal/core"
)

// Greeting templates per relationship category. Placeholders use {name}
// style tokens from a fixed vocabulary; the composer guarantees every
// token is resolved before a draft leaves this package.
//
// Loaded once at startup, never mutated.
var templates = map[core.RelationCategory][]string{
	core.RelationTeacher: {
		"{title}您好！值此新春佳节之际，我想向您致以最诚挚的问候！感谢您一直以来对我的谆谆教导和关怀，您的言传身教让我受益匪浅。\n\n今年我们在{topic}方面有过很多交流，您的指导让我在{achievement}上取得了进步。新的一年里，我会继续努力学习，不辜负您的期望。\n\n祝您新年快乐，身体健康，工作顺利，阖家幸福！",
		"尊敬的{title}：\n\n新年大吉！感谢您这一年来对我的关心和帮助。记得我们在{topic}上的深入交流，您的见解让我茅塞顿开。\n\n新的一年，希望能继续得到您的指导。祝您新春快乐，万事如意！",
	},
	core.RelationColleague: {
		"{name}您好！新年吉祥！过去的一年里，我们在{project}项目上合作愉快，感谢您的支持和配合。\n\n记得我们一起攻克{difficulty}难关的日子，您的专业能力让我钦佩。新的一年，希望我们继续携手共进，取得更大的成绩。\n\n祝您新年快乐，工作顺利，身体健康！",
		"{name}：\n\n新年快乐！感谢这一年来的互帮互助。我们在{topic}上的交流让我收获良多。新的一年，愿我们的合作更加愉快！\n\n祝您新年大吉，万事如意！",
	},
	core.RelationSuperior: {
		"{title}您好！新春快乐！感谢您一直以来对我的信任和培养，您的领导和支持是我前进的动力。\n\n过去一年，在您的指导下，我在{work}方面取得了{progress}。新的一年，我会更加努力，为团队做出更大的贡献。\n\n祝您新年快乐，事业蒸蒸日上，阖家幸福！",
		"尊敬的{title}：\n\n值此新春佳节，祝您新年大吉！感谢您这一年来的关怀和提携。我们在{topic}上的交流让我受益匪浅。\n\n新的一年，我会加倍努力工作，不辜负您的期望。祝您万事如意，身体健康！",
	},
	core.RelationFriend: {
		"{name}！新年快乐！好久不见，甚是想念！今年我们在{activity}玩得很开心，感谢有你这样的朋友。\n\n记得我们一起{experience}的时光，那是我今年最美好的回忆之一。新的一年，希望我们能常聚常聊，友谊长存！\n\n祝你新年快乐，万事顺遂，心想事成！",
		"{name}：\n\n新年快乐！感谢这一年来的陪伴和支持。我们在{topic}上的交流让我很开心。\n\n新的一年，愿我们的友谊地久天长！祝你新年大吉，一切顺利！",
	},
	core.RelationFamily: {
		"{name}，新年大吉！感谢您一直以来的付出和关爱，您的支持是我最坚强的后盾。\n\n过去一年，我们一起度过了{moment}，这些时光让我倍感温馨。新的一年，希望我们能有更多的时间在一起，共享天伦之乐。\n\n祝您新年快乐，身体健康，阖家幸福！",
		"{name}：\n\n新年快乐！感谢您的养育之恩。今年我们在{event}方面的交流让我更加了解您的想法。\n\n新的一年，我会更加孝顺您。祝您新年吉祥，万事如意！",
	},
	core.RelationClassmate: {
		"{name}，新年快乐！毕业这么多年，我们的友谊依然如初。感谢你一直以来的陪伴。\n\n今年我们在{reunion}上见面，聊起{memory}，仿佛回到了学生时代。新的一年，希望我们能保持联系，常聚常新！\n\n祝你新年快乐，事业有成，阖家幸福！",
		"{name}：\n\n新年快乐！感谢同学情谊。我们在{topic}上的交流让我回忆起美好的校园时光。\n\n新的一年，愿我们的友谊地久天长！祝你新年大吉，一切顺利！",
	},
	core.RelationOther: {
		"{name}您好！新春快乐！感谢这一年来的交流和支持。\n\n新的一年，希望我们能有更多的合作机会。祝您万事如意，身体健康！",
		"{name}：\n\n新年快乐！新年大吉！感谢您的关注和支持。\n\n新的一年，祝您事业兴旺，阖家幸福！",
	},
}

// TemplatesFor returns the template set for a category. Categories without
// templates of their own fall back to the generic set, so the result is
// always non-empty.
func TemplatesFor(category core.RelationCategory) []string {
	if ts, ok := templates[category]; ok && len(ts) > 0 {
		return ts
	}
	return templates[core.RelationOther]
}

// Categories returns every category that has its own template set.
func Categories() []core.RelationCategory {
	cats := make([]core.RelationCategory, 0, len(templates))
	for _, c := range core.AllRelations {
		if _, ok := templates[c]; ok {
			cats = append(cats, c)
		}
	}
	return cats
}
