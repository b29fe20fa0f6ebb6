package resume

import "strings"

// DefaultTemplate 是新建文档默认使用的模板标识。
const DefaultTemplate = "azurill"

var sectionNamesZH = map[string]string{
	"summary":        "个人简介",
	"experience":     "工作经历",
	"education":      "教育背景",
	"skills":         "技能",
	"languages":      "语言能力",
	"projects":       "项目经验",
	"certifications": "证书",
	"awards":         "奖项",
	"publications":   "发表作品",
	"volunteer":      "志愿活动",
	"interests":      "兴趣爱好",
	"references":     "推荐人",
	"profiles":       "社交资料",
}

var sectionNamesEN = map[string]string{
	"summary":        "Summary",
	"experience":     "Experience",
	"education":      "Education",
	"skills":         "Skills",
	"languages":      "Languages",
	"projects":       "Projects",
	"certifications": "Certifications",
	"awards":         "Awards",
	"publications":   "Publications",
	"volunteer":      "Volunteering",
	"interests":      "Interests",
	"references":     "References",
	"profiles":       "Profiles",
}

// IsChineseLocale 判断 locale 是否为中文（zh、zh-CN、zh-TW 等）。
func IsChineseLocale(locale string) bool {
	return strings.HasPrefix(locale, "zh")
}

// DefaultDocument 返回一份新文档的初始内容。分区名称随 locale 本地化，
// 结构与编辑器首次打开时的空白简历一致。
func DefaultDocument(locale string) Document {
	names := sectionNamesEN
	if IsChineseLocale(locale) {
		names = sectionNamesZH
	}

	newSection := func(key string) Section {
		return Section{
			Name:          names[key],
			Columns:       1,
			SeparateLinks: true,
			Visible:       true,
			ID:            key,
		}
	}

	listSection := func(key string) Section {
		s := newSection(key)
		s.Items = []Item{}
		return s
	}

	return Document{
		Basics: Basics{
			CustomFields: []CustomField{},
			Picture: Picture{
				Size:        64,
				AspectRatio: 1,
				Effects:     PictureEffects{},
			},
		},
		Sections: Sections{
			Summary:        newSection("summary"),
			Experience:     listSection("experience"),
			Education:      listSection("education"),
			Skills:         listSection("skills"),
			Languages:      listSection("languages"),
			Projects:       listSection("projects"),
			Certifications: listSection("certifications"),
			Awards:         listSection("awards"),
			Publications:   listSection("publications"),
			Volunteer:      listSection("volunteer"),
			Interests:      listSection("interests"),
			References:     listSection("references"),
			Profiles:       listSection("profiles"),
			Custom:         map[string]Section{},
		},
		Metadata: Metadata{
			Template: DefaultTemplate,
			Layout: Layout{
				{
					{"basics", "profiles", "summary", "experience"},
					{"skills", "education", "projects", "certifications"},
				},
			},
			CSS: CSS{},
			Page: Page{
				Margin: 18,
				Format: "a4",
				Options: PageOptions{
					BreakLine:   true,
					PageNumbers: true,
				},
			},
			Theme: Theme{
				Background: "#ffffff",
				Text:       "#000000",
				Primary:    "#dc2626",
			},
			Typography: Typography{
				Font: Font{
					Family:   "IBM Plex Serif",
					Subset:   "latin",
					Variants: []string{"400", "600"},
					Size:     14,
				},
				LineHeight:     1.5,
				UnderlineLinks: true,
			},
		},
	}
}
