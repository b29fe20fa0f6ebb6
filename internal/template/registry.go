// Package template 管理内置简历模板：标识注册、按语言加载模板内容，
// 以及把模板内容合并进用户文档的协调逻辑。
package template

import (
	"strings"

	"cnResume/internal/resume"
)

// List 是内置模板标识的完整集合，按英文环境的默认顺序排列。
// metadata.template 必须始终取自该集合。
var List = []string{
	"azurill",
	"bronzor",
	"chikorita",
	"ditto",
	"gengar",
	"glalie",
	"kakuna",
	"leafish",
	"nosepass",
	"onyx",
	"pikachu",
	"rhyhorn",
}

// 中文环境下的推荐顺序：版式更适合中文内容的模板靠前。
var chinesePreferred = []string{
	"chikorita",
	"ditto",
	"leafish",
	"nosepass",
	"bronzor",
	"azurill",
	"gengar",
	"glalie",
	"kakuna",
	"onyx",
	"pikachu",
	"rhyhorn",
}

var chineseNames = map[string]string{
	"chikorita": "简洁风格",
	"ditto":     "现代风格",
	"leafish":   "清新风格",
	"nosepass":  "经典风格",
	"bronzor":   "专业风格",
	"azurill":   "创意风格",
	"gengar":    "技术风格",
	"glalie":    "学术风格",
	"kakuna":    "传统风格",
	"onyx":      "商务风格",
	"pikachu":   "活泼风格",
	"rhyhorn":   "稳重风格",
}

// IsValid 判断标识是否属于注册的模板集合。
func IsValid(id string) bool {
	for _, t := range List {
		if t == id {
			return true
		}
	}
	return false
}

// Filtered 返回按 locale 偏好排序的模板标识列表。
// 中文用户优先看到适合中文排版的模板，其余语言保持默认顺序。
func Filtered(locale string) []string {
	if resume.IsChineseLocale(locale) {
		out := make([]string, len(chinesePreferred))
		copy(out, chinesePreferred)
		return out
	}
	out := make([]string, len(List))
	copy(out, List)
	return out
}

// DisplayName 返回模板的展示名称，中文环境使用中文名称，
// 其余环境首字母大写。
func DisplayName(id, locale string) string {
	if resume.IsChineseLocale(locale) {
		if name, ok := chineseNames[id]; ok {
			return name
		}
		return id
	}
	if id == "" {
		return id
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
