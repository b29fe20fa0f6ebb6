package template

import "cnResume/internal/resume"

// Merge 把模板文档按字段合并进当前文档，返回新文档，两个输入都不被修改。
//
// replace 为 false 时是填充模式：只有当前值为空（空字符串、空序列）
// 的字段才采用模板值，已有内容一律保留。false 与 0 是合法取值，
// 不视为空。replace 为 true 时模板值覆盖当前值，但 metadata.template
// 作为身份字段始终保留当前值。
//
// 序列从不逐元素合并：填充模式下只有"当前序列为空且模板序列非空"
// 时整体采用模板序列。合并没有失败路径，残缺输入只会导致对应分支
// 不参与合并。
func Merge(current, tpl resume.Document, replace bool) resume.Document {
	out := current
	out.Basics = mergeBasics(current.Basics, tpl.Basics, replace)
	out.Sections = mergeSections(current.Sections, tpl.Sections, replace)
	out.Metadata = mergeMetadata(current.Metadata, tpl.Metadata, replace)
	return out
}

// Apply 是套用模板的提交入口：合并后只把 basics、sections 以及
// metadata 的 page、theme、layout、typography 四个子结构写回当前文档。
// metadata 的其余字段（template、css、notes）即使模板携带也不会传播，
// 需要这些字段的调用方必须自行显式赋值。
func Apply(current resume.Document, tpl *resume.Document, replace bool) resume.Document {
	if tpl == nil {
		return current
	}

	merged := Merge(current, *tpl, replace)

	out := current
	out.Basics = merged.Basics
	out.Sections = merged.Sections
	out.Metadata.Page = merged.Metadata.Page
	out.Metadata.Theme = merged.Metadata.Theme
	out.Metadata.Layout = merged.Metadata.Layout
	out.Metadata.Typography = merged.Metadata.Typography
	return out
}

func mergeBasics(cur, tpl resume.Basics, replace bool) resume.Basics {
	out := cur
	out.Name = mergeString(cur.Name, tpl.Name, replace)
	out.Headline = mergeString(cur.Headline, tpl.Headline, replace)
	out.Email = mergeString(cur.Email, tpl.Email, replace)
	out.Phone = mergeString(cur.Phone, tpl.Phone, replace)
	out.Location = mergeString(cur.Location, tpl.Location, replace)
	out.URL = mergeURL(cur.URL, tpl.URL, replace)
	out.CustomFields = mergeCustomFields(cur.CustomFields, tpl.CustomFields, replace)
	out.Picture = mergePicture(cur.Picture, tpl.Picture, replace)
	return out
}

func mergeURL(cur, tpl resume.URL, replace bool) resume.URL {
	out := cur
	out.Label = mergeString(cur.Label, tpl.Label, replace)
	out.Href = mergeString(cur.Href, tpl.Href, replace)
	return out
}

func mergeCustomFields(cur, tpl []resume.CustomField, replace bool) []resume.CustomField {
	if len(tpl) == 0 {
		return cur
	}
	if replace || len(cur) == 0 {
		out := make([]resume.CustomField, len(tpl))
		copy(out, tpl)
		return out
	}
	return cur
}

func mergePicture(cur, tpl resume.Picture, replace bool) resume.Picture {
	out := cur
	out.URL = mergeString(cur.URL, tpl.URL, replace)
	out.Size = mergeInt(cur.Size, tpl.Size, replace)
	out.AspectRatio = mergeFloat(cur.AspectRatio, tpl.AspectRatio, replace)
	out.BorderRadius = mergeInt(cur.BorderRadius, tpl.BorderRadius, replace)
	out.Effects = mergeEffects(cur.Effects, tpl.Effects, replace)
	return out
}

func mergeEffects(cur, tpl resume.PictureEffects, replace bool) resume.PictureEffects {
	if replace && tpl != (resume.PictureEffects{}) {
		return tpl
	}
	return cur
}

// isEmptySection 判断模板侧的分区是否完全缺省。
func isEmptySection(s resume.Section) bool {
	return s.Name == "" && s.ID == "" && s.Content == "" &&
		len(s.Items) == 0 && s.Columns == 0 && !s.Visible && !s.SeparateLinks
}

func mergeSections(cur, tpl resume.Sections, replace bool) resume.Sections {
	out := cur
	out.Summary = mergeSection(cur.Summary, tpl.Summary, replace)
	out.Experience = mergeSection(cur.Experience, tpl.Experience, replace)
	out.Education = mergeSection(cur.Education, tpl.Education, replace)
	out.Skills = mergeSection(cur.Skills, tpl.Skills, replace)
	out.Languages = mergeSection(cur.Languages, tpl.Languages, replace)
	out.Projects = mergeSection(cur.Projects, tpl.Projects, replace)
	out.Certifications = mergeSection(cur.Certifications, tpl.Certifications, replace)
	out.Awards = mergeSection(cur.Awards, tpl.Awards, replace)
	out.Publications = mergeSection(cur.Publications, tpl.Publications, replace)
	out.Volunteer = mergeSection(cur.Volunteer, tpl.Volunteer, replace)
	out.Interests = mergeSection(cur.Interests, tpl.Interests, replace)
	out.References = mergeSection(cur.References, tpl.References, replace)
	out.Profiles = mergeSection(cur.Profiles, tpl.Profiles, replace)
	out.Custom = mergeCustom(cur.Custom, tpl.Custom, replace)
	return out
}

func mergeSection(cur, tpl resume.Section, replace bool) resume.Section {
	// 模板未携带该分区时整体跳过，避免替换模式把开关字段清零。
	if isEmptySection(tpl) {
		return cur
	}

	out := cur
	out.Name = mergeString(cur.Name, tpl.Name, replace)
	out.Columns = mergeInt(cur.Columns, tpl.Columns, replace)
	out.SeparateLinks = mergeBool(cur.SeparateLinks, tpl.SeparateLinks, replace)
	out.Visible = mergeBool(cur.Visible, tpl.Visible, replace)
	out.ID = mergeString(cur.ID, tpl.ID, replace)
	out.Content = mergeString(cur.Content, tpl.Content, replace)
	out.Items = mergeItems(cur.Items, tpl.Items, replace)
	return out
}

// mergeCustom 对自定义分区按 key 合并：双方都有的 key 递归合并，
// 仅模板有的 key 直接纳入，仅当前有的 key 原样保留。
func mergeCustom(cur, tpl map[string]resume.Section, replace bool) map[string]resume.Section {
	if len(tpl) == 0 {
		return cur
	}

	out := make(map[string]resume.Section, len(cur)+len(tpl))
	for k, v := range cur {
		out[k] = v
	}
	for k, v := range tpl {
		if existing, ok := out[k]; ok {
			out[k] = mergeSection(existing, v, replace)
			continue
		}
		out[k] = v
	}
	return out
}

// mergeMetadata 合并文档级设置。Template 是身份字段，两种模式下都
// 保留当前值，模板携带的 template 标识从不生效。
func mergeMetadata(cur, tpl resume.Metadata, replace bool) resume.Metadata {
	out := cur
	out.Layout = mergeLayout(cur.Layout, tpl.Layout, replace)
	out.CSS = mergeCSS(cur.CSS, tpl.CSS, replace)
	out.Page = mergePage(cur.Page, tpl.Page, replace)
	out.Theme = mergeTheme(cur.Theme, tpl.Theme, replace)
	out.Typography = mergeTypography(cur.Typography, tpl.Typography, replace)
	out.Notes = mergeString(cur.Notes, tpl.Notes, replace)
	return out
}

func mergeLayout(cur, tpl resume.Layout, replace bool) resume.Layout {
	if len(tpl) == 0 {
		return cur
	}
	if replace || len(cur) == 0 {
		return tpl
	}
	return cur
}

func mergeCSS(cur, tpl resume.CSS, replace bool) resume.CSS {
	if tpl == (resume.CSS{}) {
		return cur
	}

	out := cur
	out.Value = mergeString(cur.Value, tpl.Value, replace)
	out.Visible = mergeBool(cur.Visible, tpl.Visible, replace)
	return out
}

func mergePage(cur, tpl resume.Page, replace bool) resume.Page {
	out := cur
	out.Margin = mergeInt(cur.Margin, tpl.Margin, replace)
	out.Format = mergeString(cur.Format, tpl.Format, replace)
	if replace && tpl.Options != (resume.PageOptions{}) {
		out.Options = tpl.Options
	}
	return out
}

func mergeTheme(cur, tpl resume.Theme, replace bool) resume.Theme {
	out := cur
	out.Background = mergeString(cur.Background, tpl.Background, replace)
	out.Text = mergeString(cur.Text, tpl.Text, replace)
	out.Primary = mergeString(cur.Primary, tpl.Primary, replace)
	return out
}

func mergeTypography(cur, tpl resume.Typography, replace bool) resume.Typography {
	if isEmptyTypography(tpl) {
		return cur
	}

	out := cur
	out.Font = mergeFont(cur.Font, tpl.Font, replace)
	out.LineHeight = mergeFloat(cur.LineHeight, tpl.LineHeight, replace)
	out.HideIcons = mergeBool(cur.HideIcons, tpl.HideIcons, replace)
	out.UnderlineLinks = mergeBool(cur.UnderlineLinks, tpl.UnderlineLinks, replace)
	return out
}

func isEmptyTypography(t resume.Typography) bool {
	return t.Font.Family == "" && t.Font.Subset == "" && len(t.Font.Variants) == 0 &&
		t.Font.Size == 0 && t.LineHeight == 0 && !t.HideIcons && !t.UnderlineLinks
}

func mergeFont(cur, tpl resume.Font, replace bool) resume.Font {
	out := cur
	out.Family = mergeString(cur.Family, tpl.Family, replace)
	out.Subset = mergeString(cur.Subset, tpl.Subset, replace)
	out.Variants = mergeStrings(cur.Variants, tpl.Variants, replace)
	out.Size = mergeFloat(cur.Size, tpl.Size, replace)
	return out
}

// mergeString 的空值判定只有空字符串。模板侧空字符串视为缺省，跳过。
func mergeString(cur, tpl string, replace bool) string {
	if tpl == "" {
		return cur
	}
	if replace || cur == "" {
		return tpl
	}
	return cur
}

// mergeInt 填充模式下数值从不视为空（0 是合法取值），只在替换模式
// 且模板携带非零值时覆盖。
func mergeInt(cur, tpl int, replace bool) int {
	if replace && tpl != 0 {
		return tpl
	}
	return cur
}

func mergeFloat(cur, tpl float64, replace bool) float64 {
	if replace && tpl != 0 {
		return tpl
	}
	return cur
}

// mergeBool false 是合法取值：替换模式下模板值直接生效，
// 填充模式下保留当前值。
func mergeBool(cur, tpl, replace bool) bool {
	if replace {
		return tpl
	}
	return cur
}

func mergeItems(cur, tpl []resume.Item, replace bool) []resume.Item {
	if len(tpl) == 0 {
		return cur
	}
	if replace || len(cur) == 0 {
		return cloneItems(tpl)
	}
	return cur
}

func mergeStrings(cur, tpl []string, replace bool) []string {
	if len(tpl) == 0 {
		return cur
	}
	if replace || len(cur) == 0 {
		out := make([]string, len(tpl))
		copy(out, tpl)
		return out
	}
	return cur
}

// cloneItems 复制条目序列，避免结果与模板共享可变的条目映射。
func cloneItems(items []resume.Item) []resume.Item {
	out := make([]resume.Item, len(items))
	for i, item := range items {
		m := make(resume.Item, len(item))
		for k, v := range item {
			m[k] = v
		}
		out[i] = m
	}
	return out
}
