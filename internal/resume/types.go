package resume

// Document 表示一份简历的完整内容结构，与编辑器持久化的 JSON 形状一致。
type Document struct {
	Basics   Basics   `json:"basics"`
	Sections Sections `json:"sections"`
	Metadata Metadata `json:"metadata"`
}

// Basics 是简历头部的个人信息。
type Basics struct {
	Name         string        `json:"name"`
	Headline     string        `json:"headline"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Location     string        `json:"location"`
	URL          URL           `json:"url"`
	CustomFields []CustomField `json:"customFields"`
	Picture      Picture       `json:"picture"`
}

// URL 表示带显示文案的链接。
type URL struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// CustomField 是 basics 中用户自定义的动态字段。
type CustomField struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Picture 描述头像及其展示效果。
type Picture struct {
	URL          string         `json:"url"`
	Size         int            `json:"size"`
	AspectRatio  float64        `json:"aspectRatio"`
	BorderRadius int            `json:"borderRadius"`
	Effects      PictureEffects `json:"effects"`
}

// PictureEffects 头像的显示开关。
type PictureEffects struct {
	Hidden    bool `json:"hidden"`
	Border    bool `json:"border"`
	Grayscale bool `json:"grayscale"`
}

// Sections 包含固定的十三个内容分区，外加开放的自定义分区映射。
// 固定分区的 key 是稳定标识，消费方不得假设 custom 中存在任何 key。
type Sections struct {
	Summary        Section            `json:"summary"`
	Experience     Section            `json:"experience"`
	Education      Section            `json:"education"`
	Skills         Section            `json:"skills"`
	Languages      Section            `json:"languages"`
	Projects       Section            `json:"projects"`
	Certifications Section            `json:"certifications"`
	Awards         Section            `json:"awards"`
	Publications   Section            `json:"publications"`
	Volunteer      Section            `json:"volunteer"`
	Interests      Section            `json:"interests"`
	References     Section            `json:"references"`
	Profiles       Section            `json:"profiles"`
	Custom         map[string]Section `json:"custom"`
}

// SectionKeys 是固定分区 key 的稳定顺序。
var SectionKeys = []string{
	"summary",
	"experience",
	"education",
	"skills",
	"languages",
	"projects",
	"certifications",
	"awards",
	"publications",
	"volunteer",
	"interests",
	"references",
	"profiles",
}

// Section 表示单个内容分区。summary 类分区使用 Content，
// 列表类分区使用 Items，两者不会同时出现。
type Section struct {
	Name          string `json:"name"`
	Columns       int    `json:"columns"`
	SeparateLinks bool   `json:"separateLinks"`
	Visible       bool   `json:"visible"`
	ID            string `json:"id"`
	Content       string `json:"content"`
	Items         []Item `json:"items"`
}

// Item 是列表类分区中的单个条目。条目字段随分区类型变化
// （工作经历、技能、证书的形状各不相同），合并时整体采用，
// 从不逐字段拆解，因此保留为开放映射。
type Item map[string]any

// Metadata 是文档级设置。Template 必须取自 template 包注册的标识集合。
type Metadata struct {
	Template   string     `json:"template"`
	Layout     Layout     `json:"layout"`
	CSS        CSS        `json:"css"`
	Page       Page       `json:"page"`
	Theme      Theme      `json:"theme"`
	Typography Typography `json:"typography"`
	Notes      string     `json:"notes"`
}

// Layout 是三层嵌套结构：页 -> 栏 -> 分区 key 列表。
type Layout [][][]string

// CSS 表示用户自定义样式。
type CSS struct {
	Value   string `json:"value"`
	Visible bool   `json:"visible"`
}

// Page 描述页面排版设置。
type Page struct {
	Margin  int         `json:"margin"`
	Format  string      `json:"format"`
	Options PageOptions `json:"options"`
}

// PageOptions 打印相关开关。
type PageOptions struct {
	BreakLine   bool `json:"breakLine"`
	PageNumbers bool `json:"pageNumbers"`
}

// Theme 配色设置。
type Theme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
}

// Typography 字体排印设置。
type Typography struct {
	Font           Font    `json:"font"`
	LineHeight     float64 `json:"lineHeight"`
	HideIcons      bool    `json:"hideIcons"`
	UnderlineLinks bool    `json:"underlineLinks"`
}

// Font 字体族配置。
type Font struct {
	Family   string   `json:"family"`
	Subset   string   `json:"subset"`
	Variants []string `json:"variants"`
	Size     float64  `json:"size"`
}
