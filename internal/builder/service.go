// Package builder 是编辑器侧的同步门面：组合游客存储、模板注册表与
// 模板加载器，提供 UI 层直接调用的高层操作。
package builder

import (
	"fmt"
	"log/slog"
	"strings"

	"cnResume/internal/guest"
	"cnResume/internal/resume"
	"cnResume/internal/template"
)

// Service 聚合游客态下编辑器需要的全部本地能力。
type Service struct {
	store  *guest.Store
	loader *template.Loader
	locale string
	logger *slog.Logger
}

// NewService 构造 Service。logger 为 nil 时使用 slog.Default()。
func NewService(store *guest.Store, loader *template.Loader, locale string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		loader: loader,
		locale: locale,
		logger: logger,
	}
}

// Store 暴露底层游客存储，UI 层的普通 CRUD 直接走它。
func (s *Service) Store() *guest.Store {
	return s.store
}

// EnsureUser 返回游客身份，不存在时在首次交互中惰性创建。
func (s *Service) EnsureUser(locale string) (*guest.User, error) {
	if user := s.store.GetUser(); user != nil {
		return user, nil
	}
	if locale == "" {
		locale = s.locale
	}
	return s.store.CreateUser(locale)
}

// NewResume 以默认文档创建一份简历并设为当前简历。
func (s *Service) NewResume(title string) (*guest.Resume, error) {
	doc := resume.DefaultDocument(s.locale)
	return s.store.CreateAndSetCurrent(guest.CreateInput{
		Title: title,
		Data:  &doc,
	})
}

// ApplyTemplate 把指定模板套用到指定简历上并持久化。
//
// 流程与编辑器一致：先落模板标识，再加载模板内容合并。模板内容
// 加载失败只会降级为"仅切换模板标识，内容不动"，不会中断操作。
// resumeID 不存在时返回 (nil, nil)。
func (s *Service) ApplyTemplate(resumeID, templateID, locale string, replace bool) (*guest.Resume, error) {
	if !template.IsValid(templateID) {
		return nil, fmt.Errorf("unknown template %q", templateID)
	}
	if locale == "" {
		locale = s.locale
	}

	record := s.store.Get(resumeID)
	if record == nil {
		return nil, nil
	}

	doc := record.Data
	doc.Metadata.Template = templateID

	tpl, err := s.loader.Load(templateID, locale)
	if err != nil {
		s.logger.Warn("template content unavailable, applying identifier only",
			slog.String("template", templateID),
			slog.String("locale", locale),
			slog.String("error", err.Error()),
		)
	} else {
		doc = template.Apply(doc, tpl, replace)
	}

	return s.store.Update(resumeID, guest.ResumePatch{Data: &doc})
}

// TemplateInfo 是模板选择列表的一项。
type TemplateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Templates 返回按 locale 偏好排序、带展示名称的模板列表。
func (s *Service) Templates(locale string) []TemplateInfo {
	if locale == "" {
		locale = s.locale
	}
	ids := template.Filtered(locale)
	out := make([]TemplateInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, TemplateInfo{ID: id, Name: template.DisplayName(id, locale)})
	}
	return out
}

// HasExistingContent 判断文档是否已有用户填写的内容。编辑器用它决定
// 套用模板前是否需要用户确认覆盖。
func HasExistingContent(doc resume.Document) bool {
	if strings.TrimSpace(doc.Basics.Name) != "" {
		return true
	}
	if len(doc.Sections.Experience.Items) > 0 {
		return true
	}
	return len(doc.Sections.Education.Items) > 0
}
