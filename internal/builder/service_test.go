package builder

import (
	"testing"

	"github.com/spf13/afero"

	"cnResume/internal/guest"
	"cnResume/internal/resume"
	"cnResume/internal/template"
)

const gengarZH = `{
  "basics": {"name": "模板示例", "headline": "资深工程师"},
  "sections": {"skills": {"name": "技能", "items": [{"name": "Go"}, {"name": "Docker"}]}},
  "metadata": {
    "template": "gengar",
    "theme": {"background": "#ffffff", "text": "#111111", "primary": "#16a34a"},
    "notes": "template notes"
  }
}`

func newTestService(t *testing.T, templates map[string]string) *Service {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range templates {
		if err := afero.WriteFile(fs, "templates/"+name, []byte(content), 0o644); err != nil {
			t.Fatalf("write template fixture: %v", err)
		}
	}

	store := guest.NewStore(guest.Config{
		Fs:     fs,
		Dir:    "guest-data",
		Locale: "zh-CN",
	}, nil)
	loader := template.NewLoader(fs, "templates")
	return NewService(store, loader, "zh-CN", nil)
}

func TestEnsureUserCreatesLazily(t *testing.T) {
	svc := newTestService(t, nil)

	first, err := svc.EnsureUser("")
	if err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	if first == nil || first.Locale != "zh-CN" {
		t.Fatalf("lazy creation did not use default locale: %+v", first)
	}

	second, err := svc.EnsureUser("en-US")
	if err != nil {
		t.Fatalf("ensure user again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("EnsureUser replaced an existing identity")
	}
}

func TestNewResumeUsesDefaultDocument(t *testing.T) {
	svc := newTestService(t, nil)

	record, err := svc.NewResume("")
	if err != nil {
		t.Fatalf("new resume: %v", err)
	}

	if record.Title != "未命名简历" {
		t.Fatalf("unexpected default title %q", record.Title)
	}
	if record.Data.Metadata.Template != resume.DefaultTemplate {
		t.Fatalf("default document template = %q", record.Data.Metadata.Template)
	}
	if record.Data.Sections.Summary.Name != "个人简介" {
		t.Fatalf("default document not localized: %q", record.Data.Sections.Summary.Name)
	}
	if svc.Store().CurrentID() != record.ID {
		t.Fatalf("new resume was not set as current")
	}
}

func TestApplyTemplateMergesContent(t *testing.T) {
	svc := newTestService(t, map[string]string{"gengar-zh.json": gengarZH})

	record, err := svc.NewResume("")
	if err != nil {
		t.Fatalf("new resume: %v", err)
	}

	applied, err := svc.ApplyTemplate(record.ID, "gengar", "zh-CN", false)
	if err != nil {
		t.Fatalf("apply template: %v", err)
	}
	if applied == nil {
		t.Fatalf("apply returned nil for existing resume")
	}

	if applied.Data.Metadata.Template != "gengar" {
		t.Fatalf("template identifier not stamped: %q", applied.Data.Metadata.Template)
	}
	if applied.Data.Basics.Name != "模板示例" {
		t.Fatalf("empty name not filled from template: %q", applied.Data.Basics.Name)
	}
	if len(applied.Data.Sections.Skills.Items) != 2 {
		t.Fatalf("empty skills not adopted from template: %+v", applied.Data.Sections.Skills.Items)
	}
	// 填充模式下已有的主题色保持不变。
	if applied.Data.Metadata.Theme.Primary != "#dc2626" {
		t.Fatalf("fill mode overwrote populated theme: %+v", applied.Data.Metadata.Theme)
	}
	// notes 不在提交范围内。
	if applied.Data.Metadata.Notes != "" {
		t.Fatalf("template notes leaked into the document: %q", applied.Data.Metadata.Notes)
	}
}

func TestApplyTemplateFillKeepsUserContent(t *testing.T) {
	svc := newTestService(t, map[string]string{"gengar-zh.json": gengarZH})

	record, err := svc.NewResume("")
	if err != nil {
		t.Fatalf("new resume: %v", err)
	}
	doc := record.Data
	doc.Basics.Name = "王小明"
	if _, err := svc.Store().Update(record.ID, guest.ResumePatch{Data: &doc}); err != nil {
		t.Fatalf("seed user content: %v", err)
	}

	applied, err := svc.ApplyTemplate(record.ID, "gengar", "zh-CN", false)
	if err != nil {
		t.Fatalf("apply template: %v", err)
	}
	if applied.Data.Basics.Name != "王小明" {
		t.Fatalf("fill mode overwrote user content: %q", applied.Data.Basics.Name)
	}

	replaced, err := svc.ApplyTemplate(record.ID, "gengar", "zh-CN", true)
	if err != nil {
		t.Fatalf("apply template replace: %v", err)
	}
	if replaced.Data.Basics.Name != "模板示例" {
		t.Fatalf("replace mode kept user content: %q", replaced.Data.Basics.Name)
	}
	if replaced.Data.Metadata.Theme.Primary != "#16a34a" {
		t.Fatalf("replace mode did not commit template theme: %+v", replaced.Data.Metadata.Theme)
	}
}

func TestApplyTemplateWithoutContentStampsIdentifierOnly(t *testing.T) {
	svc := newTestService(t, nil)

	record, err := svc.NewResume("")
	if err != nil {
		t.Fatalf("new resume: %v", err)
	}
	doc := record.Data
	doc.Basics.Name = "王小明"
	if _, err := svc.Store().Update(record.ID, guest.ResumePatch{Data: &doc}); err != nil {
		t.Fatalf("seed user content: %v", err)
	}

	applied, err := svc.ApplyTemplate(record.ID, "onyx", "zh-CN", true)
	if err != nil {
		t.Fatalf("apply template without content: %v", err)
	}
	if applied.Data.Metadata.Template != "onyx" {
		t.Fatalf("identifier not stamped on load failure: %q", applied.Data.Metadata.Template)
	}
	if applied.Data.Basics.Name != "王小明" {
		t.Fatalf("load failure should leave content untouched: %q", applied.Data.Basics.Name)
	}
}

func TestApplyTemplateRejectsUnknownIdentifier(t *testing.T) {
	svc := newTestService(t, nil)

	if _, err := svc.ApplyTemplate("whatever", "charizard", "zh-CN", false); err == nil {
		t.Fatalf("expected error for unregistered template identifier")
	}
}

func TestApplyTemplateUnknownResume(t *testing.T) {
	svc := newTestService(t, nil)

	applied, err := svc.ApplyTemplate("missing", "onyx", "zh-CN", false)
	if err != nil {
		t.Fatalf("apply template: %v", err)
	}
	if applied != nil {
		t.Fatalf("expected nil for unknown resume id, got %+v", applied)
	}
}

func TestTemplatesListing(t *testing.T) {
	svc := newTestService(t, nil)

	zh := svc.Templates("zh-CN")
	if len(zh) != len(template.List) {
		t.Fatalf("expected %d templates, got %d", len(template.List), len(zh))
	}
	if zh[0].ID != "chikorita" || zh[0].Name != "简洁风格" {
		t.Fatalf("unexpected first zh template: %+v", zh[0])
	}

	en := svc.Templates("en-US")
	if en[0].ID != "azurill" || en[0].Name != "Azurill" {
		t.Fatalf("unexpected first en template: %+v", en[0])
	}
}

func TestHasExistingContent(t *testing.T) {
	doc := resume.DefaultDocument("zh-CN")
	if HasExistingContent(doc) {
		t.Fatalf("default document reported existing content")
	}

	named := doc
	named.Basics.Name = "王小明"
	if !HasExistingContent(named) {
		t.Fatalf("document with name reported empty")
	}

	experienced := resume.DefaultDocument("zh-CN")
	experienced.Sections.Experience.Items = []resume.Item{{"company": "ACME"}}
	if !HasExistingContent(experienced) {
		t.Fatalf("document with experience reported empty")
	}

	whitespace := resume.DefaultDocument("zh-CN")
	whitespace.Basics.Name = "   "
	if HasExistingContent(whitespace) {
		t.Fatalf("whitespace-only name reported as content")
	}
}
