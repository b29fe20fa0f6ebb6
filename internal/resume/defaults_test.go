package resume

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDefaultDocumentLocalization(t *testing.T) {
	zh := DefaultDocument("zh-CN")
	if zh.Sections.Summary.Name != "个人简介" {
		t.Fatalf("zh summary name = %q", zh.Sections.Summary.Name)
	}
	if zh.Sections.Experience.Name != "工作经历" {
		t.Fatalf("zh experience name = %q", zh.Sections.Experience.Name)
	}

	en := DefaultDocument("en-US")
	if en.Sections.Summary.Name != "Summary" {
		t.Fatalf("en summary name = %q", en.Sections.Summary.Name)
	}
	if en.Sections.References.Name != "References" {
		t.Fatalf("en references name = %q", en.Sections.References.Name)
	}
}

func TestDefaultDocumentShape(t *testing.T) {
	doc := DefaultDocument("zh-CN")

	if doc.Metadata.Template != DefaultTemplate {
		t.Fatalf("default template = %q", doc.Metadata.Template)
	}
	if len(doc.Metadata.Layout) != 1 || len(doc.Metadata.Layout[0]) != 2 {
		t.Fatalf("unexpected default layout shape: %+v", doc.Metadata.Layout)
	}
	if doc.Metadata.Page.Format != "a4" || doc.Metadata.Page.Margin != 18 {
		t.Fatalf("unexpected default page: %+v", doc.Metadata.Page)
	}
	if doc.Sections.Custom == nil {
		t.Fatalf("custom sections map not initialized")
	}
	// 列表类分区的 items 序列化为 []，而不是 null。
	if doc.Sections.Skills.Items == nil {
		t.Fatalf("list section items not initialized")
	}
	if doc.Sections.Summary.Items != nil {
		t.Fatalf("summary section should not carry items")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := DefaultDocument("zh-CN")
	doc.Basics.Name = "王小明"
	doc.Sections.Skills.Items = []Item{{"name": "Go", "level": float64(3)}}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// 整份文档必须经得起编解码往返，落盘再读回后不能有任何字段
	// 发生漂移。空的 items 列表尤其要保持为 []，不能退化为 null。
	if !reflect.DeepEqual(decoded, doc) {
		t.Fatalf("document changed after round trip:\n got: %+v\nwant: %+v", decoded, doc)
	}
	if decoded.Sections.Education.Items == nil {
		t.Fatalf("empty items list decoded as nil")
	}
}

func TestIsChineseLocale(t *testing.T) {
	cases := []struct {
		locale string
		want   bool
	}{
		{"zh", true},
		{"zh-CN", true},
		{"zh-TW", true},
		{"en", false},
		{"en-US", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsChineseLocale(tc.locale); got != tc.want {
			t.Fatalf("IsChineseLocale(%q) = %v, want %v", tc.locale, got, tc.want)
		}
	}
}
