package template

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/spf13/afero"

	"cnResume/internal/resume"
)

// Loader 从模板目录读取内置模板的示例文档。
// 目录中每个模板对应 <name>.json（英文）与可选的 <name>-zh.json（中文）。
type Loader struct {
	fs  afero.Fs
	dir string
}

// NewLoader 构造 Loader。fs 通常为 afero.NewOsFs()，测试中用内存文件系统。
func NewLoader(fs afero.Fs, dir string) *Loader {
	return &Loader{fs: fs, dir: dir}
}

// Load 读取指定模板在指定语言下的示例文档。
// 中文请求在 -zh 变体缺失时回退到英文文件；文件缺失或无法解析时返回错误，
// 调用方应把这种情况当作"没有模板内容"，而不是中断流程。
func (l *Loader) Load(name, locale string) (*resume.Document, error) {
	if !IsValid(name) {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	if resume.IsChineseLocale(locale) {
		doc, err := l.read(name + "-zh.json")
		if err == nil {
			return doc, nil
		}
	}

	return l.read(name + ".json")
}

func (l *Loader) read(file string) (*resume.Document, error) {
	data, err := afero.ReadFile(l.fs, path.Join(l.dir, file))
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", file, err)
	}

	var doc resume.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode template %s: %w", file, err)
	}
	return &doc, nil
}
