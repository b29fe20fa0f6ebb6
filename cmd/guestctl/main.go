package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"cnResume/internal/builder"
	"cnResume/internal/config"
	"cnResume/internal/guest"
	"cnResume/internal/template"
)

const usage = `guestctl 管理本地游客简历数据。

Usage: guestctl <command> [flags]

Commands:
  user                 显示游客身份（不存在时创建）
  list                 列出全部游客简历
  show <id>            显示指定简历
  create               创建一份新简历并设为当前
  delete <id>          删除指定简历
  duplicate <id>       复制指定简历
  current              显示当前简历
  set-current <id>     设置当前简历
  templates            列出可用模板
  apply                套用模板（-resume -template [-locale] [-replace]）
  export               输出待同步数据快照
  mark-synced          标记游客数据已同步
  clear                清除全部游客数据
`

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	osFs := afero.NewOsFs()
	store := guest.NewStore(guest.Config{
		Fs:         osFs,
		Dir:        cfg.Guest.DataDir,
		Locale:     cfg.Locale,
		Retention:  cfg.Guest.Retention(),
		MaxResumes: cfg.Guest.MaxResumes,
	}, logger)
	loader := template.NewLoader(osFs, cfg.Templates.Dir)
	svc := builder.NewService(store, loader, cfg.Locale, logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "user":
		user, err := svc.EnsureUser(cfg.Locale)
		if err != nil {
			log.Fatalf("ensure guest user: %v", err)
		}
		printJSON(user)

	case "list":
		printJSON(store.List())

	case "show":
		record := store.Get(requireID(args))
		if record == nil {
			log.Fatalf("resume not found")
		}
		printJSON(record)

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		title := fs.String("title", "", "简历标题，缺省时使用本地化默认标题")
		parseFlags(fs, args)
		record, err := svc.NewResume(*title)
		if err != nil {
			log.Fatalf("create resume: %v", err)
		}
		printJSON(record)

	case "delete":
		deleted, err := store.Delete(requireID(args))
		if err != nil {
			log.Fatalf("delete resume: %v", err)
		}
		if !deleted {
			log.Fatalf("resume not found")
		}

	case "duplicate":
		record, err := store.Duplicate(requireID(args))
		if err != nil {
			log.Fatalf("duplicate resume: %v", err)
		}
		if record == nil {
			log.Fatalf("resume not found")
		}
		printJSON(record)

	case "current":
		record := store.Current()
		if record == nil {
			log.Fatalf("no current resume")
		}
		printJSON(record)

	case "set-current":
		if err := store.SetCurrent(requireID(args)); err != nil {
			log.Fatalf("set current resume: %v", err)
		}

	case "templates":
		fs := flag.NewFlagSet("templates", flag.ExitOnError)
		locale := fs.String("locale", cfg.Locale, "模板列表使用的语言")
		parseFlags(fs, args)
		printJSON(svc.Templates(*locale))

	case "apply":
		fs := flag.NewFlagSet("apply", flag.ExitOnError)
		resumeID := fs.String("resume", "", "目标简历 id")
		templateID := fs.String("template", "", "模板标识")
		locale := fs.String("locale", cfg.Locale, "模板内容语言")
		replace := fs.Bool("replace", false, "替换模式：模板内容覆盖已有内容")
		parseFlags(fs, args)
		if *resumeID == "" || *templateID == "" {
			log.Fatalf("apply requires -resume and -template")
		}
		record, err := svc.ApplyTemplate(*resumeID, *templateID, *locale, *replace)
		if err != nil {
			log.Fatalf("apply template: %v", err)
		}
		if record == nil {
			log.Fatalf("resume not found")
		}
		printJSON(record)

	case "export":
		printJSON(store.SyncSnapshot())

	case "mark-synced":
		if err := store.MarkSynced(); err != nil {
			log.Fatalf("mark synced: %v", err)
		}

	case "clear":
		if err := store.ClearAll(); err != nil {
			log.Fatalf("clear guest data: %v", err)
		}

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func requireID(args []string) string {
	if len(args) < 1 || args[0] == "" {
		log.Fatalf("resume id is required")
	}
	return args[0]
}

func parseFlags(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
}

func printJSON(value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Println(string(data))
}
