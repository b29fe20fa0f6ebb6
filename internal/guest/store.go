// Package guest 在本地文件中维护游客（未登录用户）的简历数据，
// 对外提供与远端简历服务等价的同步 CRUD 接口，使编辑器在游客态
// 与登录态下的调用方式一致。
package guest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"cnResume/internal/metrics"
	"cnResume/internal/resume"
)

// 持久化文件名，对应上游的三个存储 key 与同步时间戳标记。
const (
	userFile    = "guest-user.json"
	resumesFile = "guest-resumes.json"
	currentFile = "guest-current-resume"
	syncedFile  = "guest-data-synced"
)

// Visibility 的合法取值。
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// ErrLimitReached 表示游客简历数量已达配置上限。
var ErrLimitReached = errors.New("guest resume limit reached")

// User 是游客身份，同一时间最多存在一个。
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"createdAt"`
}

// Resume 是一条游客简历记录。
type Resume struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug,omitempty"`
	Data       resume.Document `json:"data"`
	Visibility string          `json:"visibility"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CreateInput 是创建简历时的可选字段，缺省值在创建时补齐。
type CreateInput struct {
	Title      string
	Slug       string
	Visibility string
	Data       *resume.Document
}

// UserPatch 按字段更新游客身份，nil 字段保持不变。
type UserPatch struct {
	Name   *string
	Email  *string
	Locale *string
}

// ResumePatch 按字段更新简历记录，nil 字段保持不变。
type ResumePatch struct {
	Title      *string
	Slug       *string
	Visibility *string
	Data       *resume.Document
}

// Config 是 Store 的构造参数。
type Config struct {
	// Fs 为持久化介质，生产环境使用 afero.NewOsFs()。
	Fs afero.Fs
	// Dir 是游客数据目录。
	Dir string
	// Locale 决定默认标题、默认用户名与副本后缀的语言。
	Locale string
	// Retention 是标记同步后保留游客数据的时长，到期惰性清理。
	Retention time.Duration
	// MaxResumes 大于 0 时限制游客简历数量。
	MaxResumes int
}

// Store 是游客数据的文件存储。所有写入都是整文件覆盖；进程内由
// 互斥锁串行，跨进程共享同一目录时为最后写入生效（单写者假设）。
type Store struct {
	mu         sync.Mutex
	fs         afero.Fs
	dir        string
	locale     string
	retention  time.Duration
	maxResumes int
	logger     *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewStore 构造 Store。logger 为 nil 时使用 slog.Default()。
func NewStore(cfg Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	retention := cfg.Retention
	if retention <= 0 {
		retention = 7 * 24 * time.Hour
	}
	return &Store{
		fs:         cfg.Fs,
		dir:        cfg.Dir,
		locale:     cfg.Locale,
		retention:  retention,
		maxResumes: cfg.MaxResumes,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// GetUser 返回当前游客身份，不存在或记录损坏时返回 nil。
func (s *Store) GetUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	return s.readUser()
}

// CreateUser 生成一个新的游客身份并覆盖旧身份。
func (s *Store) CreateUser(locale string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	if locale == "" {
		locale = s.locale
	}
	name := "Guest"
	if resume.IsChineseLocale(locale) {
		name = "游客用户"
	}

	user := User{
		ID:        s.newID(),
		Name:      name,
		Locale:    locale,
		CreatedAt: s.now(),
	}
	if err := s.writeUser(user); err != nil {
		metrics.ObserveStoreOp("create_user", "error")
		return nil, err
	}

	metrics.ObserveStoreOp("create_user", "ok")
	return &user, nil
}

// UpdateUser 将补丁浅合并进现有身份。没有身份时返回 (nil, nil)，
// 不会隐式创建。
func (s *Store) UpdateUser(patch UserPatch) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	user := s.readUser()
	if user == nil {
		metrics.ObserveStoreOp("update_user", "miss")
		return nil, nil
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Locale != nil {
		user.Locale = *patch.Locale
	}

	if err := s.writeUser(*user); err != nil {
		metrics.ObserveStoreOp("update_user", "error")
		return nil, err
	}

	metrics.ObserveStoreOp("update_user", "ok")
	return user, nil
}

// ClearUser 清除游客身份、全部游客简历以及当前简历指针。
// 同步时间戳标记不在清除范围内。
func (s *Store) ClearUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{userFile, resumesFile, currentFile} {
		if err := s.remove(name); err != nil {
			metrics.ObserveStoreOp("clear_user", "error")
			return err
		}
	}

	metrics.ObserveStoreOp("clear_user", "ok")
	return nil
}

// List 返回全部游客简历，保持插入顺序。
func (s *Store) List() []Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	return s.readResumes()
}

// Get 按 id 返回简历，不存在时返回 nil。
func (s *Store) Get(id string) *Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	return findResume(s.readResumes(), id)
}

// Create 创建一条新简历并追加到集合末尾，不改变当前简历指针。
// 需要上游"创建即设为当前"行为的调用方使用 CreateAndSetCurrent。
func (s *Store) Create(input CreateInput) (*Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	return s.create(input)
}

// CreateAndSetCurrent 创建一条新简历并把它设为当前简历。
func (s *Store) CreateAndSetCurrent(input CreateInput) (*Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	created, err := s.create(input)
	if err != nil {
		return nil, err
	}
	if err := s.writeRaw(currentFile, created.ID); err != nil {
		metrics.ObserveStoreOp("set_current", "error")
		return nil, err
	}
	return created, nil
}

func (s *Store) create(input CreateInput) (*Resume, error) {
	records := s.readResumes()

	if s.maxResumes > 0 && len(records) >= s.maxResumes {
		metrics.ObserveStoreOp("create", "error")
		return nil, ErrLimitReached
	}

	title := input.Title
	if title == "" {
		title = "Untitled Resume"
		if resume.IsChineseLocale(s.locale) {
			title = "未命名简历"
		}
	}
	visibility := input.Visibility
	if visibility == "" {
		visibility = VisibilityPrivate
	}
	data := resume.Document{}
	if input.Data != nil {
		data = *input.Data
	}

	now := s.now()
	record := Resume{
		ID:         s.newID(),
		Title:      title,
		Slug:       input.Slug,
		Data:       data,
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	records = append(records, record)
	if err := s.writeResumes(records); err != nil {
		metrics.ObserveStoreOp("create", "error")
		return nil, err
	}

	metrics.ObserveStoreOp("create", "ok")
	return &record, nil
}

// Update 将补丁合并进指定简历并刷新 UpdatedAt。
// id 不存在时返回 (nil, nil)。
func (s *Store) Update(id string, patch ResumePatch) (*Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	records := s.readResumes()
	index := -1
	for i := range records {
		if records[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		metrics.ObserveStoreOp("update", "miss")
		return nil, nil
	}

	record := &records[index]
	if patch.Title != nil {
		record.Title = *patch.Title
	}
	if patch.Slug != nil {
		record.Slug = *patch.Slug
	}
	if patch.Visibility != nil {
		record.Visibility = *patch.Visibility
	}
	if patch.Data != nil {
		record.Data = *patch.Data
	}
	record.UpdatedAt = s.now()

	if err := s.writeResumes(records); err != nil {
		metrics.ObserveStoreOp("update", "error")
		return nil, err
	}

	metrics.ObserveStoreOp("update", "ok")
	out := *record
	return &out, nil
}

// Delete 按 id 删除简历。id 不存在时返回 false 且不报错；
// 被删除的简历是当前简历时，一并清除指针。
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	records := s.readResumes()
	filtered := records[:0:0]
	for _, r := range records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == len(records) {
		metrics.ObserveStoreOp("delete", "miss")
		return false, nil
	}

	if err := s.writeResumes(filtered); err != nil {
		metrics.ObserveStoreOp("delete", "error")
		return false, err
	}

	if s.readRaw(currentFile) == id {
		if err := s.remove(currentFile); err != nil {
			metrics.ObserveStoreOp("delete", "error")
			return false, err
		}
	}

	metrics.ObserveStoreOp("delete", "ok")
	return true, nil
}

// Duplicate 克隆指定简历：新 id、标题加副本后缀、时间戳重置为当前。
// 不改变当前简历指针；源 id 不存在时返回 (nil, nil)。
func (s *Store) Duplicate(id string) (*Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	records := s.readResumes()
	source := findResume(records, id)
	if source == nil {
		metrics.ObserveStoreOp("duplicate", "miss")
		return nil, nil
	}

	suffix := " (Copy)"
	if resume.IsChineseLocale(s.locale) {
		suffix = " (副本)"
	}

	now := s.now()
	clone := *source
	clone.ID = s.newID()
	clone.Title = source.Title + suffix
	clone.CreatedAt = now
	clone.UpdatedAt = now

	records = append(records, clone)
	if err := s.writeResumes(records); err != nil {
		metrics.ObserveStoreOp("duplicate", "error")
		return nil, err
	}

	metrics.ObserveStoreOp("duplicate", "ok")
	return &clone, nil
}

// SetCurrent 把指定 id 记为当前简历。
func (s *Store) SetCurrent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	if err := s.writeRaw(currentFile, id); err != nil {
		metrics.ObserveStoreOp("set_current", "error")
		return err
	}
	metrics.ObserveStoreOp("set_current", "ok")
	return nil
}

// CurrentID 返回当前简历 id，未设置时返回空字符串。
func (s *Store) CurrentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	return s.readRaw(currentFile)
}

// Current 返回当前简历记录；指针未设置或悬空时返回 nil。
func (s *Store) Current() *Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	id := s.readRaw(currentFile)
	if id == "" {
		return nil
	}
	return findResume(s.readResumes(), id)
}

// ClearCurrent 清除当前简历指针。
func (s *Store) ClearCurrent() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(currentFile)
}

func findResume(records []Resume, id string) *Resume {
	for i := range records {
		if records[i].ID == id {
			out := records[i]
			return &out
		}
	}
	return nil
}

// ---- 持久化底层：整文件读写，损坏记录按缺失处理 ----

func (s *Store) readUser() *User {
	data, err := afero.ReadFile(s.fs, s.path(userFile))
	if err != nil {
		return nil
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		metrics.ObserveDecodeFailure()
		s.logger.Warn("guest user record corrupted, treating as absent", slog.String("error", err.Error()))
		return nil
	}
	return &user
}

func (s *Store) writeUser(user User) error {
	return s.writeJSON(userFile, user)
}

func (s *Store) readResumes() []Resume {
	data, err := afero.ReadFile(s.fs, s.path(resumesFile))
	if err != nil {
		return []Resume{}
	}
	var records []Resume
	if err := json.Unmarshal(data, &records); err != nil {
		metrics.ObserveDecodeFailure()
		s.logger.Warn("guest resume collection corrupted, treating as empty", slog.String("error", err.Error()))
		return []Resume{}
	}
	return records
}

func (s *Store) writeResumes(records []Resume) error {
	return s.writeJSON(resumesFile, records)
}

func (s *Store) writeJSON(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.writeRaw(name, string(data))
}

func (s *Store) readRaw(name string) string {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) writeRaw(name, value string) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path(name), []byte(value), 0o644)
}

func (s *Store) remove(name string) error {
	if err := s.fs.Remove(s.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
