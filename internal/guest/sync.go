package guest

import (
	"log/slog"
	"time"

	"cnResume/internal/metrics"
)

// Snapshot 是一次性交给账号导入流程的游客数据快照。
type Snapshot struct {
	User    *User    `json:"user"`
	Resumes []Resume `json:"resumes"`
}

// SyncSnapshot 返回待同步数据的只读快照，不产生任何修改。
// 实际的上传由外部协作方完成，本层只负责取数与标记。
func (s *Store) SyncSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	return Snapshot{
		User:    s.readUser(),
		Resumes: s.readResumes(),
	}
}

// MarkSynced 记录同步完成时间。此后游客数据进入保留期，
// 保留期结束后的任意一次存储访问会触发整体清理；再次调用
// MarkSynced 会刷新保留期起点。截止时间持久化在介质中，
// 进程重启不会丢失。
func (s *Store) MarkSynced() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now().Format(time.RFC3339Nano)
	if err := s.writeRaw(syncedFile, stamp); err != nil {
		metrics.ObserveStoreOp("mark_synced", "error")
		return err
	}

	metrics.ObserveStoreOp("mark_synced", "ok")
	return nil
}

// HasUnsyncedData 判断是否存在至少一条简历且尚未标记过同步。
func (s *Store) HasUnsyncedData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()

	if s.readRaw(syncedFile) != "" {
		return false
	}
	return len(s.readResumes()) > 0
}

// ClearAll 立即清除全部游客数据，包括同步时间戳标记。
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wipe()
}

// expireIfDue 执行惰性过期：存在同步标记且已超过保留期时整体清理。
// 调用方必须已持有锁。
func (s *Store) expireIfDue() {
	raw := s.readRaw(syncedFile)
	if raw == "" {
		return
	}

	stamp, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		metrics.ObserveDecodeFailure()
		s.logger.Warn("sync marker corrupted, discarding", slog.String("value", raw))
		_ = s.remove(syncedFile)
		return
	}

	if s.now().Sub(stamp) < s.retention {
		return
	}

	if err := s.wipe(); err != nil {
		s.logger.Warn("expired guest data cleanup failed", slog.String("error", err.Error()))
		return
	}

	metrics.ObserveExpiryWipe()
	s.logger.Info("expired guest data cleared",
		slog.Time("synced_at", stamp),
		slog.Duration("retention", s.retention),
	)
}

func (s *Store) wipe() error {
	for _, name := range []string{userFile, resumesFile, currentFile, syncedFile} {
		if err := s.remove(name); err != nil {
			return err
		}
	}
	return nil
}
