package guest

import (
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestHasUnsyncedData(t *testing.T) {
	store, _ := newTestStore(t)

	if store.HasUnsyncedData() {
		t.Fatalf("empty store reported unsynced data")
	}

	if _, err := store.Create(CreateInput{Title: "X"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !store.HasUnsyncedData() {
		t.Fatalf("store with resume and no sync mark reported synced")
	}

	if err := store.MarkSynced(); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	if store.HasUnsyncedData() {
		t.Fatalf("store reported unsynced data right after MarkSynced")
	}
}

func TestSyncSnapshotIsReadOnly(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.CreateUser("zh-CN"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := store.Create(CreateInput{Title: "one"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create(CreateInput{Title: "two"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	snapshot := store.SyncSnapshot()
	if snapshot.User == nil {
		t.Fatalf("snapshot missing user")
	}
	if len(snapshot.Resumes) != 2 {
		t.Fatalf("snapshot has %d resumes, want 2", len(snapshot.Resumes))
	}

	// 快照是纯读取，不触发任何修改。
	if len(store.List()) != 2 || store.GetUser() == nil {
		t.Fatalf("taking a snapshot mutated the store")
	}
}

func TestLazyExpiryAfterRetention(t *testing.T) {
	store, clock := newTestStore(t)

	if _, err := store.CreateUser("zh-CN"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := store.CreateAndSetCurrent(CreateInput{Title: "X"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.MarkSynced(); err != nil {
		t.Fatalf("mark synced: %v", err)
	}

	// 保留期内数据完整。
	clock.advance(6 * 24 * time.Hour)
	if len(store.List()) != 1 {
		t.Fatalf("guest data wiped before retention elapsed")
	}

	// 超过保留期后，任意访问触发清理。
	clock.advance(2 * 24 * time.Hour)
	if got := store.List(); len(got) != 0 {
		t.Fatalf("expired guest data survived: %+v", got)
	}
	if store.GetUser() != nil {
		t.Fatalf("expired guest user survived")
	}
	if store.CurrentID() != "" {
		t.Fatalf("expired current pointer survived")
	}
	if store.HasUnsyncedData() {
		t.Fatalf("wiped store reported unsynced data")
	}
}

func TestMarkSyncedAgainRefreshesDeadline(t *testing.T) {
	store, clock := newTestStore(t)

	if _, err := store.Create(CreateInput{Title: "X"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.MarkSynced(); err != nil {
		t.Fatalf("mark synced: %v", err)
	}

	// 五天后再次同步：保留期从新标记重新起算。
	clock.advance(5 * 24 * time.Hour)
	if err := store.MarkSynced(); err != nil {
		t.Fatalf("mark synced again: %v", err)
	}

	clock.advance(4 * 24 * time.Hour)
	if len(store.List()) != 1 {
		t.Fatalf("refreshed deadline did not supersede the old one")
	}

	clock.advance(4 * 24 * time.Hour)
	if len(store.List()) != 0 {
		t.Fatalf("guest data survived past the refreshed deadline")
	}
}

func TestExpiryDeadlineSurvivesReopen(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, _ := newTestStoreWithFs(t, fs)

	if _, err := store.Create(CreateInput{Title: "X"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.MarkSynced(); err != nil {
		t.Fatalf("mark synced: %v", err)
	}

	// 模拟进程重启：同一介质上的新 Store，时钟已越过保留期。
	reopened, clock := newTestStoreWithFs(t, fs)
	clock.advance(8 * 24 * time.Hour)
	if got := reopened.List(); len(got) != 0 {
		t.Fatalf("persisted deadline ignored after reopen: %+v", got)
	}
}

func TestCorruptSyncMarkerDiscarded(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, _ := newTestStoreWithFs(t, fs)

	if _, err := store.Create(CreateInput{Title: "X"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := afero.WriteFile(fs, "guest-data/"+syncedFile, []byte("not a timestamp"), 0o644); err != nil {
		t.Fatalf("write corrupt marker: %v", err)
	}

	// 损坏的标记被丢弃，数据保留，且重新回到未同步状态。
	if len(store.List()) != 1 {
		t.Fatalf("corrupt sync marker wiped guest data")
	}
	if !store.HasUnsyncedData() {
		t.Fatalf("store with discarded marker should report unsynced data")
	}
}

func TestClearAllRemovesEverything(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.CreateUser("zh-CN"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := store.CreateAndSetCurrent(CreateInput{Title: "X"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.MarkSynced(); err != nil {
		t.Fatalf("mark synced: %v", err)
	}

	if err := store.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	if store.GetUser() != nil || len(store.List()) != 0 || store.CurrentID() != "" {
		t.Fatalf("clear all left data behind")
	}
	if _, err := store.Create(CreateInput{Title: "new"}); err != nil {
		t.Fatalf("create after clear: %v", err)
	}
	if !store.HasUnsyncedData() {
		t.Fatalf("sync marker survived clear all")
	}
}
