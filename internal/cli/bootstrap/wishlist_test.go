package bootstrap

import (
	"WishKeeper/internal/config"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenWishlist_CreatesStoreAndPersists(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		// каталог store ещё не существует — bootstrap обязан его создать
		DatabaseDSN:     filepath.Join(dir, "store", "w.db"),
		LegacyPath:      filepath.Join(dir, "wishlist.json"),
		FlushDebounceMS: 10,
	}
	ctx := context.Background()

	svc, done, err := OpenWishlist(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("OpenWishlist: %v", err)
	}
	if _, err := svc.Add("A", "http://x", "$1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := done(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	// повторное открытие видит сохранённое
	svc2, done2, err := OpenWishlist(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer done2()
	if got := len(svc2.Items()); got != 1 {
		t.Fatalf("expected 1 item after reopen, got %d", got)
	}
}

func TestOpenWishlist_BadStorePath(t *testing.T) {
	dir := t.TempDir()
	// путь упирается в обычный файл — создать каталог хранилища невозможно
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		DatabaseDSN: filepath.Join(blocker, "store", "w.db"),
		LegacyPath:  filepath.Join(dir, "wishlist.json"),
	}
	if _, _, err := OpenWishlist(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for invalid store path")
	}
}
