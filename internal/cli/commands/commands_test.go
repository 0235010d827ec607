package commands

import (
	"WishKeeper/internal/config"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// testConfig собирает конфиг с временными путями, не трогая окружение
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DatabaseDSN:     filepath.Join(dir, "store", "w.db"),
		LegacyPath:      filepath.Join(dir, "wishlist.json"),
		FlushDebounceMS: 10,
	}
}

// captureOut подменяет общий writer CLI на буфер
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func run(t *testing.T, cfg *config.Config, args ...string) int {
	t.Helper()
	return Dispatch(context.Background(), cfg, args)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	buf := captureOut(t)
	code := run(t, testConfig(t), "frobnicate")
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Unknown command") {
		t.Fatalf("expected unknown-command message, got: %s", buf.String())
	}
}

func TestDispatch_HelpListsCommands(t *testing.T) {
	buf := captureOut(t)
	if code := run(t, testConfig(t), "help"); code != 0 {
		t.Fatalf("help must exit 0, got %d", code)
	}
	for _, name := range []string{"items", "add", "edit", "delete", "buy", "total"} {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("help output missing %q:\n%s", name, buf.String())
		}
	}
}

func TestAdd_UsageError(t *testing.T) {
	buf := captureOut(t)
	if code := run(t, testConfig(t), "add", "only-name"); code != 2 {
		t.Fatalf("expected usage exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "add <name> <link> <price>") {
		t.Fatalf("expected usage string, got: %s", buf.String())
	}
}

func TestAddItemsBuyDeleteTotal_FullFlow(t *testing.T) {
	cfg := testConfig(t)
	buf := captureOut(t)

	if code := run(t, cfg, "add", "Headphones", "http://shop/hp", "₹1,299"); code != 0 {
		t.Fatalf("add failed: %d\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Created:") {
		t.Fatalf("expected Created output: %s", buf.String())
	}

	// позиция пережила перезапуск (каждая команда открывает хранилище заново)
	buf.Reset()
	if code := run(t, cfg, "items"); code != 0 {
		t.Fatalf("items failed: %d\n%s", code, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "Headphones") || !strings.Contains(out, "Всего: 1") {
		t.Fatalf("items output unexpected:\n%s", out)
	}

	// вытащим id из вывода items ("- <id>  <name> ...")
	var id string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "- ") {
			id = strings.Fields(line)[1]
			break
		}
	}
	if id == "" {
		t.Fatalf("failed to extract id from items output:\n%s", out)
	}

	buf.Reset()
	if code := run(t, cfg, "buy", id); code != 0 {
		t.Fatalf("buy failed: %d\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Куплено") {
		t.Fatalf("expected bought confirmation: %s", buf.String())
	}

	buf.Reset()
	if code := run(t, cfg, "total"); code != 0 {
		t.Fatalf("total failed: %d\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Куплено: 1") || !strings.Contains(buf.String(), "Сумма к покупке: 0.00") {
		t.Fatalf("total output unexpected:\n%s", buf.String())
	}

	buf.Reset()
	if code := run(t, cfg, "delete", id); code != 0 {
		t.Fatalf("delete failed: %d\n%s", code, buf.String())
	}
	buf.Reset()
	if code := run(t, cfg, "items"); code != 0 {
		t.Fatalf("items failed: %d\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Список пуст") {
		t.Fatalf("expected empty list after delete:\n%s", buf.String())
	}
}
