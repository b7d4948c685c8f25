package tahvel_test

import (
	"testing"

	"tahvelcheck/internal/tahvel"
)

func TestLoadCookieNotExist(t *testing.T) {
	base := t.TempDir()
	cookie, err := tahvel.LoadCookie(base)
	if err != nil {
		t.Fatalf("LoadCookie on missing file: %v", err)
	}
	if cookie != "" {
		t.Errorf("cookie = %q, want empty", cookie)
	}
}

func TestSaveCookieAndLoadCookie(t *testing.T) {
	base := t.TempDir()
	want := "SESSION=abc123"

	if err := tahvel.SaveCookie(base, want); err != nil {
		t.Fatalf("SaveCookie: %v", err)
	}

	got, err := tahvel.LoadCookie(base)
	if err != nil {
		t.Fatalf("LoadCookie after save: %v", err)
	}
	if got != want {
		t.Errorf("cookie = %q, want %q", got, want)
	}
}

func TestSaveCookieOverwrites(t *testing.T) {
	base := t.TempDir()

	if err := tahvel.SaveCookie(base, "SESSION=old"); err != nil {
		t.Fatal(err)
	}
	if err := tahvel.SaveCookie(base, "SESSION=new"); err != nil {
		t.Fatal(err)
	}

	got, err := tahvel.LoadCookie(base)
	if err != nil {
		t.Fatal(err)
	}
	if got != "SESSION=new" {
		t.Errorf("cookie = %q, want %q", got, "SESSION=new")
	}
}
