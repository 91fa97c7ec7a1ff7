package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// setupHomes points both home roots into fresh temp directories and
// returns the resolved toolchain roots.
func setupHomes(t *testing.T) (custom, cache string) {
	t.Helper()

	customBase := t.TempDir()
	cacheBase := t.TempDir()
	t.Setenv(EnvCustomHome, customBase)
	t.Setenv(EnvCacheHome, cacheBase)

	custom = filepath.Join(customBase, "rookup", "toolchains")
	cache = filepath.Join(cacheBase, "rookup", "toolchains")
	return custom, cache
}

func installDir(t *testing.T, home, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(home, name), 0o755); err != nil {
		t.Fatalf("create toolchain dir: %v", err)
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in        string
		wantAlias bool
		wantText  string
	}{
		{"stable", true, "stable"},
		{"latest", true, "latest"},
		{":1.12", false, "1.12"},
		{":1.12.0.7192", false, "1.12.0.7192"},
		{"", true, ""},
	}

	for _, tt := range tests {
		sel := ParseSelector(tt.in)
		if sel.IsAlias() != tt.wantAlias {
			t.Errorf("ParseSelector(%q).IsAlias() = %v, want %v", tt.in, sel.IsAlias(), tt.wantAlias)
		}
		if sel.Text() != tt.wantText {
			t.Errorf("ParseSelector(%q).Text() = %q, want %q", tt.in, sel.Text(), tt.wantText)
		}
		if sel.String() != tt.in {
			t.Errorf("ParseSelector(%q).String() = %q, round trip broken", tt.in, sel.String())
		}
	}
}

func TestSelectorTest(t *testing.T) {
	aliases := map[string]string{"stable": "1.11.0.6964"}

	tests := []struct {
		name      string
		selector  string
		candidate string
		want      bool
	}{
		{"super_exact", ":1.12", "1.12", true},
		{"super_refinement", ":1.12", "1.12.0.7192", true},
		{"super_different_branch", ":1.12", "1.11.0.6964", false},
		{"super_prefix_of_super", ":1.12", "1", false},
		{"alias_exact", "stable", "1.11.0.6964", true},
		{"alias_refinement_rejected", "stable", "1.11.0.6964.1", false},
		{"alias_unbound", "latest", "1.12.0.7192", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := ParseSelector(tt.selector)
			if got := sel.Test(aliases, tt.candidate); got != tt.want {
				t.Errorf("Test(%q, %q) = %v, want %v", tt.selector, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestFindPathCustomWins(t *testing.T) {
	custom, cache := setupHomes(t)
	installDir(t, custom, "1.12.0.7192")
	installDir(t, cache, "1.12.0.7192")

	path, ok := FindPath("1.12.0.7192")
	if !ok {
		t.Fatal("FindPath found nothing")
	}
	if want := filepath.Join(custom, "1.12.0.7192"); path != want {
		t.Errorf("FindPath = %q, want custom root %q", path, want)
	}
}

func TestFindPathFallsBackToCache(t *testing.T) {
	_, cache := setupHomes(t)
	installDir(t, cache, "1.11.0.6964")

	path, ok := FindPath("1.11.0.6964")
	if !ok {
		t.Fatal("FindPath found nothing")
	}
	if want := filepath.Join(cache, "1.11.0.6964"); path != want {
		t.Errorf("FindPath = %q, want cache root %q", path, want)
	}

	if _, ok := FindPath("9.9.9"); ok {
		t.Error("FindPath found a version that is not installed")
	}
}

func TestIsInstalled(t *testing.T) {
	_, cache := setupHomes(t)
	installDir(t, cache, "1.12.0.7192")

	if !IsInstalled("1.12.0.7192") {
		t.Error("IsInstalled = false for installed version")
	}
	if IsInstalled("1.12.0.7193") {
		t.Error("IsInstalled = true for missing version")
	}
}

// Super-version search pools candidates from both roots; the maximum
// may therefore live in either one.
func TestFindLatestOfPoolsBothRoots(t *testing.T) {
	custom, cache := setupHomes(t)
	installDir(t, custom, "1.12.0.7150")
	installDir(t, cache, "1.12.0.7192")
	installDir(t, cache, "1.11.0.6964")

	found, ok := FindLatestOf("1.12")
	if !ok {
		t.Fatal("FindLatestOf found nothing")
	}
	if found.Name != "1.12.0.7192" {
		t.Errorf("FindLatestOf name = %q, want %q", found.Name, "1.12.0.7192")
	}
	if want := filepath.Join(cache, "1.12.0.7192"); found.Path != want {
		t.Errorf("FindLatestOf path = %q, want %q", found.Path, want)
	}
}

func TestFindLatestOfSkipsMissingRoot(t *testing.T) {
	_, cache := setupHomes(t)
	// Custom root never created; only cache exists.
	installDir(t, cache, "1.12.0.7192")

	found, ok := FindLatestOf("1.12")
	if !ok || found.Name != "1.12.0.7192" {
		t.Errorf("FindLatestOf = %+v, %v; want cache hit", found, ok)
	}

	if _, ok := FindLatestOf("2"); ok {
		t.Error("FindLatestOf matched a super-version with no installs")
	}
}

func TestFind(t *testing.T) {
	custom, cache := setupHomes(t)
	installDir(t, custom, "1.11.0.6964")
	installDir(t, cache, "1.12.0.7192")

	aliases := map[string]string{"stable": "1.11.0.6964", "ghost": "3.0.0"}

	t.Run("super", func(t *testing.T) {
		found, err := Find(ParseSelector(":1.12"), aliases)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if found.Name != "1.12.0.7192" {
			t.Errorf("Find name = %q", found.Name)
		}
	})

	t.Run("super_not_installed", func(t *testing.T) {
		_, err := Find(ParseSelector(":4"), aliases)
		var notFound *LatestNotFoundError
		if !errors.As(err, &notFound) || notFound.Super != "4" {
			t.Errorf("Find error = %v, want LatestNotFoundError for 4", err)
		}
	})

	t.Run("alias", func(t *testing.T) {
		found, err := Find(ParseSelector("stable"), aliases)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if want := filepath.Join(custom, "1.11.0.6964"); found.Path != want {
			t.Errorf("Find path = %q, want %q", found.Path, want)
		}
	})

	t.Run("alias_unbound", func(t *testing.T) {
		_, err := Find(ParseSelector("nightly"), aliases)
		var noDefault *NoAliasDefaultError
		if !errors.As(err, &noDefault) || noDefault.Alias != "nightly" {
			t.Errorf("Find error = %v, want NoAliasDefaultError", err)
		}
	})

	t.Run("alias_version_missing", func(t *testing.T) {
		_, err := Find(ParseSelector("ghost"), aliases)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Find error = %v, want NotFoundError", err)
		}
		if notFound.Version != "3.0.0" || notFound.Alias != "ghost" {
			t.Errorf("NotFoundError = %+v", notFound)
		}
	})
}

func TestList(t *testing.T) {
	custom, cache := setupHomes(t)
	installDir(t, custom, "1.11.0.6964")
	installDir(t, cache, "1.12.0.7192")
	// Files in a home root are not toolchains.
	if err := os.WriteFile(filepath.Join(cache, "stray.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	listings := List()
	if len(listings) != 2 {
		t.Fatalf("List returned %d homes, want 2", len(listings))
	}
	if listings[0].Home != custom {
		t.Errorf("first listing = %q, want custom root first", listings[0].Home)
	}
	if len(listings[1].Versions) != 1 || listings[1].Versions[0] != "1.12.0.7192" {
		t.Errorf("cache listing = %v", listings[1].Versions)
	}
}
