package profile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAddress, EnvTenant, EnvToken, EnvProfile} {
		t.Setenv(key, "")
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirigent", "config.yaml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("expected empty store for a missing file, got %v", err)
	}
	if err := s.Add("local", Profile{Address: "http://localhost:8080"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("prod", Profile{
		Address:  "https://platform.example.com",
		Tenant:   "acme",
		Token:    "secret",
		Insecure: true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Current != "local" {
		t.Errorf("expected current profile local, got %q", loaded.Current)
	}
	p, err := loaded.Get("prod")
	if err != nil {
		t.Fatal(err)
	}
	if p.Address != "https://platform.example.com" || p.Tenant != "acme" || p.Token != "secret" || !p.Insecure {
		t.Errorf("unexpected profile %+v", p)
	}
}

func TestStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirigent", "config.yaml")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add("local", Profile{Address: "http://localhost:8080", Token: "secret"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected file mode 0600, got %o", perm)
	}
	info, err = os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("expected dir mode 0700, got %o", perm)
	}
}

func TestStore_AddExisting(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add("local", Profile{Address: "http://a"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("local", Profile{Address: "http://b"}); !errors.Is(err, ErrProfileExists) {
		t.Errorf("expected ErrProfileExists, got %v", err)
	}
	if got := s.Profiles["local"].Address; got != "http://a" {
		t.Errorf("expected original profile untouched, got %q", got)
	}
}

func TestStore_FirstProfileBecomesCurrent(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add("b", Profile{}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("a", Profile{}); err != nil {
		t.Fatal(err)
	}
	if s.Current != "b" {
		t.Errorf("expected current b, got %q", s.Current)
	}
}

func TestStore_DeleteClearsCurrent(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add("local", Profile{}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("prod", Profile{}); err != nil {
		t.Fatal(err)
	}
	if err := s.Use("prod"); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("prod"); err != nil {
		t.Fatal(err)
	}
	if s.Current != "" {
		t.Errorf("expected current cleared, got %q", s.Current)
	}
	if err := s.Delete("prod"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestStore_UseUnknown(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Use("ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestStore_NamesSorted(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"c", "a", "b"} {
		if err := s.Add(name, Profile{}); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := s.Names(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add("prod", Profile{
		Address: "https://profile.example.com",
		Tenant:  "profile-tenant",
		Token:   "profile-token",
	}); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAddress, "https://env.example.com")
	t.Setenv(EnvTenant, "env-tenant")

	conn, err := s.Resolve(Overrides{Address: "https://flag.example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if conn.Address != "https://flag.example.com" {
		t.Errorf("expected flag to win, got %q", conn.Address)
	}
	if conn.Tenant != "env-tenant" {
		t.Errorf("expected env to beat profile, got %q", conn.Tenant)
	}
	if conn.Token != "profile-token" {
		t.Errorf("expected token from profile, got %q", conn.Token)
	}
	if conn.Profile != "prod" {
		t.Errorf("expected profile prod, got %q", conn.Profile)
	}
}

func TestResolve_ProfileOnly(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add("prod", Profile{
		Address:  "https://profile.example.com",
		Tenant:   "acme",
		Token:    "secret",
		Insecure: true,
	}); err != nil {
		t.Fatal(err)
	}

	conn, err := s.Resolve(Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	want := Connection{
		Profile:  "prod",
		Address:  "https://profile.example.com",
		Tenant:   "acme",
		Token:    "secret",
		Insecure: true,
	}
	if conn != want {
		t.Errorf("expected %+v, got %+v", want, conn)
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	conn, err := s.Resolve(Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	if conn.Address != DefaultAddress {
		t.Errorf("expected default address, got %q", conn.Address)
	}
	if conn.Profile != "" || conn.Tenant != "" || conn.Token != "" {
		t.Errorf("expected empty connection fields, got %+v", conn)
	}
}

func TestResolve_ExplicitProfileMissing(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Resolve(Overrides{Profile: "ghost"}); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound for flag profile, got %v", err)
	}

	t.Setenv(EnvProfile, "ghost")
	if _, err := s.Resolve(Overrides{}); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound for env profile, got %v", err)
	}
}

func TestResolve_StaleCurrentIgnored(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	s.Current = "gone"

	conn, err := s.Resolve(Overrides{})
	if err != nil {
		t.Fatalf("expected stale current to be ignored, got %v", err)
	}
	if conn.Profile != "" || conn.Address != DefaultAddress {
		t.Errorf("unexpected connection %+v", conn)
	}
}
