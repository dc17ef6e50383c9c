package fsarcamp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type stubCampaign struct {
	root string
}

func (s *stubCampaign) Name() string { return "stub" }
func (s *stubCampaign) Root() string { return s.root }
func (s *stubCampaign) PassNames(band Band) ([]string, error) {
	return []string{"99stub0101"}, nil
}

func TestRegistry(t *testing.T) {
	Register("stub", func(root string) Campaign { return &stubCampaign{root: root} })

	ids := Campaigns()
	found := false
	for _, id := range ids {
		if id == "stub" {
			found = true
		}
	}
	if !found {
		t.Fatalf("registered campaign missing from Campaigns(): %v", ids)
	}

	root := t.TempDir()
	c, err := Open("stub", root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Root() != root {
		t.Errorf("Root() = %q, want %q", c.Root(), root)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func(root string) Campaign { return &stubCampaign{} })
	Register("dup", func(root string) Campaign { return &stubCampaign{} })
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open("no-such-campaign", t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown campaign: got %v, want ErrNotFound", err)
	}

	Register("stub-open", func(root string) Campaign { return &stubCampaign{root: root} })
	if _, err := Open("stub-open", filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing root: got %v, want ErrNotFound", err)
	}

	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open("stub-open", file); !errors.Is(err, ErrNotFound) {
		t.Errorf("non-directory root: got %v, want ErrNotFound", err)
	}
}
