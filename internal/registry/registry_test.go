package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) ScreenSize() (int, int) { return 10, 5 }
func (g *stubGame) ActionForKey(rune) core.Action { return core.ActionNone }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists should report registered game")
	}
	if Exists("missing") {
		t.Error("Exists should be false for unknown game")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, want ErrUnknownGame", err)
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestInfoRecordsScreenSize(t *testing.T) {
	Register("zz_info", func() Game { return &stubGame{id: "zz_info"} })

	info, ok := Info("zz_info")
	if !ok {
		t.Fatal("Info should find registered game")
	}
	if info.Title != "Stub zz_info" || info.Width != 10 || info.Height != 5 {
		t.Errorf("Info() = %+v", info)
	}

	if _, ok := Info("missing"); ok {
		t.Error("Info should be false for unknown game")
	}
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with empty ID should panic")
		}
	}()
	Register("", func() Game { return &stubGame{} })
}
