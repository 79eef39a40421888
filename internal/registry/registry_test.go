package registry

import (
	"testing"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	info, ok := Lookup("zz-stub")
	if !ok || info.Title != "Stub zz-stub" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	g, err := Create("aa-stub")
	if err != nil || g.ID() != "aa-stub" {
		t.Errorf("Create() = %v, %v", g, err)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("missing") {
		t.Error("Exists() should be false for unknown game")
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
