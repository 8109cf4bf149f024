package registry

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/life"
)

type stubPattern struct{ id string }

func (s stubPattern) ID() string    { return s.id }
func (s stubPattern) Title() string { return strings.ToUpper(s.id) }
func (s stubPattern) Seed(g *life.Grid, _ *rand.Rand, _ float64) {
	g.SetCell(0, 0, life.Alive)
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub-b", func() Pattern { return stubPattern{"zz-stub-b"} })
	Register("zz-stub-a", func() Pattern { return stubPattern{"zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Fatal("Exists(zz-stub-a) = false after Register")
	}

	p, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g := life.NewGrid(3, 3)
	p.Seed(g, rand.New(rand.NewSource(1)), 0)
	if !g.IsAlive(0, 0) {
		t.Error("created pattern did not seed the grid")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz-stub-") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "zz-stub-a=ZZ-STUB-A,zz-stub-b=ZZ-STUB-B" {
		t.Errorf("List() = %s, expected sorted stubs with titles", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-pattern"); err == nil {
		t.Error("Create should fail for an unknown ID")
	}
	if Exists("no-such-pattern") {
		t.Error("Exists should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Pattern { return stubPattern{"zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Pattern { return stubPattern{"zz-dup"} })
}
