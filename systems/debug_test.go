package systems

import (
	"strings"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestDebugStatus(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	SetupPlayer(e)
	GetOrCreateSelection(e).SetIndex(1)

	status := debugStatus(e)
	for _, want := range []string{"selection: 1", "player: 0.00, 0.00"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
}
