package nav

import (
	"errors"
	"testing"
)

func TestNewStartsAtHome(t *testing.T) {
	n := New()

	if got := n.Current().Screen; got != ScreenHome {
		t.Fatalf("Current().Screen = %v, want %v", got, ScreenHome)
	}
	if n.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", n.Depth())
	}
}

func TestResultRouteMatchesPattern(t *testing.T) {
	if RouteResultPattern != "resultContent/?listData={listData}" {
		t.Fatalf("RouteResultPattern = %q", RouteResultPattern)
	}
	if got := ResultRoute("%5B%5D"); got != "resultContent/?listData=%5B%5D" {
		t.Fatalf("ResultRoute() = %q", got)
	}
}

func TestParseResultKeepsPayloadRaw(t *testing.T) {
	payload := "%5B%7B%22name%22%3A%22100%25%22%7D%5D"

	dest, err := Parse(ResultRoute(payload))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if dest.Screen != ScreenResult {
		t.Fatalf("Screen = %v, want %v", dest.Screen, ScreenResult)
	}
	if got := dest.Arg(ArgListData); got != payload {
		t.Fatalf("Arg(listData) = %q, want %q", got, payload)
	}
}

func TestParseResultWithoutArgDefaultsEmpty(t *testing.T) {
	for _, route := range []string{"resultContent/", "resultContent/?", "resultContent", "resultContent/?other=1"} {
		dest, err := Parse(route)
		if err != nil {
			t.Fatalf("Parse(%q): %v", route, err)
		}
		if got := dest.Arg(ArgListData); got != "" {
			t.Fatalf("Parse(%q) listData = %q, want empty", route, got)
		}
	}
}

func TestParseUnknownRoute(t *testing.T) {
	for _, route := range []string{"", "settings", "home?x=1", "resultContent/extra"} {
		if _, err := Parse(route); !errors.Is(err, ErrUnknownRoute) {
			t.Fatalf("Parse(%q) error = %v, want ErrUnknownRoute", route, err)
		}
	}
}

func TestNavigateAndBack(t *testing.T) {
	n := New()
	home := n.Current()

	dest, err := n.Navigate(ResultRoute("%5B%5D"))
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if n.Current().ID != dest.ID {
		t.Fatalf("Current() is not the pushed destination")
	}
	if dest.ID == home.ID {
		t.Fatalf("destinations share an id")
	}

	back, ok := n.Back()
	if !ok {
		t.Fatalf("Back() = false, want true")
	}
	if back.ID != home.ID || back.Screen != ScreenHome {
		t.Fatalf("Back() returned %v, want original home", back.Screen)
	}

	if _, ok := n.Back(); ok {
		t.Fatalf("Back() at root = true, want false")
	}
	if n.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", n.Depth())
	}
}

func TestNavigateUnknownLeavesStack(t *testing.T) {
	n := New()

	if _, err := n.Navigate("nowhere"); !errors.Is(err, ErrUnknownRoute) {
		t.Fatalf("Navigate error = %v, want ErrUnknownRoute", err)
	}
	if n.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", n.Depth())
	}
}
