package icons

import (
	"strings"
	"testing"
)

func TestEveryNameRenders(t *testing.T) {
	for _, n := range Names() {
		svg := SVG(n, "w-5 h-5")
		if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
			t.Errorf("SVG(%q) = %q, want an svg element", n, svg)
		}
		if !strings.Contains(svg, `data-icon="`+n+`"`) {
			t.Errorf("SVG(%q) missing data-icon attribute", n)
		}
	}
}

func TestUnknownIcon(t *testing.T) {
	if Has("divide") {
		t.Fatal("divide should not be a known icon")
	}
	if got := SVG("divide", ""); got != "" {
		t.Fatalf("SVG(unknown) = %q, want empty", got)
	}
}

func TestClassIsEscaped(t *testing.T) {
	svg := SVG(Check, `a"b`)
	if strings.Contains(svg, `class="a"b"`) {
		t.Fatalf("class attribute not escaped: %s", svg)
	}
}
