package bistro

import "testing"

func TestAbsoluteURL(t *testing.T) {
	tests := []struct{ base, route, want string }{
		{"https://bistro.example", "/", "https://bistro.example/"},
		{"https://bistro.example/", "/about/", "https://bistro.example/about/"},
		{"https://bistro.example/site/", "/pricing/", "https://bistro.example/site/pricing/"},
	}
	for _, tt := range tests {
		if got := absoluteURL(tt.base, tt.route); got != tt.want {
			t.Errorf("absoluteURL(%q, %q) = %q, want %q", tt.base, tt.route, got, tt.want)
		}
	}
}

func TestBuildSitemapPriorities(t *testing.T) {
	set := buildSitemap("https://bistro.example")
	if len(set.URLs) != len(Routes) {
		t.Fatalf("got %d URLs, want %d", len(set.URLs), len(Routes))
	}
	if set.URLs[0].Loc != "https://bistro.example/" || set.URLs[0].Priority != "1.0" {
		t.Errorf("home entry = %+v", set.URLs[0])
	}
	for _, u := range set.URLs {
		if u.Priority == "" {
			t.Errorf("%s has no priority", u.Loc)
		}
	}
}
