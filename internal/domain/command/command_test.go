package command

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"", Empty},
		{"   ", Empty},
		{"explore: x", ExploreArticles},
		{"explore:", ExploreArticles},
		{"open:2", OpenArticle},
		{"  open: 2  ", OpenArticle},
		{"res: sushi", SearchRestaurants},
		{"res-explore: American (New)", ExploreRestaurants},
		{"res-open: 1", OpenRestaurant},
		{"what is ml?", SearchArticles},
		{"Explore: x", SearchArticles},
		{"restaurants near me", SearchArticles},
		{"explorer: x", SearchArticles},
	}
	for _, tc := range tests {
		if got := Classify(tc.in); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestIsQuestion(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"what is ml?", true},
		{"what is ml?  ", true},
		{"what is ml", false},
		{"?", true},
		{"", false},
		{"explore: why?", true},
	}
	for _, tc := range tests {
		if got := IsQuestion(tc.in); got != tc.want {
			t.Errorf("IsQuestion(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestArgument(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"explore: how to", "how to"},
		{"explore:how to", "how to"},
		{"explore:", ""},
		{"explore:   ", ""},
		{"explore: a:b", "a b"},
		{"explore: a : b ", "a b"},
		{"open: 2", "2"},
		{"no colon", ""},
	}
	for _, tc := range tests {
		if got := Argument(tc.in); got != tc.want {
			t.Errorf("Argument(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		kind     Kind
		arg      string
		question bool
	}{
		{"  what is ml? ", SearchArticles, "what is ml?", true},
		{"t5 transformers", SearchArticles, "t5 transformers", false},
		{"res:  a place with drinks ", SearchRestaurants, "a place with drinks", false},
		{"explore: How To", ExploreArticles, "How To", false},
		{"res-explore: American (New)", ExploreRestaurants, "American (New)", false},
		{"open: 3", OpenArticle, "3", false},
		{"", Empty, "", false},
	}
	for _, tc := range tests {
		got := Parse(tc.in)
		if got.Kind != tc.kind || got.Arg != tc.arg || got.Question != tc.question {
			t.Errorf("Parse(%q) = %+v, want kind=%s arg=%q question=%v", tc.in, got, tc.kind, tc.arg, tc.question)
		}
	}
}

func TestKind_IsNavigation(t *testing.T) {
	nav := []Kind{ExploreArticles, OpenArticle, ExploreRestaurants, OpenRestaurant}
	for _, k := range nav {
		if !k.IsNavigation() {
			t.Errorf("%s should be navigation", k)
		}
	}
	for _, k := range []Kind{Empty, SearchArticles, SearchRestaurants} {
		if k.IsNavigation() {
			t.Errorf("%s should not be navigation", k)
		}
	}
}
