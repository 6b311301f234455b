package handlers

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildBookQuery_SortMapping(t *testing.T) {
	cases := []struct {
		order     string
		wantKey   string
		wantValue int
	}{
		{"highest", "average_rating", -1},
		{"lowest", "average_rating", 1},
		{"longest", "num_pages", -1},
		{"shortest", "num_pages", 1},
		{"", "bookID", 1},
		{"alphabetical", "bookID", 1},
	}

	for _, c := range cases {
		_, sort, _, _ := BuildBookQuery("", c.order, "")
		if len(sort) != 1 {
			t.Fatalf("order %q: expected single sort key, got %v", c.order, sort)
		}
		if sort[0].Key != c.wantKey || sort[0].Value != c.wantValue {
			t.Errorf("order %q: got sort %v, want {%s %d}", c.order, sort[0], c.wantKey, c.wantValue)
		}
	}
}

func TestBuildBookQuery_Pagination(t *testing.T) {
	cases := []struct {
		page     string
		wantSkip int64
	}{
		{"", 0},
		{"abc", 0},
		{"0", 0},
		{"-3", 0},
		{"1", 0},
		{"2", 20},
		{"5", 80},
	}

	for _, c := range cases {
		_, _, skip, limit := BuildBookQuery("", "", c.page)
		if skip != c.wantSkip {
			t.Errorf("page %q: got skip %d, want %d", c.page, skip, c.wantSkip)
		}
		if limit != PageSize {
			t.Errorf("page %q: got limit %d, want %d", c.page, limit, PageSize)
		}
	}
}

func TestBuildBookQuery_KeywordFilter(t *testing.T) {
	filter, _, _, _ := BuildBookQuery("Rowling", "", "")

	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or over two fields, got %v", filter)
	}

	empty, _, _, _ := BuildBookQuery("", "", "")
	if len(empty) != 0 {
		t.Errorf("expected empty filter without keyword, got %v", empty)
	}
}

func TestKeywordRegex_WholeWordCaseInsensitive(t *testing.T) {
	cases := []struct {
		keyword string
		text    string
		want    bool
	}{
		{"Rowling", "J.K.-Rowling", true},
		{"rowling", "J.K.-Rowling", true},
		{"row", "J.K.-Rowling", false},
		{"harry", "Harry Potter and the Chamber of Secrets", true},
		{"pot", "Harry Potter", false},
	}

	for _, c := range cases {
		re := KeywordRegex(c.keyword)
		matcher := regexp.MustCompile("(?" + re.Options + ")" + re.Pattern)
		if got := matcher.MatchString(c.text); got != c.want {
			t.Errorf("keyword %q against %q: got %v, want %v", c.keyword, c.text, got, c.want)
		}
	}
}

func TestKeywordRegex_QuotesMetacharacters(t *testing.T) {
	re := KeywordRegex("J.K")
	matcher := regexp.MustCompile("(?i)" + re.Pattern)

	if !matcher.MatchString("J.K.-Rowling") {
		t.Error("expected literal J.K to match")
	}
	if matcher.MatchString("JxK was here") {
		t.Error("expected the dot to be literal, not a wildcard")
	}
}
