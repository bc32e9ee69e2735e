package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

var sample = []domain.Recipe{
	{ID: 5, Title: "Caesar Salad", Time: 15, Difficulty: domain.DifficultyEasy,
		Description: "Crisp lettuce with Caesar dressing.", Category: "salad"},
	{ID: 3, Title: "Beef Wellington", Time: 90, Difficulty: domain.DifficultyHard,
		Description: "Beef wrapped in puff pastry.", Category: "gourmet"},
}

func TestCards(t *testing.T) {
	got := Cards(sample)
	want := []Card{
		{ID: 5, Title: "Caesar Salad", Minutes: 15, Duration: "15 min", Difficulty: "easy",
			Description: "Crisp lettuce with Caesar dressing."},
		{ID: 3, Title: "Beef Wellington", Minutes: 90, Duration: "90 min", Difficulty: "hard",
			Description: "Beef wrapped in puff pastry."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cards (-want +got):\n%s", diff)
	}
}

func TestCardsEmpty(t *testing.T) {
	if got := Cards(nil); len(got) != 0 {
		t.Fatalf("expected no cards, got %d", len(got))
	}
}

func TestHTMLStructure(t *testing.T) {
	markup, err := HTML(Cards(sample))
	if err != nil {
		t.Fatalf("html: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cards := doc.Find(".recipe-card")
	if cards.Length() != 2 {
		t.Fatalf("expected 2 cards, got %d", cards.Length())
	}

	first := cards.First()
	if id, _ := first.Attr("data-id"); id != "5" {
		t.Fatalf("expected data-id 5, got %q", id)
	}
	if got := first.Find("h3").Text(); got != "Caesar Salad" {
		t.Fatalf("title: got %q", got)
	}
	if got := first.Find(".recipe-meta span").First().Text(); !strings.HasSuffix(got, "15 min") {
		t.Fatalf("duration: got %q", got)
	}
	diff := first.Find("span.difficulty")
	if !diff.HasClass("easy") || diff.Text() != "easy" {
		t.Fatalf("difficulty span: class easy=%v text=%q", diff.HasClass("easy"), diff.Text())
	}
	if got := first.Find("p").Text(); got != "Crisp lettuce with Caesar dressing." {
		t.Fatalf("description: got %q", got)
	}
	if id, _ := cards.Last().Attr("data-id"); id != "3" {
		t.Fatalf("cards out of order, last data-id %q", id)
	}
}

func TestHTMLEmpty(t *testing.T) {
	markup, err := HTML(nil)
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if markup != "" {
		t.Fatalf("expected empty markup, got %q", markup)
	}
}

func TestHTMLEscapesText(t *testing.T) {
	markup, err := HTML([]Card{{
		ID:          1,
		Title:       `<script>alert("x")</script>`,
		Duration:    "5 min",
		Difficulty:  "easy",
		Description: "salt & pepper <b>bold</b>",
	}})
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if strings.Contains(markup, "<script>") || strings.Contains(markup, "<b>") {
		t.Fatalf("markup not escaped: %s", markup)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.Find("h3").Text(); got != `<script>alert("x")</script>` {
		t.Fatalf("title text: got %q", got)
	}
	if got := doc.Find("p").Text(); got != "salt & pepper <b>bold</b>" {
		t.Fatalf("description text: got %q", got)
	}
}
