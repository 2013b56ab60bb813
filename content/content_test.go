package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContentLoads(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Bistro", s.Brand)
	assert.Len(t, s.Home.Stats, 4)
	assert.Len(t, s.Home.Services, 4)
	assert.Len(t, s.Home.Steps, 4)
	assert.Len(t, s.Home.Testimonials, 3)
	assert.Len(t, s.About.Values, 4)
	assert.Len(t, s.About.Expertise, 3)
	assert.Len(t, s.Pricing.Plans, 3)
	assert.Len(t, s.Pricing.FAQs, 5)
	assert.Len(t, s.Contact.Channels, 4)
	assert.Len(t, s.Contact.Benefits, 2)
	assert.Equal(t, 15, s.Pricing.YearlyDiscount)
}

func TestYearlyDisplayPriceIsFlooredTwelfth(t *testing.T) {
	s := MustDefault()
	want := map[string]int{
		"Basic Plan":   249,
		"Growth Plan":  665,
		"Premium Plan": 1249,
	}
	for _, p := range s.Pricing.Plans {
		assert.Equal(t, p.YearlyPrice/12, p.DisplayPrice(Yearly), p.Name)
		assert.Equal(t, want[p.Name], p.DisplayPrice(Yearly), p.Name)
		assert.Equal(t, p.MonthlyPrice, p.DisplayPrice(Monthly), p.Name)
	}
}

func TestBillingToggle(t *testing.T) {
	b := ParseBilling("")
	assert.Equal(t, Monthly, b)
	b.Toggle()
	assert.Equal(t, Yearly, b)
	b.Toggle()
	assert.Equal(t, Monthly, b)

	assert.Equal(t, Yearly, ParseBilling("yearly"))
	assert.Equal(t, Monthly, ParseBilling("YEARLY"))
	assert.Equal(t, "yearly", Yearly.String())
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$249", FormatDollars(249))
	assert.Equal(t, "$2,990", FormatDollars(2990))
	assert.Equal(t, "$14,990", FormatDollars(14990))
}

func TestDiscountLabel(t *testing.T) {
	assert.Equal(t, "Save 15%", Pricing{YearlyDiscount: 15}.DiscountLabel())
}

func TestMarkdownAnswer(t *testing.T) {
	got := string(FAQ{Answer: "Within **30 days**."}.AnswerHTML())
	assert.Equal(t, "Within <strong>30 days</strong>.", got)

	got = string(Markdown("<script>alert(1)</script>"))
	assert.NotContains(t, got, "<script>")
}

func TestParseRejectsUnknownIcon(t *testing.T) {
	doc := strings.Replace(string(Embedded()), "icon: coffee", "icon: teapot", 1)
	_, err := Parse("test", strings.NewReader(doc))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Contains(t, verr.Field, "About.Values[1].Icon")
	assert.Contains(t, verr.Message, "teapot")
}

func TestParseRequiresOnePopularPlan(t *testing.T) {
	doc := strings.Replace(string(Embedded()), "popular: true", "popular: false", 1)
	_, err := Parse("test", strings.NewReader(doc))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "Pricing.Plans", verr.Field)
}

func TestParseRejectsWrongHomeCardCount(t *testing.T) {
	doc := strings.Replace(string(Embedded()), "    - value: 6 Months\n      label: Average ROI Timeline\n", "", 1)
	_, err := Parse("test", strings.NewReader(doc))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "Home.Stats", verr.Field)
}

func TestParseReportsYAMLLine(t *testing.T) {
	_, err := Parse("broken.yaml", strings.NewReader("brand: Bistro\nhome:\n  stats: [\n"))

	var lerr *LoadError
	require.True(t, errors.As(err, &lerr), "got %v", err)
	assert.Equal(t, "broken.yaml", lerr.Source)
	assert.Contains(t, lerr.Error(), "broken.yaml")
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse("x", strings.NewReader("brand: Bistro\nmascot: cat\n"))
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr), "got %v", err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("empty", strings.NewReader(""))
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr), "got %v", err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := strings.Replace(string(Embedded()), "brand: Bistro", "brand: Brasserie", 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Brasserie", s.Brand)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
}
