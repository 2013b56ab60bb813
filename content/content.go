// Package content holds the site copy: every page's fixed records, loaded
// once from YAML and never mutated afterwards.
package content

import (
	_ "embed"
	"html/template"
)

// Item is the generic card record: a title, a description, an icon and a
// short list of bullet points.
type Item struct {
	Icon        string   `yaml:"icon" validate:"required,icon"`
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Features    []string `yaml:"features" validate:"dive,required"`
}

// Stat is a headline number.
type Stat struct {
	Value       string `yaml:"value" validate:"required"`
	Label       string `yaml:"label" validate:"required"`
	Description string `yaml:"description"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Name     string `yaml:"name" validate:"required"`
	Business string `yaml:"business" validate:"required"`
	Location string `yaml:"location"`
	Rating   int    `yaml:"rating" validate:"min=1,max=5"`
	Text     string `yaml:"text" validate:"required"`
	Image    string `yaml:"image" validate:"required"`
	Result   string `yaml:"result"`
}

// Plan is a pricing tier. Prices are whole dollars.
type Plan struct {
	Name         string   `yaml:"name" validate:"required"`
	Subtitle     string   `yaml:"subtitle"`
	MonthlyPrice int      `yaml:"monthly_price" validate:"gt=0"`
	YearlyPrice  int      `yaml:"yearly_price" validate:"gt=0"`
	Features     []string `yaml:"features" validate:"min=1,dive,required"`
	Popular      bool     `yaml:"popular"`
	Badge        string   `yaml:"badge"`
}

// FAQ is a question with a Markdown answer.
type FAQ struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// AnswerHTML renders the Markdown answer.
func (f FAQ) AnswerHTML() template.HTML {
	return Markdown(f.Answer)
}

// Channel is a way to reach the business.
type Channel struct {
	Icon        string `yaml:"icon" validate:"required,icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Detail      string `yaml:"detail"`
}

// Pillar is a short heading + paragraph used inside CTA cards.
type Pillar struct {
	Title string `yaml:"title" validate:"required"`
	Text  string `yaml:"text" validate:"required"`
}

// Hero is the opening block of a page.
type Hero struct {
	Title     string `yaml:"title" validate:"required"`
	Highlight string `yaml:"highlight"`
	Lead      string `yaml:"lead" validate:"required"`
}

// Section is a heading over a group of cards.
type Section struct {
	Title     string `yaml:"title" validate:"required"`
	Highlight string `yaml:"highlight"`
	Lead      string `yaml:"lead"`
}

// CTA is a call-to-action card.
type CTA struct {
	Title     string `yaml:"title" validate:"required"`
	Highlight string `yaml:"highlight"`
	Text      string `yaml:"text" validate:"required"`
}

type Home struct {
	Hero            Hero          `yaml:"hero"`
	Stats           []Stat        `yaml:"stats" validate:"len=4,dive"`
	ServicesSection Section       `yaml:"services_section"`
	Services        []Item        `yaml:"services" validate:"len=4,dive"`
	StepsSection    Section       `yaml:"steps_section"`
	Steps           []Item        `yaml:"steps" validate:"len=4,dive"`
	ClientsSection  Section       `yaml:"clients_section"`
	Testimonials    []Testimonial `yaml:"testimonials" validate:"len=3,dive"`
	CTA             CTA           `yaml:"cta"`
}

type About struct {
	Hero             Hero     `yaml:"hero"`
	Stats            []Stat   `yaml:"stats" validate:"len=4,dive"`
	ValuesSection    Section  `yaml:"values_section"`
	Values           []Item   `yaml:"values" validate:"min=1,dive"`
	ExpertiseSection Section  `yaml:"expertise_section"`
	Expertise        []Item   `yaml:"expertise" validate:"min=1,dive"`
	CTA              CTA      `yaml:"cta"`
	Pillars          []Pillar `yaml:"pillars" validate:"dive"`
}

type Pricing struct {
	Hero Hero `yaml:"hero"`
	// YearlyDiscount is the percentage shown on the "Save N%" label.
	YearlyDiscount int     `yaml:"yearly_discount" validate:"min=0,max=100"`
	Plans          []Plan  `yaml:"plans" validate:"min=1,dive"`
	FAQSection     Section `yaml:"faq_section"`
	FAQs           []FAQ   `yaml:"faqs" validate:"dive"`
	CTA            CTA     `yaml:"cta"`
}

type Contact struct {
	Hero      Hero      `yaml:"hero"`
	Channels  []Channel `yaml:"channels" validate:"min=1,dive"`
	Benefits  []Item    `yaml:"benefits" validate:"dive"`
	FormTitle string    `yaml:"form_title" validate:"required"`
	FormLead  string    `yaml:"form_lead"`
	CTA       CTA       `yaml:"cta"`
	Phone     string    `yaml:"phone" validate:"required"`
	Email     string    `yaml:"email" validate:"required,email"`
}

// Site is the whole site's copy.
type Site struct {
	Brand   string  `yaml:"brand" validate:"required"`
	Tagline string  `yaml:"tagline"`
	Home    Home    `yaml:"home"`
	About   About   `yaml:"about"`
	Pricing Pricing `yaml:"pricing"`
	Contact Contact `yaml:"contact"`
}

//go:embed content.yaml
var embedded []byte

// Embedded returns the raw bundled content document.
func Embedded() []byte {
	return embedded
}
