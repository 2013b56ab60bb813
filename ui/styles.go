package ui

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a variant or size has no style.
var ErrUnknownVariant = errors.New("ui: unknown variant")

// Style is a space-separated class descriptor.
type Style string

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGlass     ButtonVariant = "glass"
)

// ButtonVariants lists every button variant.
var ButtonVariants = []ButtonVariant{ButtonPrimary, ButtonSecondary, ButtonOutline, ButtonGlass}

type ButtonSize string

const (
	SizeSmall  ButtonSize = "sm"
	SizeMedium ButtonSize = "md"
	SizeLarge  ButtonSize = "lg"
)

// ButtonSizes lists every button size.
var ButtonSizes = []ButtonSize{SizeSmall, SizeMedium, SizeLarge}

type CardVariant string

const (
	CardDefault     CardVariant = "default"
	CardElevated    CardVariant = "elevated"
	CardTestimonial CardVariant = "testimonial"
	CardPricing     CardVariant = "pricing"
)

// CardVariants lists every card variant.
var CardVariants = []CardVariant{CardDefault, CardElevated, CardTestimonial, CardPricing}

const buttonBase Style = "inline-flex items-center justify-center font-semibold rounded-2xl transition-all duration-300 transform focus:outline-none focus:ring-2 focus:ring-orange-500 focus:ring-opacity-50 focus:ring-offset-2 focus:ring-offset-white"

var buttonStyles = map[ButtonVariant]Style{
	ButtonPrimary:   "gradient-bg text-white hover:shadow-lg glow-orange premium-shadow",
	ButtonSecondary: "bg-white text-gray-800 hover:bg-gray-50 premium-shadow border border-gray-200",
	ButtonOutline:   "border-2 border-orange-500 text-orange-500 hover:bg-orange-500 hover:text-white premium-glassmorphism",
	ButtonGlass:     "premium-glassmorphism text-gray-800 hover:elevated-glassmorphism",
}

var sizeStyles = map[ButtonSize]Style{
	SizeSmall:  "px-5 py-2.5 text-sm",
	SizeMedium: "px-7 py-3.5 text-base",
	SizeLarge:  "px-9 py-4.5 text-lg",
}

var cardStyles = map[CardVariant]Style{
	CardDefault:     "premium-glassmorphism",
	CardElevated:    "elevated-glassmorphism",
	CardTestimonial: "testimonial-glassmorphism",
	CardPricing:     "premium-glassmorphism hover:elevated-glassmorphism",
}

// Style resolves the variant; the empty variant is primary.
func (v ButtonVariant) Style() (Style, error) {
	if v == "" {
		v = ButtonPrimary
	}
	s, ok := buttonStyles[v]
	if !ok {
		return "", fmt.Errorf("%w: button %q", ErrUnknownVariant, string(v))
	}
	return s, nil
}

// Style resolves the size; the empty size is medium.
func (s ButtonSize) Style() (Style, error) {
	if s == "" {
		s = SizeMedium
	}
	st, ok := sizeStyles[s]
	if !ok {
		return "", fmt.Errorf("%w: size %q", ErrUnknownVariant, string(s))
	}
	return st, nil
}

// Style resolves the variant; the empty variant is default.
func (v CardVariant) Style() (Style, error) {
	if v == "" {
		v = CardDefault
	}
	s, ok := cardStyles[v]
	if !ok {
		return "", fmt.Errorf("%w: card %q", ErrUnknownVariant, string(v))
	}
	return s, nil
}

// ValidateStyles checks that every enumerated variant and size has a
// non-empty style. Call it once at startup.
func ValidateStyles() error {
	for _, v := range ButtonVariants {
		if s, err := v.Style(); err != nil || s == "" {
			return fmt.Errorf("%w: button %q has no style", ErrUnknownVariant, string(v))
		}
	}
	for _, sz := range ButtonSizes {
		if s, err := sz.Style(); err != nil || s == "" {
			return fmt.Errorf("%w: size %q has no style", ErrUnknownVariant, string(sz))
		}
	}
	for _, v := range CardVariants {
		if s, err := v.Style(); err != nil || s == "" {
			return fmt.Errorf("%w: card %q has no style", ErrUnknownVariant, string(v))
		}
	}
	return nil
}

func join(parts ...Style) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += string(p)
	}
	return out
}
