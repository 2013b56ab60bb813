package motion

import "time"

// Springs shared by the interactive components.
var (
	ButtonSpring = Spring{Stiffness: 400, Damping: 17}
	CardSpring   = Spring{Stiffness: 300, Damping: 20}
	KnobSpring   = Spring{Stiffness: 500, Damping: 30}
)

const (
	// GroupStagger separates the children of an entrance group.
	GroupStagger = 150 * time.Millisecond
	// MenuStagger separates the links of the open mobile menu.
	MenuStagger = 100 * time.Millisecond
)

var (
	ButtonHover = Preset{
		Name:       "button-hover",
		Trigger:    OnHover,
		To:         Target{Y: -2, Scale: 1.05},
		Transition: Transition{Spring: &ButtonSpring},
	}
	ButtonPress = Preset{
		Name:       "button-press",
		Trigger:    OnPress,
		To:         Target{Scale: 0.95},
		Transition: Transition{Spring: &ButtonSpring},
	}
	CardLift = Preset{
		Name:       "card-lift",
		Trigger:    OnHover,
		To:         Target{Y: -8, Scale: 1.02},
		Transition: Transition{Spring: &CardSpring},
	}
	LogoHover = Preset{
		Name:       "logo-hover",
		Trigger:    OnHover,
		To:         Target{Scale: 1.05, Rotate: 5},
		Transition: Transition{Duration: 300 * time.Millisecond, Ease: EaseOut},
	}
	LinkHover = Preset{
		Name:       "link-hover",
		Trigger:    OnHover,
		To:         Target{Y: -2},
		Transition: Transition{Duration: 300 * time.Millisecond, Ease: EaseOut},
	}

	PageFade = Preset{
		Name:       "page-fade",
		Trigger:    OnMount,
		From:       Target{Opacity: Alpha(0)},
		To:         Target{Opacity: Alpha(1)},
		Transition: Transition{Duration: time.Second, Ease: EaseOut},
		Once:       true,
	}
	NavEntrance = Preset{
		Name:       "nav-entrance",
		Trigger:    OnMount,
		From:       Target{Y: -100, Opacity: Alpha(0)},
		To:         Target{Opacity: Alpha(1)},
		Transition: Transition{Duration: 800 * time.Millisecond, Ease: EaseOut},
		Once:       true,
	}
	ActiveIndicator = Preset{
		Name:       "active-indicator",
		Trigger:    OnMount,
		From:       Target{Scale: 0.8, Opacity: Alpha(0)},
		To:         Target{Scale: 1, Opacity: Alpha(1)},
		Transition: Transition{Duration: 300 * time.Millisecond},
		LayoutID:   "activeTab",
	}
	// MenuItem is scheduled with the link's index so each link lands
	// MenuStagger after the previous one.
	MenuItem = Preset{
		Name:       "menu-item",
		Trigger:    OnToggle,
		From:       Target{X: -20, Opacity: Alpha(0)},
		To:         Target{Opacity: Alpha(1)},
		Transition: Transition{Duration: 300 * time.Millisecond, Stagger: MenuStagger},
	}

	GroupReveal = Preset{
		Name:       "group-reveal",
		Trigger:    InView,
		From:       Target{Opacity: Alpha(0)},
		To:         Target{Opacity: Alpha(1)},
		Transition: Transition{Stagger: GroupStagger},
		Once:       true,
	}
	ItemReveal = Preset{
		Name:       "item-reveal",
		Trigger:    InView,
		From:       Target{Y: 60, Opacity: Alpha(0)},
		To:         Target{Opacity: Alpha(1)},
		Transition: Transition{Duration: 800 * time.Millisecond, Ease: EaseReveal, Stagger: GroupStagger},
		Once:       true,
	}
	ToggleKnob = Preset{
		Name:       "toggle-knob",
		Trigger:    OnToggle,
		Transition: Transition{Spring: &KnobSpring},
	}
	BadgeIn = Preset{
		Name:       "badge-in",
		Trigger:    OnMount,
		From:       Target{X: -10, Opacity: Alpha(0)},
		To:         Target{Opacity: Alpha(1)},
		Transition: Transition{Duration: 300 * time.Millisecond},
		Once:       true,
	}
)

// OnMountGroup is GroupReveal retriggered on mount, for hero sections that
// are visible before any scroll.
func OnMountGroup(p Preset) Preset {
	p.Trigger = OnMount
	return p
}

// KnobAt returns the toggle knob preset resting at x.
func KnobAt(x float64) Preset {
	p := ToggleKnob
	p.To = Target{X: x}
	return p
}
