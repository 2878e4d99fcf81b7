package roadmap

import (
	"math"
	"strconv"
	"strings"
)

const (
	// MinMinutes and MaxMinutes bound the minutes used in plan text.
	MinMinutes = 5
	MaxMinutes = 30
	// DefaultMinutes is used when the raw minutes value does not parse.
	DefaultMinutes = 10
)

// Input carries the normalized request parameters for plan generation.
// Callers parse minutes with ParseMinutes and may apply their own wider
// clamp first; Generate always applies [MinMinutes, MaxMinutes] itself.
type Input struct {
	Minutes  float64
	Energy   string
	Focus    string
	ClientID string
}

// ParseMinutes parses a raw minutes value, falling back to DefaultMinutes
// when it is not a finite number.
func ParseMinutes(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultMinutes
	}
	return f
}

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resolveFocus lowercases the raw focus and coerces unknown values to routine.
func resolveFocus(raw string) Focus {
	f := Focus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := focusProfiles[f]; !ok {
		return FocusRoutine
	}
	return f
}

// resolveAnchor maps energy to the time-anchor phrase used in plan copy.
// Unrecognized energies are not rejected; they anchor to "your best time".
func resolveAnchor(energy string) string {
	switch energy {
	case "morning":
		return "morning"
	case "evening":
		return "evening"
	default:
		return "your best time"
	}
}

func formatMinutes(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Generate produces the 7-day plan for the given inputs. It is a pure
// function and total over its coerced input space; it cannot fail.
func Generate(in Input) *Result {
	focus := resolveFocus(in.Focus)
	energy := strings.ToLower(strings.TrimSpace(in.Energy))
	anchor := resolveAnchor(energy)
	mins := Clamp(in.Minutes, MinMinutes, MaxMinutes)
	profile := focusProfiles[focus]

	var badgeHint *string
	switch focus {
	case FocusRoutine:
		hint := "Early Bird"
		badgeHint = &hint
	case FocusEmpathy:
		hint := "Resilient"
		badgeHint = &hint
	}

	return &Result{
		Meta: Meta{
			Focus:    focus,
			Theme:    profile.Theme,
			Why:      profile.Why,
			Minutes:  mins,
			Energy:   energy,
			ClientID: in.ClientID,
		},
		Days:             buildDays(formatMinutes(mins), anchor, focus),
		BadgeHint:        badgeHint,
		CoachingReminder: coachingReminder,
	}
}
