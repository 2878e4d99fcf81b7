package roadmap

import "fmt"

// focusProfile pairs a focus with its plan theme and rationale.
type focusProfile struct {
	Theme string
	Why   string
}

var focusProfiles = map[Focus]focusProfile{
	FocusMotivation: {
		Theme: "Small wins → steady drive",
		Why:   "Momentum comes from finishing tiny reps, not from waiting to feel inspired.",
	},
	FocusBoundaries: {
		Theme: "Kind limits → more self-respect",
		Why:   "Saying no to one small thing each day teaches people how to treat your time.",
	},
	FocusEmpathy: {
		Theme: "Soft attention → stronger bonds",
		Why:   "A few minutes of genuine listening changes the tone of a whole relationship.",
	},
	FocusVisualization: {
		Theme: "Clear pictures → calmer starts",
		Why:   "Rehearsing the day in your head makes the first real step feel familiar.",
	},
	FocusRoutine: {
		Theme: "Tiny anchors → automatic days",
		Why:   "Habits attached to fixed anchors stop relying on willpower at all.",
	},
}

const coachingReminder = "Consistency beats intensity. Show up for the tiny version every single day."

// buildDays produces the fixed 7-entry plan. The copy is static per entry and
// parameterized only by the clamped minutes, the time anchor and the focus.
func buildDays(minutes string, anchor string, focus Focus) []DayPlan {
	return []DayPlan{
		{
			Title:       "Day 1: Name the habit",
			MicroAction: fmt.Sprintf("Pick one tiny %s habit and practice it for %s minutes during %s today.", focus, minutes, anchor),
			Reflection:  "What made today's rep feel doable?",
		},
		{
			Title:       "Day 2: Shrink it",
			MicroAction: fmt.Sprintf("Trim the habit until it fits comfortably inside %s minutes.", minutes),
			Reflection:  "Where was the friction, and what could you remove?",
		},
		{
			Title:       "Day 3: Anchor it",
			MicroAction: fmt.Sprintf("Attach your %s minutes to something you already do during %s.", minutes, anchor),
			Reflection:  "Did the anchor remind you without a reminder app?",
		},
		{
			Title:       "Day 4: Stack a cue",
			MicroAction: fmt.Sprintf("Place one visible cue for your %s habit where %s finds you.", focus, anchor),
			Reflection:  "Which cue caught your eye first?",
		},
		{
			Title:       "Day 5: Track the streak",
			MicroAction: fmt.Sprintf("Mark a calendar right after your %s minutes. Keep the chain alive.", minutes),
			Reflection:  "How did seeing the mark change your mood?",
		},
		{
			Title:       "Day 6: Recover fast",
			MicroAction: fmt.Sprintf("If yesterday slipped, restart with the smallest %s rep you can finish.", focus),
			Reflection:  "What is your minimum viable version of this habit?",
		},
		{
			Title:       "Day 7: Review and commit",
			MicroAction: fmt.Sprintf("Look back over the week and pick the one %s habit you will keep.", focus),
			Reflection:  "What will you tell yourself next time motivation dips?",
		},
	}
}
