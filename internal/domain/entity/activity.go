// internal/domain/entity/activity.go
package entity

import (
	"fmt"
	"strings"
)

// Activity difficulty levels
const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
)

// Review is a third-party review excerpt attached to an activity or hotel.
type Review struct {
	Source  string  `json:"source" bson:"source"`
	Snippet string  `json:"snippet" bson:"snippet"`
	Rating  float64 `json:"rating" bson:"rating"`
}

// Activity is one bookable or free experience. Selected is the only field
// a user may change after generation.
type Activity struct {
	ID              string   `json:"id" bson:"id"`
	Name            string   `json:"name" bson:"name"`
	Category        string   `json:"category" bson:"category"`
	Duration        string   `json:"duration" bson:"duration"`
	Cost            float64  `json:"cost" bson:"cost"`
	Location        string   `json:"location" bson:"location"`
	Difficulty      string   `json:"difficulty" bson:"difficulty"`
	SafetyScore     float64  `json:"safetyScore" bson:"safetyScore"`
	BookingRequired bool     `json:"bookingRequired" bson:"bookingRequired"`
	InfoLink        string   `json:"infoLink" bson:"infoLink"`
	Review          Review   `json:"review" bson:"review"`
	LocalTips       []string `json:"localTips" bson:"localTips"`
	Selected        bool     `json:"selected" bson:"selected"`
}

// Validate checks the activity's schema invariants.
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("activity has no id")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("activity %s has no name", a.ID)
	}
	if a.Cost < 0 {
		return fmt.Errorf("activity %q has negative cost %.2f", a.Name, a.Cost)
	}
	if err := validateScore(fmt.Sprintf("activity %q safety score", a.Name), a.SafetyScore); err != nil {
		return err
	}
	switch a.Difficulty {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
	default:
		return fmt.Errorf("activity %q has unknown difficulty %q", a.Name, a.Difficulty)
	}
	return nil
}

// ActivityCategory groups discovered activities under one theme.
type ActivityCategory struct {
	Category   string     `json:"category" bson:"category"`
	Activities []Activity `json:"activities" bson:"activities"`
}

// DailyTheme is a suggested shape for one day, produced by the activity
// agent and consumed by synthesis.
type DailyTheme struct {
	Day                   int      `json:"day" bson:"day"`
	Theme                 string   `json:"theme" bson:"theme"`
	RecommendedActivities []string `json:"recommendedActivities" bson:"recommendedActivities"`
	LogisticalNotes       []string `json:"logisticalNotes" bson:"logisticalNotes"`
}

// ActivityCatalog is the Phase 2 activity-discovery output.
type ActivityCatalog struct {
	Destination        string             `json:"destination" bson:"destination"`
	Categories         []ActivityCategory `json:"categories" bson:"categories"`
	DailyThemes        []DailyTheme       `json:"dailyThemes" bson:"dailyThemes"`
	HiddenGems         []string           `json:"hiddenGems" bson:"hiddenGems"`
	SeasonalHighlights []string           `json:"seasonalHighlights" bson:"seasonalHighlights"`
	LocalExpertTips    []string           `json:"localExpertTips" bson:"localExpertTips"`
}

// Validate checks the catalog and every activity in it.
func (c *ActivityCatalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("no activity categories returned")
	}
	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.Category == "" {
			return fmt.Errorf("activity category with empty name")
		}
		if len(cat.Activities) == 0 {
			return fmt.Errorf("category %q has no activities", cat.Category)
		}
		for i := range cat.Activities {
			act := &cat.Activities[i]
			if err := act.Validate(); err != nil {
				return err
			}
			if seen[act.ID] {
				return fmt.Errorf("duplicate activity id %s", act.ID)
			}
			seen[act.ID] = true
		}
	}
	return nil
}

// Flatten returns every activity across all categories, tagged with its
// category, in catalog order. Used to feed the cost estimation agent.
func (c *ActivityCatalog) Flatten() []Activity {
	var all []Activity
	for _, cat := range c.Categories {
		for _, act := range cat.Activities {
			if act.Category == "" {
				act.Category = cat.Category
			}
			all = append(all, act)
		}
	}
	return all
}
