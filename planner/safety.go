package planner

import "fmt"

type SafetyCategory struct {
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
	Tips  []string `json:"tips"`
}

type SafetyGuide struct {
	Title      string           `json:"title"`
	Categories []SafetyCategory `json:"categories"`
}

var safetyCategories = []SafetyCategory{
	{
		Label: "General Safety",
		Icon:  "🛡️",
		Tips: []string{
			"Keep copies of important documents (passport, ID) in cloud storage",
			"Share your itinerary with family/friends",
			"Register with your embassy if traveling abroad",
			"Get travel insurance that covers medical emergencies",
		},
	},
	{
		Label: "Money & Valuables",
		Icon:  "💳",
		Tips: []string{
			"Use a money belt or hidden pouch for cash and cards",
			"Notify your bank of travel plans to avoid card blocks",
			"Keep emergency cash separate from main wallet",
			"Use ATMs inside banks during business hours",
		},
	},
	{
		Label: "Health",
		Icon:  "⚕️",
		Tips: []string{
			"Check if any vaccinations are required",
			"Bring necessary medications in original containers",
			"Drink bottled water if tap water isn't safe",
			"Know the location of nearest hospital/clinic",
		},
	},
	{
		Label: "Local Awareness",
		Icon:  "👁️",
		Tips: []string{
			"Research common scams in the destination",
			"Learn basic phrases in the local language",
			"Stay aware of your surroundings, especially at night",
			"Use licensed taxis or reputable rideshare apps",
		},
	},
}

// SafetyTips returns the static tip categories. The destination only shows up
// in the guide title.
func SafetyTips(destination string) SafetyGuide {
	cats := make([]SafetyCategory, len(safetyCategories))
	for i, c := range safetyCategories {
		tips := make([]string, len(c.Tips))
		copy(tips, c.Tips)
		cats[i] = SafetyCategory{Label: c.Label, Icon: c.Icon, Tips: tips}
	}
	return SafetyGuide{
		Title:      fmt.Sprintf("Safety Tips for %s", destination),
		Categories: cats,
	}
}
