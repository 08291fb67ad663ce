package services

import (
	"fmt"
	"strings"
)

type SectionKind string

const (
	SectionRecommendations SectionKind = "recommendations"
	SectionItinerary       SectionKind = "itinerary"
	SectionSafety          SectionKind = "safety"
)

var sectionOrder = []SectionKind{SectionRecommendations, SectionItinerary, SectionSafety}

func buildPrompt(kind SectionKind, t Trip) string {
	switch kind {
	case SectionRecommendations:
		return recommendationsPrompt(t)
	case SectionItinerary:
		return itineraryPrompt(t)
	case SectionSafety:
		return safetyPrompt(t)
	}
	return ""
}

func recommendationsPrompt(t Trip) string {
	dietary := "None"
	if len(t.Dietary) > 0 {
		dietary = strings.Join(t.Dietary, ", ")
	}

	return fmt.Sprintf(`You are an expert student travel advisor. Create detailed, practical recommendations.

**Trip Details:**
- From: %s → To: %s
- Duration: %d days
- Total Budget: $%d ($%d/day)
- Travelers: %d
- Style: %s
- Interests: %s
- Has Student ID: %t
- Dietary: %s
- Accessibility needs: %t

**Provide detailed sections for:**
1. 🚂 **Transportation** - Cheapest ways to get there & around
2. 🏨 **Accommodation** - Budget-friendly options with price ranges
3. 📍 **Must-Visit Places** - Top attractions matching interests
4. 🍕 **Budget Food** - Where to eat cheap & delicious
5. 🎟️ **Student Discounts** - Specific discounts available
6. 💡 **Money-Saving Hacks** - Insider tips

Use markdown formatting with headers, bullet points, and emojis.`,
		t.Origin, t.Destination, t.Days, t.Budget, t.PerDay, t.Travelers,
		t.TravelStyle, joinInterests(t.Interests), t.StudentID, dietary, t.Accessibility)
}

func itineraryPrompt(t Trip) string {
	return fmt.Sprintf(`Create a detailed %d-day itinerary for %s.

**Parameters:**
- Daily budget: $%d
- Interests: %s
- Travel style: %s
- Travelers: %d

**Format each day as:**
## Day X: [Theme]
### 🌅 Morning (9:00-12:00)
- Activity with location
- Estimated cost: $X

### ☀️ Afternoon (12:00-18:00)
- Activity with location
- Estimated cost: $X

### 🌙 Evening (18:00-22:00)
- Activity with location
- Estimated cost: $X

**Daily Total: $X**

Include walking times between locations and practical tips.`,
		t.Days, t.Destination, t.PerDay, joinInterests(t.Interests), t.TravelStyle, t.Travelers)
}

func safetyPrompt(t Trip) string {
	return fmt.Sprintf(`Provide comprehensive safety information for students visiting %s.

**Include:**
1. ⚠️ **Common Scams** - Specific to this destination
2. 🚇 **Transportation Safety** - Public transit tips
3. 📍 **Areas to Avoid** - Neighborhoods, times
4. 🆘 **Emergency Contacts** - Local numbers
5. 🏥 **Health Tips** - Vaccinations, water safety
6. 📱 **Digital Safety** - WiFi, cards
7. 🌙 **Night Safety** - For solo and group travelers

Be specific to %s with practical, actionable advice.`, t.Destination, t.Destination)
}
