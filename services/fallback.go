package services

import (
	"fmt"
	"strings"
)

// FallbackContent is the static text for a section when no generated text is
// available. Only the destination, day count and budget figures vary.
func FallbackContent(kind SectionKind, destination string, days, budget int) string {
	if days <= 0 {
		days = 1
	}
	perDay := budget / days

	switch kind {
	case SectionRecommendations:
		return fmt.Sprintf(recommendationsFallback, destination)
	case SectionItinerary:
		return itineraryFallback(destination, days, perDay)
	case SectionSafety:
		return fmt.Sprintf(safetyFallback, destination)
	}
	return "Content unavailable"
}

func itineraryFallback(destination string, days, perDay int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 📅 %d-Day Itinerary for %s\n\n---\n\n", days, destination)

	fmt.Fprintf(&b, `### Day 1: Arrival & Orientation
**Daily Budget: $%d**

#### 🌅 Morning (9:00-12:00)
- Arrive and check into accommodation
- Get oriented with a neighborhood walk
- Pick up local SIM card/transit pass
- *Cost: $10-20 (transit pass)*

#### ☀️ Afternoon (12:00-18:00)
- Join a FREE walking tour (tip-based)
- Explore the main square/downtown area
- Coffee break at a local café
- *Cost: $10-15 (tour tip + coffee)*

#### 🌙 Evening (18:00-22:00)
- Visit a local market for dinner
- Evening stroll through historic area
- Early night to recover from travel
- *Cost: $10-15 (dinner)*

**Day 1 Total: ~$30-50**

---

### Day 2: Culture & Landmarks
**Daily Budget: $%d**

#### 🌅 Morning (9:00-12:00)
- Visit top attraction (use student discount!)
- Take photos and explore thoroughly
- *Cost: $8-15 (discounted entry)*

#### ☀️ Afternoon (12:00-18:00)
- Lunch at a budget-friendly local spot
- Explore museum or cultural site
- Wander through artsy neighborhood
- *Cost: $15-25 (lunch + museum)*

#### 🌙 Evening (18:00-22:00)
- Sunset at a scenic viewpoint
- Dinner at recommended local restaurant
- Optional: bar hopping with hostel friends
- *Cost: $15-25 (dinner + drinks)*

**Day 2 Total: ~$40-65**

---

### Day 3+: Explore & Discover
**Daily Budget: $%d**

#### 🌅 Morning
- Day trip to nearby attraction OR
- Visit remaining must-see spots
- *Cost: $10-30*

#### ☀️ Afternoon
- Shopping at local markets
- Try regional specialty foods
- *Cost: $20-35*

#### 🌙 Evening
- Farewell dinner at favorite spot
- Pack and prepare for departure
- *Cost: $15-25*

**Day 3 Total: ~$45-90**

---

`, perDay, perDay, perDay)

	fmt.Fprintf(&b, `## 💰 Budget Summary
- **Accommodation**: $%d-$%d (%d nights)
- **Food**: $%d-$%d
- **Activities**: $%d-$%d
- **Transport**: $20-50
- **Buffer**: $30-50

**Estimated Total: $%d-$%d**
`, days*25, days*40, days, days*25, days*35, days*15, days*25, days*65, days*100)

	return b.String()
}

const recommendationsFallback = `## 🎒 Budget Travel Tips for %s

### ✈️ Transportation Options
- **Budget Airlines**: Look for Ryanair, EasyJet, Norwegian, or similar low-cost carriers
- **Trains**: Book in advance for up to 50%% off on rail passes
- **Buses**: FlixBus and similar services for intercity travel
- **Local Transit**: Get multi-day passes for public transportation

### 🏨 Accommodation Recommendations
- **Hostels**: $15-40/night - Great for meeting other travelers
- **Airbnb**: $30-60/night - Look for shared apartments
- **Couchsurfing**: Free! Great cultural exchange
- **Student Housing**: Check university dorms during summer

### 📍 Must-Visit Places
- Main historical/cultural attractions
- Free walking tour (tip-based)
- Local markets and neighborhoods
- Parks and public spaces

### 🍕 Budget Food Guide
- **Street Food**: $3-8 per meal
- **Local Markets**: Fresh produce and local specialties
- **Supermarkets**: Prepare your own meals
- **Lunch Specials**: Many restaurants offer deals

### 🎟️ Student Discounts
- Bring your student ID everywhere!
- ISIC card for international discounts
- Museum free days (often first Sunday)
- Youth hostel memberships

### 💡 Money-Saving Hacks
- Travel during shoulder season
- Book attractions online in advance
- Use free WiFi instead of data roaming
- Carry a reusable water bottle
`

const safetyFallback = `## 🛡️ Safety Guide for %s

### ⚠️ Common Scams to Avoid
- **Petition Scams**: People asking you to sign petitions, then demanding money
- **Friendship Bracelet**: Someone ties a bracelet on your wrist, demands payment
- **Fake Police**: Always ask for official ID; real police won't ask for your wallet
- **Taxi Overcharging**: Use ride apps or agree on price beforehand
- **"Free" Gifts**: Nothing is free - politely decline and walk away
- **Distraction Theft**: One person distracts while another pickpockets

### 🚇 Transportation Safety
- Keep bags in front of you on public transit
- Avoid empty train cars late at night
- Use official taxi stands or ride-sharing apps
- Don't accept rides from unmarked vehicles
- Keep a hand on your belongings at all times

### 📍 Areas & Times to Be Careful
- Tourist hotspots (prime pickpocket areas)
- Train stations and airports
- ATM areas (especially at night)
- Avoid poorly lit streets after dark
- Be extra cautious on weekends/holidays

### 🆘 Emergency Information
- **EU Emergency**: 112
- **Police**: Contact local authorities
- **Embassy**: Save your country's embassy contact
- **Travel Insurance**: ALWAYS have it - keep policy number handy

### 🏥 Health Tips
- Check if tap water is safe to drink
- Bring basic medications from home
- Locate nearest pharmacy and hospital
- Keep prescription meds in original packaging
- EU Health Insurance Card (for EU citizens)

### 📱 Digital Safety
- Use VPN on public WiFi
- Don't access banking on public networks
- Keep phone charged (portable battery!)
- Share location with trusted contact
- Back up important documents to cloud

### 🌙 Night Safety Tips
- Stick to well-lit, busy areas
- Travel in groups when possible
- Share your location with friends
- Trust your instincts - if it feels wrong, leave
- Have your accommodation address saved offline

### 💡 General Tips
- Make copies of passport & important docs
- Keep emergency cash separate from wallet
- Learn a few local phrases
- Dress to blend in (avoid looking too touristy)
- Be confident - scammers target confused tourists
`
