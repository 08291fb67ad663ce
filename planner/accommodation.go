package planner

import "sort"

type AccommodationOption struct {
	Name            string            `json:"name"`
	Type            AccommodationType `json:"type"`
	Icon            string            `json:"icon"`
	PricePerNight   int               `json:"price_per_night"`
	PriceRange      PriceRange        `json:"price_range"`
	Location        string            `json:"location"`
	Rating          int               `json:"rating"`
	Amenities       []string          `json:"amenities"`
	StudentFriendly string            `json:"student_friendly"`
	Recommended     bool              `json:"recommended"`
}

// StayCost is the nightly price times the number of nights.
func (a AccommodationOption) StayCost(nights int) int {
	return a.PricePerNight * nights
}

// AccommodationRecommended is the per-type recommendation rule for an
// option that has been included.
func AccommodationRecommended(t AccommodationType, budget int, style TravelStyle) bool {
	switch t {
	case Hostel:
		return true
	case BudgetHotel:
		return style == ComfortSeeker || style == Balanced
	case StudentDorm:
		return budget < 500
	case Airbnb:
		return style == Balanced
	}
	return false
}

// SelectAccommodation builds one option per requested type, sorted by
// nightly price ascending. duration does not change which options are built;
// callers multiply by it via StayCost.
func SelectAccommodation(r Randomizer, destination string, duration int, types []AccommodationType, budget int, style TravelStyle) []AccommodationOption {
	wanted := make(map[AccommodationType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	options := make([]AccommodationOption, 0, len(wanted))
	for _, typ := range accommodationOrder {
		if !wanted[typ] {
			continue
		}
		tpl := accommodationCatalog[typ]
		amenities := make([]string, len(tpl.amenities))
		copy(amenities, tpl.amenities)

		options = append(options, AccommodationOption{
			Name:            destination + " " + tpl.nameSuffix,
			Type:            typ,
			Icon:            tpl.icon,
			PricePerNight:   DrawPrice(r, tpl.price),
			PriceRange:      tpl.price,
			Location:        tpl.location,
			Rating:          tpl.rating,
			Amenities:       amenities,
			StudentFriendly: tpl.studentFriendly,
			Recommended:     AccommodationRecommended(typ, budget, style),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].PricePerNight < options[j].PricePerNight
	})
	return options
}
