package footprint

import (
	"fmt"
	"sort"

	"github.com/rshade/carbontrack/internal/config"
)

// Action identifies a what-if lifestyle change applied to an existing
// breakdown. Most actions are fixed multipliers on a single category; the
// diet and recycling actions recompute the category from the factor table.
type Action string

// Supported simulation actions.
const (
	// ActionBikeTwoDays replaces two weekly commute days with cycling or
	// walking (20% transport reduction).
	ActionBikeTwoDays Action = "bike-2-days"
	// ActionCarpool shares the commute three days per week (30% reduction).
	ActionCarpool Action = "carpool"
	// ActionPublicTransport switches the commute to public transport
	// (60% reduction).
	ActionPublicTransport Action = "public-transport"
	// ActionLEDBulbs switches household lighting to LED (15% reduction).
	ActionLEDBulbs Action = "led-bulbs"
	// ActionSolar installs rooftop solar (50% electricity reduction).
	ActionSolar Action = "solar"
	// ActionEfficientAppliances upgrades to efficient appliances
	// (20% reduction).
	ActionEfficientAppliances Action = "efficient-appliances"
	// ActionReduceMeat steps the diet down one tier in the country's diet
	// factor ordering (by descending factor).
	ActionReduceMeat Action = "reduce-meat"
	// ActionGoVegetarian switches the diet to the Vegetarian factor.
	ActionGoVegetarian Action = "go-vegetarian"
	// ActionLocalFood buys locally produced food (10% diet reduction).
	ActionLocalFood Action = "local-food"
	// ActionCompost composts organic waste (30% waste reduction).
	ActionCompost Action = "compost"
	// ActionRecycleMore raises the recycling rate to 80%.
	ActionRecycleMore Action = "recycle-more"
	// ActionReduceWaste cuts waste generation by a quarter.
	ActionReduceWaste Action = "reduce-waste"
)

// ErrUnknownAction indicates an unrecognized simulation action name.
var ErrUnknownAction = constError("unknown simulation action")

// simulatedRecyclingPercent is the recycling rate assumed by
// ActionRecycleMore.
const simulatedRecyclingPercent = 80

// categoryMultipliers maps the fixed-multiplier actions to their category
// and factor.
//
//nolint:gochecknoglobals // Constant lookup table.
var categoryMultipliers = map[Action]struct {
	category   string
	multiplier float64
}{
	ActionBikeTwoDays:         {CategoryTransportation, 0.8},
	ActionCarpool:             {CategoryTransportation, 0.7},
	ActionPublicTransport:     {CategoryTransportation, 0.4},
	ActionLEDBulbs:            {CategoryElectricity, 0.85},
	ActionSolar:               {CategoryElectricity, 0.5},
	ActionEfficientAppliances: {CategoryElectricity, 0.8},
	ActionLocalFood:           {CategoryDiet, 0.9},
	ActionCompost:             {CategoryWaste, 0.7},
	ActionReduceWaste:         {CategoryWaste, 0.75},
}

// AllActions returns every supported action in stable order.
func AllActions() []Action {
	return []Action{
		ActionBikeTwoDays, ActionCarpool, ActionPublicTransport,
		ActionLEDBulbs, ActionSolar, ActionEfficientAppliances,
		ActionReduceMeat, ActionGoVegetarian, ActionLocalFood,
		ActionCompost, ActionRecycleMore, ActionReduceWaste,
	}
}

// ParseAction validates an action name.
func ParseAction(name string) (Action, error) {
	a := Action(name)
	if _, ok := categoryMultipliers[a]; ok {
		return a, nil
	}
	switch a {
	case ActionReduceMeat, ActionGoVegetarian, ActionRecycleMore:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// SimulationResult reports the effect of a set of actions on a breakdown.
type SimulationResult struct {
	Simulated      Breakdown `json:"simulated"`
	SavingsTonnes  float64   `json:"savings_tonnes"`
	SavingsPercent float64   `json:"savings_percent"`
}

// Simulate applies the given actions to a previously computed breakdown.
//
// The multiplier actions compose: selecting both the carpool and the
// public-transport actions multiplies transportation by 0.7 and then 0.4.
// ActionReduceMeat and ActionGoVegetarian replace the diet component from
// the factor table, and ActionRecycleMore recomputes the waste component at
// an 80% recycling rate, so Simulate needs the original input and factors.
func Simulate(
	b Breakdown,
	in Input,
	factors config.FactorTable,
	actions []Action,
) (SimulationResult, error) {
	region, ok := factors.Region(in.Country)
	if !ok {
		return SimulationResult{}, fmt.Errorf("%w: %q", ErrUnknownCountry, in.Country)
	}

	transport := b.Transportation
	electricity := b.Electricity
	diet := b.Diet
	waste := b.Waste

	for _, action := range actions {
		if m, isMultiplier := categoryMultipliers[action]; isMultiplier {
			switch m.category {
			case CategoryTransportation:
				transport *= m.multiplier
			case CategoryElectricity:
				electricity *= m.multiplier
			case CategoryDiet:
				diet *= m.multiplier
			case CategoryWaste:
				waste *= m.multiplier
			}
			continue
		}

		switch action {
		case ActionReduceMeat:
			factor, err := nextLowerDietFactor(region, in.DietType)
			if err != nil {
				return SimulationResult{}, err
			}
			diet = factor / KgPerTonne
		case ActionGoVegetarian:
			factor, vegOK := region.Diet["Vegetarian"]
			if !vegOK {
				return SimulationResult{}, fmt.Errorf("%w: %q", ErrUnknownDietType, "Vegetarian")
			}
			diet = factor / KgPerTonne
		case ActionRecycleMore:
			yearlyWaste := in.WeeklyWasteKg * WeeksPerYear
			unrecycled := yearlyWaste * (1 - float64(simulatedRecyclingPercent)/100)
			waste = region.Waste * unrecycled / KgPerTonne
		default:
			return SimulationResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
	}

	simulatedTotal := Round2(transport + electricity + diet + waste)
	savings := Round2(b.Total - simulatedTotal)
	percent := 0.0
	if b.Total > 0 {
		percent = Round1(savings / b.Total * 100)
	}

	return SimulationResult{
		Simulated: Breakdown{
			Transportation: Round2(transport),
			Electricity:    Round2(electricity),
			Diet:           Round2(diet),
			Waste:          Round2(waste),
			Total:          simulatedTotal,
		},
		SavingsTonnes:  savings,
		SavingsPercent: percent,
	}, nil
}

// nextLowerDietFactor returns the diet factor one tier below the current
// diet when diets are ordered by descending emission factor. The lowest
// tier stays unchanged.
func nextLowerDietFactor(region config.RegionFactors, current string) (float64, error) {
	currentFactor, ok := region.Diet[current]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDietType, current)
	}

	type tier struct {
		name   string
		factor float64
	}
	tiers := make([]tier, 0, len(region.Diet))
	for name, factor := range region.Diet {
		tiers = append(tiers, tier{name, factor})
	}
	sort.Slice(tiers, func(i, j int) bool {
		if tiers[i].factor != tiers[j].factor {
			return tiers[i].factor > tiers[j].factor
		}
		return tiers[i].name < tiers[j].name
	})

	for i, t := range tiers {
		if t.name == current && i+1 < len(tiers) {
			return tiers[i+1].factor, nil
		}
	}
	return currentFactor, nil
}
