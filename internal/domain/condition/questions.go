package condition

const (
	StepOwnership        StepID = "ownership"
	StepTitleStatus      StepID = "title_status"
	StepDrivability      StepID = "drivability"
	StepMileage          StepID = "mileage"
	StepExteriorDamage   StepID = "exterior_damage"
	StepInteriorDamage   StepID = "interior_damage"
	StepMechanicalIssues StepID = "mechanical_issues"
	StepFloodFire        StepID = "flood_fire"
	StepAirbags          StepID = "airbags"
	StepMissingParts     StepID = "missing_parts"
	StepKeys             StepID = "keys"
	StepTires            StepID = "tires"
)

// Area sub-questions apply this delta per selected area.
const PerAreaPenalty = -25

var exteriorAreas = []Area{
	"front_bumper", "rear_bumper", "hood", "roof", "trunk",
	"driver_side", "passenger_side", "windshield",
}

var interiorAreas = []Area{
	"front_seats", "rear_seats", "dashboard", "headliner", "carpet", "door_panels",
}

// DefaultSteps returns the questionnaire in presentation order. A fresh slice
// is returned on each call.
func DefaultSteps() []Step {
	return []Step{
		{
			ID: StepOwnership, Title: "Do you own the vehicle outright?", Required: true,
			Choices: []Choice{
				{Option: "owned_outright", Label: "I own it outright", Outcome: Adjust{}},
				{Option: "loan_payments", Label: "I'm still making loan payments", Outcome: Disqualify{Reason: "We can only purchase vehicles that are fully paid off."}},
				{Option: "leased", Label: "It's leased", Outcome: Disqualify{Reason: "Leased vehicles must be purchased through the leasing company."}},
			},
		},
		{
			ID: StepTitleStatus, Title: "What is the title status?", Required: true,
			Choices: []Choice{
				{Option: "clean", Label: "Clean title in my name", Outcome: Adjust{}},
				{Option: "rebuilt", Label: "Rebuilt or reconstructed", Outcome: Adjust{Amount: -100}},
				{Option: "salvage", Label: "Salvage title", Outcome: Adjust{Amount: -150}},
				{Option: "no_title", Label: "I don't have the title", Outcome: Disqualify{Reason: "A title is required to transfer ownership."}},
			},
		},
		{
			ID: StepDrivability, Title: "Does the vehicle start and drive?", Required: true,
			Choices: []Choice{
				{Option: "starts_and_drives", Label: "Starts and drives", Outcome: Adjust{}},
				{Option: "starts_not_drive", Label: "Starts but doesn't drive", Outcome: Adjust{Amount: -100}},
				{Option: "does_not_start", Label: "Doesn't start", Outcome: Adjust{Amount: -150}},
			},
		},
		{
			ID: StepMileage, Title: "What is the approximate mileage?", Required: true,
			Choices: []Choice{
				{Option: "low_mileage", Label: "Under 100,000 miles", Outcome: Adjust{}},
				{Option: "high_mileage", Label: "100,000 to 200,000 miles", Outcome: Adjust{Amount: -100}},
				{Option: "very_high_mileage", Label: "Over 200,000 miles", Outcome: Adjust{Amount: -150}},
			},
		},
		{
			ID: StepExteriorDamage, Title: "Is there any exterior body damage?", Required: true,
			Choices: []Choice{
				{Option: "none", Label: "No damage", Outcome: Adjust{}},
				{Option: "minor", Label: "Minor dents or scratches", Outcome: Adjust{Amount: -75}},
				{Option: "major", Label: "Major damage", Outcome: AdjustWithAreas{Amount: -150, PerArea: PerAreaPenalty, Areas: exteriorAreas}},
			},
		},
		{
			ID: StepInteriorDamage, Title: "Is there any interior damage?", Required: true,
			Choices: []Choice{
				{Option: "none", Label: "No damage", Outcome: Adjust{}},
				{Option: "minor", Label: "Minor wear or stains", Outcome: Adjust{Amount: -50}},
				{Option: "major", Label: "Tears, burns or missing trim", Outcome: AdjustWithAreas{Amount: -100, PerArea: PerAreaPenalty, Areas: interiorAreas}},
			},
		},
		{
			ID: StepMechanicalIssues, Title: "Any known mechanical issues?", Required: true,
			Choices: []Choice{
				{Option: "none", Label: "None", Outcome: Adjust{}},
				{Option: "minor", Label: "Minor issues or warning lights", Outcome: Adjust{Amount: -75}},
				{Option: "major", Label: "Engine or transmission problems", Outcome: Adjust{Amount: -200}},
			},
		},
		{
			ID: StepFloodFire, Title: "Has the vehicle had flood or fire damage?", Required: true,
			Choices: []Choice{
				{Option: "none", Label: "No", Outcome: Adjust{}},
				{Option: "flood", Label: "Flood damage", Outcome: Disqualify{Reason: "We are unable to purchase flood-damaged vehicles."}},
				{Option: "fire", Label: "Fire damage", Outcome: Disqualify{Reason: "We are unable to purchase fire-damaged vehicles."}},
			},
		},
		{
			ID: StepAirbags, Title: "Have any airbags deployed?", Required: true,
			Choices: []Choice{
				{Option: "no", Label: "No", Outcome: Adjust{}},
				{Option: "yes", Label: "Yes", Outcome: Adjust{Amount: -100}},
			},
		},
		{
			ID: StepMissingParts, Title: "Are any parts missing?", Required: true,
			Choices: []Choice{
				{Option: "none", Label: "Nothing missing", Outcome: Adjust{}},
				{Option: "minor", Label: "Trim, mirrors or panels", Outcome: Adjust{Amount: -50}},
				{Option: "catalytic_converter", Label: "Catalytic converter", Outcome: Adjust{Amount: -150}},
			},
		},
		{
			ID: StepKeys, Title: "Do you have a key?", Required: true,
			Choices: []Choice{
				{Option: "has_keys", Label: "Yes", Outcome: Adjust{}},
				{Option: "no_keys", Label: "No", Outcome: Adjust{Amount: -50}},
			},
		},
		{
			ID: StepTires, Title: "Are all tires inflated and mounted?", Required: false,
			Choices: []Choice{
				{Option: "all_inflated", Label: "Yes", Outcome: Adjust{}},
				{Option: "flat_or_missing", Label: "Flat or missing tires", Outcome: Adjust{Amount: -25}},
			},
		},
	}
}
