package cmd

// Usage text shown by the interactive shell and the matching commands.
const (
	generalUsage = `Type "help --command" for more info on a particular command. Supported commands are: "add-food", "eat", "report", "set-goal".`

	addFoodUsage = `To add a new food item to the list of supported food items, type "add-food name-cal-carbs-fats-proteins".
The food item will be saved as the string "name", with "cal" number of calories, "carbs" number of
carbohydrates (in grams), "fats" number of fats (in grams) and "proteins" number of proteins (in grams).
If successful in parsing the new food item, you will be asked whether to save or overwrite the existing one.
If unable to parse the new food item due to invalid numbers, a failure message will be displayed instead.`

	eatUsage = `To record a food as being eaten, type "eat name", where "name" is what was consumed. 
The food must already exist in the list of supported food items.  If it has not been added yet, first use the "add-food" command.
Optionally, you can specify the amount consumed if it was less than the full amount, e.g. "eat pizza percent=25"
Optionally, you can specify the date it was consumed if not today, e.g. "eat pineapple date=9-20-2024".`

	setGoalUsage = `To set your daily nutrition goal, type "set-goal cal-carbs-fats-proteins". Each of the arguments must be a number.`

	reportUsage = `Provides a report of the nutritional impact of all foods eaten on a given date, e.g. "report 9-20-2024".`

	shellPrompt    = `Please enter a command with arguments, "help" to learn more, or "quit" to exit:`
	shellSeparator = "------------------------------------------"
)

// usageError carries a usage text to show instead of an error message.
type usageError struct {
	usage string
}

func (e usageError) Error() string {
	return e.usage
}

// helpFor returns the usage text for a command name, falling back to the
// general usage.
func helpFor(command string) string {
	switch command {
	case "add-food", "add-drink":
		return addFoodUsage
	case "eat", "drink":
		return eatUsage
	case "report":
		return reportUsage
	case "set-goal":
		return setGoalUsage
	default:
		return generalUsage
	}
}
