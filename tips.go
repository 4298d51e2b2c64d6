package carbontrack

import "math/rand"

// Reduction tips shown alongside reports. Contextual tips are keyed by the
// top contributing category; anything unknown falls back to a general tip.

var generalTips = []string{
	"Switch to a renewable energy supplier for your home to reduce your energy footprint.",
	"Try to buy local and seasonal produce to minimize transportation emissions.",
	"Unplug electronics that aren't in use to avoid phantom energy drain.",
	"Reduce, reuse, recycle! Focus on durable goods to lower your overall footprint.",
	"Carpool or take public transport a few times a week to cut emissions.",
	"Take shorter showers and switch off lights when leaving a room.",
	"Opt for energy-efficient appliances when replacing old ones.",
	"Bring your own reusable coffee cup and water bottle everywhere you go.",
	"Buy second-hand clothing and furniture to reduce the demand for new production.",
	"Use cold water for laundry whenever possible, as heating water is energy-intensive.",
	"Plant a tree or support local reforestation efforts.",
	"Switch to paperless billing and digital documents to save paper.",
}

var contextualTips = map[string][]string{
	"Transportation": {
		"Your largest contribution is Transportation. Try cycling or walking for short trips!",
		"Consider consolidating multiple trips into one to reduce driving mileage.",
		"Check your tire pressure - properly inflated tires improve fuel efficiency by up to 3%.",
		"Explore public transit options instead of driving solo.",
		"Try carpooling with coworkers or friends to cut your commute emissions in half.",
		"Practice 'eco-driving' by avoiding rapid acceleration and hard braking.",
		"Avoid idling your engine; turn it off if stopped for more than 10 seconds.",
		"Consider train travel over flying for domestic or regional trips.",
		"When flying, choose direct flights to reduce take-off and landing emissions.",
		"Maintain your vehicle regularly; a well-tuned engine runs more efficiently.",
	},
	"Food": {
		"Your largest contribution is Food. Try a vegetarian meal one day this week!",
		"Focus on reducing food waste - wasted food means wasted emissions.",
		"Buy locally sourced products or try plant-based alternatives.",
		"Choose seasonal produce to reduce the carbon cost of transportation and storage.",
		"Significantly reduce your consumption of high-carbon meats like beef and lamb.",
		"Plan your meals ahead of time to avoid impulse purchases and food waste.",
		"Eat smaller portions of meat and make vegetables the focus of your plate.",
		"Drink tap water instead of bottled water to reduce plastic waste and transport costs.",
		"Grow your own herbs or vegetables in a small garden or window box.",
		"Reduce dairy consumption by trying plant-based milks and cheeses.",
	},
	"Energy": {
		"Your largest contribution is Energy. Lower your thermostat by a few degrees.",
		"Use energy-saving LED light bulbs throughout your home.",
		"Wash clothes in cold water - heating water uses significant energy.",
		"Seal air leaks around windows and doors for better efficiency.",
		"Install a smart thermostat to optimize heating and cooling schedules.",
		"Use a drying rack or clothesline instead of a tumble dryer.",
		"Run your dishwasher and washing machine only when fully loaded.",
		"Consider installing solar panels on your roof to generate your own renewable energy.",
		"Use ceiling fans to circulate air and reduce the need for AC or heating.",
		"Defrost your freezer regularly to improve its efficiency.",
	},
	"Waste": {
		"Your largest contribution is Waste. Focus on reducing single-use items.",
		"Start composting food scraps to reduce methane from landfills.",
		"Choose products with minimal packaging when shopping.",
		"Repair items instead of replacing them when possible.",
		"Bring reusable bags, bottles, and containers to reduce waste.",
		"Say 'no' to straws, plastic cutlery, and unnecessary receipts.",
		"Donate unwanted items instead of throwing them away.",
		"Shop at bulk food stores using your own reusable containers.",
		"Properly clean all recyclables to ensure they can be processed.",
		"Buy less! Evaluate if you truly need an item before purchasing it.",
	},
}

// RandomTip returns a random general reduction tip.
func RandomTip() string {
	return generalTips[rand.Intn(len(generalTips))]
}

// ContextualTip returns a tip for the given top contributing category, or a
// general tip when the category has no dedicated tips.
func ContextualTip(category string) string {
	if tips, ok := contextualTips[category]; ok {
		return tips[rand.Intn(len(tips))]
	}
	return RandomTip()
}
