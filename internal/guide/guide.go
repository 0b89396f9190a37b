// Package guide holds the static longevity optimization guide shown
// from the main menu: one section per pillar plus the reference list.
package guide

import "github.com/wesboland/bolandindex/internal/assessment"

// Point is one recommendation. Refs index into References (1-based).
type Point struct {
	Heading string
	Body    string
	Refs    []int
}

// Section is one pillar of the guide.
type Section struct {
	Category assessment.Category
	Title    string
	Points   []Point
}

const (
	// Title is the guide's display heading.
	Title = "Longevity Optimization Guide: The 5 Pillars of Health"

	// Intro is the lead paragraph under the heading.
	Intro = "This guide synthesizes the highest-impact behaviors for optimizing " +
		"healthspan and lifespan, backed by rigorous scientific evidence."
)

// Sections returns the guide in display order, one section per
// category, matching the assessment's category order.
func Sections() []Section {
	return sections
}

var sections = []Section{
	{
		Category: assessment.CategoryNutrition,
		Title:    "1. Nutrition: Fueling Longevity",
		Points: []Point{
			{
				Heading: "Prioritize Whole Foods",
				Body: "Build your diet on whole, single-ingredient foods. Strictly minimize " +
					"ultra-processed foods; high intake (>4 servings/day) is independently " +
					"associated with a 62% increased hazard for all-cause mortality.",
				Refs: []int{1},
			},
			{
				Heading: "Consume High Protein",
				Body: "Target sufficient protein (1.2-1.5+ g/kg/day) and distribute it across " +
					"meals (e.g. 30g/meal) to counteract age-related sarcopenia and maintain " +
					"functional independence.",
				Refs: []int{2},
			},
			{
				Heading: "Limit Alcohol",
				Body: "Rarely or never consume alcohol (0-2 drinks/week). Recent large-scale " +
					"analyses indicate the safe level of alcohol consumption for minimizing " +
					"health loss is near zero.",
				Refs: []int{3},
			},
			{
				Heading: "Metabolic Control",
				Body: "Actively limit added sugars to maintain insulin sensitivity. Metabolic " +
					"dysfunction is a primary driver of chronic disease.",
				Refs: []int{4},
			},
			{
				Heading: "Gut Health",
				Body: "Consume a diverse variety of fiber sources daily. High dietary fiber " +
					"intake is inversely associated with cardiovascular disease and all-cause " +
					"mortality risk.",
				Refs: []int{5},
			},
			{
				Heading: "Time Your Meals",
				Body: "Stop eating at least 2 hours before sleep. Late-night eating can " +
					"negatively impact metabolic markers and circadian alignment.",
				Refs: []int{6},
			},
		},
	},
	{
		Category: assessment.CategoryMovement,
		Title:    "2. Movement: Functional Reserve",
		Points: []Point{
			{
				Heading: "The VO2 Max Imperative",
				Body: "Incorporate high-intensity intervals (Zone 4/5) at least once per week. " +
					"Cardiorespiratory fitness is arguably the strongest predictor of longevity; " +
					"elite performers show an 80% reduction in mortality risk over low performers.",
				Refs: []int{7},
			},
			{
				Heading: "Cardio Base",
				Body: "Accumulate at least 150 minutes of low-to-moderate intensity aerobic " +
					"activity (Zone 2) weekly to optimize mitochondrial function and metabolic " +
					"flexibility.",
				Refs: []int{8},
			},
			{
				Heading: "Functional Strength",
				Body: "Intentionally train grip strength. Grip strength is a simple, powerful " +
					"predictor of all-cause mortality and cardiovascular disease, often " +
					"outperforming systolic blood pressure as a prognostic tool.",
				Refs: []int{9},
			},
			{
				Heading: "Step Count",
				Body: "Aim for 7,000 to 10,000+ steps daily. Mortality benefit curves tend to " +
					"plateau after roughly 7,000-8,000 steps for older adults.",
				Refs: []int{10},
			},
			{
				Heading: "Sit-Rise Test",
				Body: "Regularly assess functional reserve. The ability to sit and rise from " +
					"the floor without hand support is a significant predictor of all-cause " +
					"mortality.",
				Refs: []int{11},
			},
			{
				Heading: "Break Sedentary Time",
				Body: "Actively break up periods of sitting every 45-60 minutes to mitigate " +
					"the metabolic risks of prolonged sedentary behavior.",
				Refs: []int{12},
			},
		},
	},
	{
		Category: assessment.CategorySleep,
		Title:    "3. Sleep: Recovery & Restoration",
		Points: []Point{
			{
				Heading: "Target Quantity",
				Body: "Consistently get 7-9 hours of sleep. Short sleep duration (<6-7 hours) " +
					"is consistently associated with a higher risk of death from all causes.",
				Refs: []int{13},
			},
			{
				Heading: "Cognitive Clearance",
				Body: "Sleep drives the glymphatic system, which clears metabolic waste " +
					"products like beta-amyloid from the brain, protecting against " +
					"neurodegeneration.",
				Refs: []int{14},
			},
			{
				Heading: "Circadian Anchor",
				Body: "Expose your eyes to morning sunlight. Light is the primary zeitgeber " +
					"for the master circadian clock, regulating sleep pressure and hormone " +
					"release.",
				Refs: []int{15},
			},
			{
				Heading: "Environment",
				Body: "Sleep in a room that is completely dark and cool (65-68F). Thermal " +
					"environment significantly impacts sleep stages, particularly REM and " +
					"deep sleep.",
				Refs: []int{16},
			},
			{
				Heading: "Avoid Disruptors",
				Body: "Avoid alcohol within 3-4 hours of bed. Alcohol may reduce sleep onset " +
					"latency but significantly fragments REM sleep and reduces overall sleep " +
					"quality.",
				Refs: []int{17},
			},
		},
	},
	{
		Category: assessment.CategorySocial,
		Title:    "4. Social Connection: Quality & Depth",
		Points: []Point{
			{
				Heading: "Loneliness vs. Mortality",
				Body: "Social isolation and loneliness are major risk factors for mortality, " +
					"with an effect size comparable to smoking and exceeding that of obesity " +
					"and physical inactivity.",
				Refs: []int{18},
			},
			{
				Heading: "Support Network",
				Body: "Maintain a thick support network. Strong social integration is linked " +
					"to lower inflammation (C-reactive protein) and better physiological " +
					"regulation.",
				Refs: []int{19},
			},
			{
				Heading: "Quality Engagement",
				Body: "Focus on meaningful, face-to-face interactions. The quality of close " +
					"relationships is a better predictor of happiness and health in late life " +
					"than cholesterol levels.",
				Refs: []int{20},
			},
			{
				Heading: "Belonging",
				Body: "Cultivate a sense of belonging. Social capital and community cohesion " +
					"are protective factors against stress and cognitive decline.",
			},
		},
	},
	{
		Category: assessment.CategoryPurpose,
		Title:    "5. Purpose: Resilience",
		Points: []Point{
			{
				Heading: "Ikigai / Life Purpose",
				Body: "Have a clear reason to get out of bed. Individuals with a strong sense " +
					"of purpose demonstrate significantly lower risk of mortality and " +
					"cardiovascular events.",
				Refs: []int{21, 22},
			},
			{
				Heading: "Growth Mindset",
				Body: "View stress as a challenge. Psychological resilience and positive " +
					"stress appraisal buffer the negative physiological effects of the stress " +
					"response.",
				Refs: []int{23},
			},
			{
				Heading: "Cognitive Engagement",
				Body: "Engage in continuous learning. Cognitive reserve built through lifelong " +
					"mental stimulation delays the onset of clinical symptoms of dementia.",
				Refs: []int{24},
			},
			{
				Heading: "Autonomy",
				Body: "Maintain a sense of agency. Low perceived control is a risk factor for " +
					"cardiovascular disease and mortality.",
			},
		},
	},
}

// References lists the supporting literature, indexed from 1 by the
// Refs fields above.
var References = []string{
	"Mendonca, R. D., et al. (2019). Association between consumption of ultra-processed foods and all cause mortality: SUN prospective cohort study. BMJ, 365, l1949.",
	"Bauer, J., et al. (2013). Evidence-based recommendations for optimal protein intake in older people: a position paper from the PROT-AGE Study Group. Journal of the American Medical Directors Association, 14(8), 542-559.",
	"GBD 2016 Alcohol Collaborators. (2018). Alcohol use and burden for 195 countries and territories, 1990-2016: a systematic analysis for the Global Burden of Disease Study 2016. The Lancet, 392(10152), 1015-1035.",
	"Stanhope, K. L. (2016). Sugar consumption, metabolic disease and obesity: The state of the controversy. Critical Reviews in Clinical Laboratory Sciences, 53(1), 52-67.",
	"Reynolds, A., et al. (2019). Carbohydrate quality and human health: a series of systematic reviews and meta-analyses. The Lancet, 393(10170), 434-445.",
	"Kinsey, A. W., & Ormsbee, M. J. (2015). The health impact of nighttime eating: old and new perspectives. Nutrients, 7(4), 2648-2662.",
	"Mandsager, K., et al. (2018). Association of Cardiorespiratory Fitness With Long-term Mortality Among Adults Undergoing Exercise Treadmill Testing. JAMA Network Open, 1(6), e183605.",
	"Piercy, K. L., et al. (2018). The Physical Activity Guidelines for Americans. JAMA, 320(19), 2020-2028.",
	"Leong, D. P., et al. (2015). Prognostic value of grip strength: findings from the Prospective Urban Rural Epidemiology (PURE) study. The Lancet, 386(9990), 266-273.",
	"Paluch, A. E., et al. (2022). Daily steps and all-cause mortality: a meta-analysis of 15 international cohorts. The Lancet Public Health, 7(3), e219-e228.",
	"Brito, L. B., et al. (2012). Ability to sit and rise from the floor as a predictor of all-cause mortality. European Journal of Preventive Cardiology, 21(7), 892-898.",
	"Biswas, A., et al. (2015). Sedentary time and its association with risk for disease incidence, mortality, and hospitalization in adults: a systematic review and meta-analysis. Annals of Internal Medicine, 162(2), 123-132.",
	"Cappuccio, F. P., et al. (2010). Sleep duration and all-cause mortality: a systematic review and meta-analysis of prospective studies. Sleep, 33(5), 585-592.",
	"Xie, L., et al. (2013). Sleep drives metabolite clearance from the adult brain. Science, 342(6156), 373-377.",
	"Duffy, J. F., & Czeisler, C. A. (2009). Effect of Light on Human Circadian Physiology. Sleep Medicine Clinics, 4(2), 165-177.",
	"Okamoto-Mizuno, K., & Mizuno, K. (2012). Effects of thermal environment on sleep and circadian rhythm. Journal of Physiological Anthropology, 31(1), 14.",
	"Ebrahim, I. O., et al. (2013). Alcohol and sleep I: effects on normal sleep. Alcoholism: Clinical and Experimental Research, 37(4), 539-549.",
	"Holt-Lunstad, J., et al. (2010). Social relationships and mortality risk: a meta-analytic review. PLoS Medicine, 7(7), e1000316.",
	"Yang, Y. C., et al. (2016). Social relationships and physiological determinants of longevity across the human life span. Proceedings of the National Academy of Sciences, 113(3), 578-583.",
	"Waldinger, R. J., & Schulz, M. S. (2010). What's love got to do with it? Social functioning, perceived health, and daily happiness in married octogenarians. Psychology and Aging, 25(2), 422.",
	"Sone, T., et al. (2008). Sense of life worth living (ikigai) and mortality in Japan: Ohsaki Study. Psychosomatic Medicine, 70(6), 709-715.",
	"Alimujiang, A., et al. (2019). Association Between Life Purpose and Mortality Among US Adults Older Than 50 Years. JAMA Network Open, 2(5), e194270.",
	"Epel, E. S., et al. (2018). More than a feeling: A unified view of stress measurement for population science. Frontiers in Neuroendocrinology, 49, 146-169.",
	"Stern, Y. (2012). Cognitive reserve in ageing and Alzheimer's disease. The Lancet Neurology, 11(11), 1006-1012.",
}
