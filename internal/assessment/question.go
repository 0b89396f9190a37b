package assessment

// Question is a single quiz item. Questions are immutable and live in a
// fixed ordered bank; the order drives the progress display.
type Question struct {
	Text     string
	Category Category
}

// Bank returns the fixed question sequence. Every attempt visits each
// question exactly once, in this order.
func Bank() []Question {
	return questionBank
}

// QuestionsPerCategory is the number of bank questions per pillar. The
// rank thresholds (130/180/225) assume this exact shape and are not
// recomputed if the bank changes.
const QuestionsPerCategory = 10

// questionBank defines the 50-item assessment: 10 questions per pillar,
// grouped by pillar in display order.
var questionBank = []Question{
	// Nutrition
	{Text: "My diet is built around whole, single-ingredient foods.", Category: CategoryNutrition},
	{Text: "I rarely eat ultra-processed or packaged foods.", Category: CategoryNutrition},
	{Text: "I eat enough protein at every meal to support muscle maintenance.", Category: CategoryNutrition},
	{Text: "I rarely or never drink alcohol.", Category: CategoryNutrition},
	{Text: "I actively limit added sugars in my diet.", Category: CategoryNutrition},
	{Text: "I eat a diverse range of fiber sources every day.", Category: CategoryNutrition},
	{Text: "I stop eating at least two hours before bedtime.", Category: CategoryNutrition},
	{Text: "I rarely drink sugar-sweetened beverages.", Category: CategoryNutrition},
	{Text: "I cook most of my meals from scratch.", Category: CategoryNutrition},
	{Text: "I maintain a stable weight without extreme dieting.", Category: CategoryNutrition},

	// Movement
	{Text: "I do high-intensity cardio intervals at least once per week.", Category: CategoryMovement},
	{Text: "I accumulate 150 or more minutes of moderate aerobic activity each week.", Category: CategoryMovement},
	{Text: "I strength train at least twice per week.", Category: CategoryMovement},
	{Text: "My grip strength is strong for my age.", Category: CategoryMovement},
	{Text: "I walk 7,000 or more steps on a typical day.", Category: CategoryMovement},
	{Text: "I can sit down on the floor and stand back up without using my hands.", Category: CategoryMovement},
	{Text: "I break up long periods of sitting every hour.", Category: CategoryMovement},
	{Text: "I regularly carry, lift, or move heavy things in daily life.", Category: CategoryMovement},
	{Text: "My cardiorespiratory fitness is above average for my age.", Category: CategoryMovement},
	{Text: "I stay physically active even when traveling or busy.", Category: CategoryMovement},

	// Sleep
	{Text: "I consistently sleep seven to nine hours per night.", Category: CategorySleep},
	{Text: "I wake up feeling rested most mornings.", Category: CategorySleep},
	{Text: "I keep a consistent sleep and wake schedule, even on weekends.", Category: CategorySleep},
	{Text: "I get sunlight exposure within an hour of waking.", Category: CategorySleep},
	{Text: "My bedroom is completely dark and cool at night.", Category: CategorySleep},
	{Text: "I avoid screens in the hour before bed.", Category: CategorySleep},
	{Text: "I avoid caffeine after mid-afternoon.", Category: CategorySleep},
	{Text: "I avoid alcohol within three hours of bedtime.", Category: CategorySleep},
	{Text: "I rarely need an alarm to wake up feeling functional.", Category: CategorySleep},
	{Text: "I fall asleep within twenty minutes most nights.", Category: CategorySleep},

	// Social Connection
	{Text: "I have close friends I could call on in a crisis.", Category: CategorySocial},
	{Text: "I have meaningful face-to-face interactions most days.", Category: CategorySocial},
	{Text: "I rarely feel lonely or isolated.", Category: CategorySocial},
	{Text: "I feel a strong sense of belonging to a community.", Category: CategorySocial},
	{Text: "I invest time in maintaining my closest relationships.", Category: CategorySocial},
	{Text: "I regularly meet new people and form new connections.", Category: CategorySocial},
	{Text: "My close relationships are supportive rather than draining.", Category: CategorySocial},
	{Text: "I have someone I can be completely honest with.", Category: CategorySocial},
	{Text: "I take part in group activities on a regular basis.", Category: CategorySocial},
	{Text: "I feel connected to family or chosen family.", Category: CategorySocial},

	// Purpose
	{Text: "I have a clear reason to get out of bed each morning.", Category: CategoryPurpose},
	{Text: "My daily work or activities feel meaningful to me.", Category: CategoryPurpose},
	{Text: "I view stressful situations as challenges rather than threats.", Category: CategoryPurpose},
	{Text: "I am continuously learning new skills or subjects.", Category: CategoryPurpose},
	{Text: "I feel in control of the direction of my life.", Category: CategoryPurpose},
	{Text: "I have long-term goals that excite me.", Category: CategoryPurpose},
	{Text: "I regularly contribute to something larger than myself.", Category: CategoryPurpose},
	{Text: "I can articulate what matters most to me in life.", Category: CategoryPurpose},
	{Text: "I bounce back quickly from setbacks.", Category: CategoryPurpose},
	{Text: "I look forward to the decades ahead of me.", Category: CategoryPurpose},
}
