package assessment

// Category is one of the five fixed wellness pillars scored independently.
type Category string

const (
	CategoryNutrition Category = "Nutrition"
	CategoryMovement  Category = "Movement"
	CategorySleep     Category = "Sleep"
	CategorySocial    Category = "Social Connection"
	CategoryPurpose   Category = "Purpose"
)

// AllCategories returns the five categories in display order.
// The scoring scale is defined against exactly this set; adding or
// removing a category requires redefining the rank thresholds.
func AllCategories() []Category {
	return []Category{
		CategoryNutrition,
		CategoryMovement,
		CategorySleep,
		CategorySocial,
		CategoryPurpose,
	}
}

// Key returns the short identifier used in outbound payloads.
func (c Category) Key() string {
	switch c {
	case CategoryNutrition:
		return "nutrition"
	case CategoryMovement:
		return "movement"
	case CategorySleep:
		return "sleep"
	case CategorySocial:
		return "social"
	case CategoryPurpose:
		return "purpose"
	default:
		return string(c)
	}
}
