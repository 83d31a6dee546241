package constants

// Closed sets for every domain enum. Request DTOs also carry `oneof`
// validator tags, so invalid values are rejected at the boundary instead
// of defaulting silently.

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

type Category string

const (
	CategoryGeneral Category = "General"
	CategoryOBC     Category = "OBC"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryPwD     Category = "PwD"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryOBC, CategorySC, CategoryST, CategoryPwD:
		return true
	}
	return false
}

// SemesterFeeExempt reports whether the semester hostel fee is waived for
// this category in a semester-end month.
func (c Category) SemesterFeeExempt() bool {
	switch c {
	case CategorySC, CategoryST, CategoryPwD:
		return true
	}
	return false
}

type TokenStatus string

const (
	TokenActive  TokenStatus = "active"
	TokenUsed    TokenStatus = "used"
	TokenExpired TokenStatus = "expired"
)

type TokenPaymentStatus string

const (
	TokenPaymentPending TokenPaymentStatus = "pending"
	TokenPaymentPaid    TokenPaymentStatus = "paid"
)

type BillPaymentStatus string

const (
	BillPaymentPending BillPaymentStatus = "pending"
	BillPaymentPartial BillPaymentStatus = "partial"
	BillPaymentPaid    BillPaymentStatus = "paid"
)

const (
	RoleStudent      = "student"
	RoleAdmin        = "admin"
	RoleOrganization = "organization"
)

// Specials per token are hard-bounded by the data model.
const (
	MinSpecials = 0
	MaxSpecials = 10
)

// Months in which the semester hostel fee rule is evaluated.
var SemesterMonths = map[int]bool{6: true, 12: true}
