package models

type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "FREE"
	PlanBasic   SubscriptionPlan = "BASIC"
	PlanPremium SubscriptionPlan = "PREMIUM"
)

// Hotel is the tenant root. Every other row references one hotel.
type Hotel struct {
	Base
	Name             string           `gorm:"size:150;not null" json:"name"`
	OwnerPhone       string           `gorm:"size:30" json:"ownerPhone"`
	SubscriptionPlan SubscriptionPlan `gorm:"size:20;not null" json:"subscriptionPlan"`
	IsActive         bool             `gorm:"not null" json:"isActive"`
}
