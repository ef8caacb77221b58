package domain

type InquiryStatus string

const (
	InquiryNew InquiryStatus = "NEW"
)

type InquiryStage string

const (
	StageInquiry InquiryStage = "INQUIRY"
)

type ProjectCategory string

const (
	CategoryEvent      ProjectCategory = "EVENT"
	CategorySession    ProjectCategory = "SESSION"
	CategoryCommercial ProjectCategory = "COMMERCIAL"
)

type PricingType string

const (
	PricingHourly   PricingType = "HOURLY"
	PricingDaily    PricingType = "DAILY"
	PricingPerPhoto PricingType = "PER_PHOTO"
	PricingPerEvent PricingType = "PER_EVENT"
	PricingFixed    PricingType = "FIXED"
)

// Currency and Timezone are fixed for every inquiry; the studio operates
// in a single market.
const (
	Currency = "INR"
	Timezone = "Asia/Kolkata"
)
