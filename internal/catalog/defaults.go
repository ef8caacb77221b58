package catalog

import "github.com/haythamstudio/intake/internal/domain"

func intPtr(v int) *int { return &v }

var defaultProjectTypes = []ProjectType{
	{Key: "WEDDING", Label: "Wedding Photography", Category: domain.CategoryEvent, SupportsMultipleEvents: true},
	{Key: "ELOPEMENT", Label: "Elopement", Category: domain.CategoryEvent},
	{Key: "ENGAGEMENT", Label: "Engagement Session", Category: domain.CategoryEvent},
	{Key: "FAMILY", Label: "Family Portrait", Category: domain.CategorySession},
	{Key: "NEWBORN", Label: "Newborn Session", Category: domain.CategorySession},
	{Key: "BRANDING", Label: "Branding / Corporate", Category: domain.CategoryCommercial, SupportsMultipleEvents: true},
}

var defaultEventTypes = []EventType{
	{Key: "PRE_WEDDING", Label: "Sangeet & Cocktail"},
	{Key: "HALDI", Label: "Haldi Ceremony"},
	{Key: "MEHENDI", Label: "Mehendi Ceremony"},
	{Key: "MAIN_WEDDING", Label: "Wedding & Reception"},
	{Key: "RECEPTION", Label: "Reception"},
	{Key: "ENGAGEMENT_EVENT", Label: "Engagement Ceremony"},
	{Key: "CORPORATE_SHOOT", Label: "Corporate Shoot"},
}

var defaultServices = []Service{
	{Key: "CANDID_PHOTO", Label: "Candid Photography", Category: "Photography"},
	{Key: "TRADITIONAL_PHOTO", Label: "Traditional Photography", Category: "Photography"},
	{Key: "CINEMATIC_VIDEO", Label: "Cinematography", Category: "Videography"},
	{Key: "TRADITIONAL_VIDEO", Label: "Traditional Videography", Category: "Videography"},
	{Key: "DRONE", Label: "Drone Coverage", Category: "Add-ons"},
	{Key: "LIVE_STREAM", Label: "Live Streaming", Category: "Add-ons"},
}

var defaultLocationTypes = []LocationType{
	{Key: "INDOOR_BANQUET", Label: "Indoor Banquet"},
	{Key: "OUTDOOR_VENUE", Label: "Outdoor Venue"},
	{Key: "PRIVATE_HOME", Label: "Private Residence"},
	{Key: "HOTEL_ROOM", Label: "Hotel Room"},
	{Key: "VENUE", Label: "Venue / Hall"},
	{Key: "STUDIO", Label: "Studio"},
	{Key: "OFFICE", Label: "Office"},
}

var defaultBudgetRanges = []BudgetRange{
	{Label: "Under 50K", Min: 0, Max: intPtr(50000)},
	{Label: "50K – 1L", Min: 50000, Max: intPtr(100000)},
	{Label: "1L – 3L", Min: 100000, Max: intPtr(300000)},
	{Label: "3L – 5L", Min: 300000, Max: intPtr(500000)},
	{Label: "5L+", Min: 500000},
}

var defaultContactRoles = []string{"Groom", "Bride", "Parent", "Planner", "Other"}

var defaultDeliveryMethods = []DeliveryMethod{
	{Key: "ONLINE_GALLERY", Label: "Online Gallery"},
	{Key: "USB", Label: "USB / Hard Drive"},
	{Key: "ONLINE_GALLERY_AND_USB", Label: "Online Gallery + USB"},
}

var defaultVideoOutputs = []VideoOutput{
	{Key: "INSTAGRAM_REEL", Label: "Instagram Reel", DefaultDuration: "1 min"},
	{Key: "TEASER", Label: "Teaser Video", DefaultDuration: "3–5 min"},
	{Key: "FULL_FILM", Label: "Full-Length Film", DefaultDuration: "45–60 min"},
}
