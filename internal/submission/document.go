// Package submission turns a completed form into the normalized inquiry
// document sent to the studio backend.
package submission

import "github.com/haythamstudio/intake/internal/domain"

// Document is the canonical outbound payload. Field order and naming
// follow the backend's inquiry schema.
type Document struct {
	InquiryID       string               `json:"inquiry_id"`
	TenantID        string               `json:"tenant_id"`
	CreatedAt       string               `json:"created_at"`
	Status          domain.InquiryStatus `json:"status"`
	Stage           domain.InquiryStage  `json:"stage"`
	Client          Client               `json:"client"`
	Project         Project              `json:"project"`
	Events          []Event              `json:"events"`
	Deliverables    Deliverables         `json:"deliverables"`
	AdditionalNotes string               `json:"additional_notes"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Client carries the contact blocks. SecondaryContact is an explicit
// null when no secondary name was given.
type Client struct {
	PrimaryContact   Contact  `json:"primary_contact"`
	SecondaryContact *Contact `json:"secondary_contact"`
}

// TypeRef pairs a catalogue key with the display label resolved at build
// time.
type TypeRef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Budget struct {
	Min   int    `json:"min"`
	Max   *int   `json:"max"`
	Label string `json:"label"`
}

type Project struct {
	Title               string  `json:"title"`
	Type                TypeRef `json:"type"`
	EstimatedGuestCount *int    `json:"estimated_guest_count"`
	Currency            string  `json:"currency"`
	Budget              Budget  `json:"budget"`
}

type EventTime struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

type Location struct {
	Order        int     `json:"order"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	LocationType string  `json:"location_type"`
	Activity     *string `json:"activity"`
}

type ServiceLine struct {
	Service  TypeRef `json:"service"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes"`
}

type Event struct {
	EventID   string        `json:"event_id"`
	EventType TypeRef       `json:"event_type"`
	Date      string        `json:"date"`
	Time      EventTime     `json:"time"`
	Locations []Location    `json:"locations"`
	Services  []ServiceLine `json:"services"`
}

type PhotoBook struct {
	Required bool `json:"required"`
	Copies   int  `json:"copies"`
}

type Deliverables struct {
	DeliveryMethod string                        `json:"delivery_method"`
	PhotoBook      PhotoBook                     `json:"photo_book"`
	VideoOutputs   []domain.VideoOutputSelection `json:"video_outputs"`
}
