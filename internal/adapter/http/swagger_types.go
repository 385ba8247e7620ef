// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerScheduleList represents one page of schedules for swagger documentation.
// @Description One page of schedules plus the total match count
type SwaggerScheduleList struct {
	Items    []SwaggerSchedule `json:"items"`
	Total    int               `json:"total" example:"12"`
	Page     int               `json:"page" example:"1"`
	PageSize int               `json:"pageSize" example:"50"`
}

// SwaggerSchedule represents a single sailing.
// @Description A sailing between two ports
type SwaggerSchedule struct {
	ID                string               `json:"id" example:"9f1c2e7a4b"`
	Origin            string               `json:"origin" example:"Alexandria, EG"`
	Destination       string               `json:"destination" example:"Valencia, ES"`
	OriginLocode      string               `json:"originLocode,omitempty" example:"EGALY"`
	DestinationLocode string               `json:"destinationLocode,omitempty" example:"ESVLC"`
	ETD               string               `json:"etd" example:"2025-08-20T08:00:00Z"`
	ETA               string               `json:"eta" example:"2025-08-26T14:00:00Z"`
	Vessel            string               `json:"vessel" example:"MSC ANNA"`
	Voyage            string               `json:"voyage" example:"FA532E"`
	IMO               *string              `json:"imo" example:"9839179"`
	RoutingType       string               `json:"routingType" example:"Direct" enums:"Direct,Transshipment"`
	TransitDays       int                  `json:"transitDays" example:"7"`
	Carrier           string               `json:"carrier" example:"MSC"`
	Service           *string              `json:"service" example:"MEDEX"`
	Equipment         *string              `json:"equipment" example:"40HC"`
	Legs              []SwaggerScheduleLeg `json:"legs,omitempty"`
	Hash              *string              `json:"hash,omitempty" example:"9f1c2e7a4b"`
}

// SwaggerScheduleLeg represents one vessel movement of a transshipment.
// @Description A leg of a multi-leg itinerary
type SwaggerScheduleLeg struct {
	LegNumber   int    `json:"legNumber" example:"1"`
	FromLocode  string `json:"fromLocode" example:"EGALY"`
	FromPort    string `json:"fromPort" example:"Alexandria, EG"`
	ToLocode    string `json:"toLocode" example:"GRPIR"`
	ToPort      string `json:"toPort" example:"Piraeus, GR"`
	ETD         string `json:"etd" example:"2025-08-20T08:00:00Z"`
	ETA         string `json:"eta" example:"2025-08-22T06:00:00Z"`
	Vessel      string `json:"vessel" example:"MSC ANNA"`
	Voyage      string `json:"voyage" example:"FA532E"`
	TransitDays int    `json:"transitDays" example:"2"`
}

// SwaggerPortItems wraps port autocomplete results.
// @Description Ranked port matches
type SwaggerPortItems struct {
	Items []SwaggerPort `json:"items"`
}

// SwaggerPort is a catalog port.
type SwaggerPort struct {
	Name        string   `json:"name" example:"Alexandria"`
	Locode      string   `json:"locode" example:"EGALY"`
	Country     string   `json:"country" example:"EG"`
	CountryName string   `json:"countryName,omitempty" example:"Egypt"`
	Aliases     []string `json:"aliases,omitempty"`
	Size        int      `json:"size,omitempty" example:"70"`
}

// SwaggerCarrierItems wraps carrier autocomplete results.
// @Description Ranked carrier matches
type SwaggerCarrierItems struct {
	Items []SwaggerCarrier `json:"items"`
}

// SwaggerCarrier is a catalog carrier.
type SwaggerCarrier struct {
	Name string `json:"name" example:"Maersk"`
	SCAC string `json:"scac" example:"MAEU"`
	ID   string `json:"id,omitempty"`
}
