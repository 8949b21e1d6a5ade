package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EntityType is the category of a search result
type EntityType string

// Entity types returned by the search endpoint
const (
	EntityScheme      EntityType = "scheme"
	EntityClaim       EntityType = "claim"
	EntityMember      EntityType = "member"
	EntityProvider    EntityType = "provider"
	EntityServiceType EntityType = "service_type"
	EntityBenefitType EntityType = "benefit_type"
)

// EntityFilter narrows a search to one entity type
type EntityFilter string

// Entity filters accepted by the search endpoint
const (
	FilterAll       EntityFilter = "all"
	FilterSchemes   EntityFilter = "schemes"
	FilterClaims    EntityFilter = "claims"
	FilterMembers   EntityFilter = "members"
	FilterProviders EntityFilter = "providers"
	FilterServices  EntityFilter = "services"
	FilterBenefits  EntityFilter = "benefits"
)

// Filters lists all entity filters in cycling order
var Filters = []EntityFilter{
	FilterAll,
	FilterSchemes,
	FilterClaims,
	FilterMembers,
	FilterProviders,
	FilterServices,
	FilterBenefits,
}

// Role is the authorization role of the current session
type Role string

// Session roles
const (
	RoleAdmin    Role = "ADMIN"
	RoleProvider Role = "PROVIDER"
	RolePatient  Role = "PATIENT"
	RoleGuest    Role = "GUEST"
)

// ParseRole converts a user-supplied role string to a Role
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleProvider:
		return RoleProvider, nil
	case RolePatient:
		return RolePatient, nil
	case RoleGuest, "":
		return RoleGuest, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ID is an entity identifier. The API is inconsistent about whether ids
// are JSON strings or numbers, so both decode to the same value.
type ID string

// UnmarshalJSON accepts both string and numeric ids
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Int returns the numeric value of the id, or 0 if it isn't numeric
func (id ID) Int() int {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0
	}
	return n
}

// SearchResult is a single hit from the search endpoint. Server order is
// preserved; results are never re-sorted client-side.
type SearchResult struct {
	ID       ID             `json:"id"`
	Type     EntityType     `json:"type"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	URL      string         `json:"url"`
	Metadata map[string]any `json:"metadata"`
}

// SearchResponse is the payload of the search endpoint
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Total      int            `json:"total"`
	Query      string         `json:"query"`
	EntityType string         `json:"entity_type"`
}

// Member is a scheme member record
type Member struct {
	ID           ID     `json:"id"`
	MemberNumber string `json:"member_number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	SchemeName   string `json:"scheme_name"`
	Status       string `json:"status"`
}

// FullName returns the member's display name
func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Claim is a submitted claim record
type Claim struct {
	ID           ID      `json:"id"`
	ClaimNumber  string  `json:"claim_number"`
	MemberName   string  `json:"member_name"`
	ProviderName string  `json:"provider_name"`
	ServiceDate  string  `json:"service_date"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
}

// Scheme is a medical-aid scheme record
type Scheme struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
	Status      string `json:"status"`
}

// Provider is a healthcare provider record
type Provider struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	PracticeCode string `json:"practice_code"`
	Specialty    string `json:"specialty"`
	Status       string `json:"status"`
}
