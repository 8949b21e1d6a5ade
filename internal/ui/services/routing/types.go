package routing

import "medigrip/internal/domain"

// Destination identifies where a chosen result goes
type Destination string

// Destinations
const (
	DestSchemePage  Destination = "scheme_page"  // scheme detail screen (ADMIN only)
	DestMembersPage Destination = "members_page" // members screen filtered to one member (ADMIN only)
	DestClaimDetail Destination = "claim_detail" // claim detail modal, record fetched by id
	DestInfoPanel   Destination = "info_panel"   // generic read-only info panel
)

// Action is the routing decision for a chosen result. For DestClaimDetail
// the caller fetches the full claim record; a fetch failure is logged and
// nothing opens.
type Action struct {
	Destination Destination
	Result      domain.SearchResult
	EntityID    domain.ID
}
