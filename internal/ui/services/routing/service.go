package routing

import (
	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
)

// Service decides the destination for a chosen search result. Entity
// detail pages are privileged navigation targets: a non-ADMIN role may
// see a record through search yet must never be routed to the restricted
// listing or detail page for it, so every role gate lives in this one
// table instead of being scattered across click handlers.
type Service struct {
	bus eventbus.EventBus
}

// NewService creates a new routing service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// Route evaluates the dispatch table, in order:
//  1. claim results open the claim detail view (record fetched by id)
//  2. scheme results navigate to the scheme page for ADMIN, info panel otherwise
//  3. member results navigate to the filtered members page for ADMIN, info panel otherwise
//  4. everything else opens the info panel regardless of role
func (s *Service) Route(result domain.SearchResult, role domain.Role) Action {
	action := Action{Result: result, EntityID: result.ID}

	switch result.Type {
	case domain.EntityClaim:
		action.Destination = DestClaimDetail
	case domain.EntityScheme:
		if role == domain.RoleAdmin {
			action.Destination = DestSchemePage
		} else {
			action.Destination = DestInfoPanel
		}
	case domain.EntityMember:
		if role == domain.RoleAdmin {
			action.Destination = DestMembersPage
		} else {
			action.Destination = DestInfoPanel
		}
	default:
		action.Destination = DestInfoPanel
	}

	s.bus.Publish(domain.ResultRoutedEvent{
		Result:      result,
		Destination: string(action.Destination),
	})
	return action
}
