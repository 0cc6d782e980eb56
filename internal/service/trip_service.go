package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsettle/internal/models"
	"github.com/mmynk/tripsettle/internal/storage"
	"github.com/mmynk/tripsettle/pkg/api"
)

// TripService implements the trip.v1.TripService procedures.
type TripService struct {
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// CreateTrip creates a trip owned by the caller. The caller is added to the
// roster as a linked member; MemberNames seed additional unlinked members.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("trip name required"))
	}

	trip := &models.Trip{
		Name:     req.Msg.Name,
		Currency: req.Msg.Currency,
		OwnerID:  userID,
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	owner, err := s.store.GetUserByID(ctx, userID)
	if err != nil || owner == nil {
		slog.Error("CreateTrip: failed to load owner", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to load owner account"))
	}
	ownerMember := &models.Member{
		TripID: trip.ID,
		Name:   owner.DisplayName,
		Email:  owner.Email,
		UserID: owner.ID,
	}
	if err := s.store.AddMember(ctx, ownerMember); err != nil {
		slog.Error("CreateTrip: failed to add owner member", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	for _, name := range req.Msg.MemberNames {
		if name == "" || name == owner.DisplayName {
			continue
		}
		member := &models.Member{TripID: trip.ID, Name: name}
		if err := s.store.AddMember(ctx, member); err != nil {
			slog.Error("CreateTrip: failed to add member", "trip_id", trip.ID, "name", name, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	created, err := s.store.GetTrip(ctx, trip.ID)
	if err != nil {
		slog.Error("CreateTrip: failed to reload trip", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Trip created", "trip_id", trip.ID, "owner_id", userID, "members", len(created.Members))
	return connect.NewResponse(&api.CreateTripResponse{Trip: tripToWire(created)}), nil
}

// GetTrip retrieves a trip with its roster.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetTripResponse{Trip: tripToWire(trip)}), nil
}

// ListTrips retrieves every trip the caller owns or belongs to.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.store.ListTripsByUser(ctx, userID)
	if err != nil {
		slog.Error("ListTrips failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	wireTrips := make([]*api.Trip, len(trips))
	for i, t := range trips {
		wireTrips[i] = tripToWire(t)
	}
	return connect.NewResponse(&api.ListTripsResponse{Trips: wireTrips}), nil
}

// DeleteTrip removes a trip and everything attached to it. Owner only.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("only the trip owner can delete it"))
	}
	if err := s.store.DeleteTrip(ctx, trip.ID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	slog.Info("Trip deleted", "trip_id", trip.ID, "user_id", userID)
	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// AddMember adds a member to the trip roster. If the email belongs to a
// registered user the member is linked to that account.
func (s *TripService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member name required"))
	}

	member := &models.Member{
		TripID: trip.ID,
		Name:   req.Msg.Name,
		Email:  req.Msg.Email,
	}
	if req.Msg.Email != "" {
		user, err := s.store.GetUserByEmail(ctx, req.Msg.Email)
		if err != nil {
			slog.Error("AddMember: user lookup failed", "email", req.Msg.Email, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		if user != nil {
			member.UserID = user.ID
		}
	}

	if err := s.store.AddMember(ctx, member); err != nil {
		slog.Error("AddMember failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Member added", "trip_id", trip.ID, "member_id", member.ID)
	return connect.NewResponse(&api.AddMemberResponse{Member: memberToWire(*member)}), nil
}

// RemoveMember removes a member from the roster. A member who paid for or
// participates in any stored expense cannot be removed.
func (s *TripService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := loadTripForUser(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}
	if findMember(trip, req.Msg.MemberID) == nil {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("member %s not on trip", req.Msg.MemberID))
	}

	referenced, err := s.store.MemberHasExpenses(ctx, trip.ID, req.Msg.MemberID)
	if err != nil {
		slog.Error("RemoveMember: expense check failed", "trip_id", trip.ID, "member_id", req.Msg.MemberID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if referenced {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("member has expenses on this trip; reassign or delete them first"))
	}

	if err := s.store.RemoveMember(ctx, trip.ID, req.Msg.MemberID); err != nil {
		slog.Error("RemoveMember failed", "trip_id", trip.ID, "member_id", req.Msg.MemberID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Member removed", "trip_id", trip.ID, "member_id", req.Msg.MemberID)
	return connect.NewResponse(&api.RemoveMemberResponse{}), nil
}
