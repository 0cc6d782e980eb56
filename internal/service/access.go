package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsettle/internal/middleware"
	"github.com/mmynk/tripsettle/internal/models"
	"github.com/mmynk/tripsettle/internal/storage"
)

// requireUser extracts the authenticated user ID from the context.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	return userID, nil
}

// isTripMember reports whether the user owns the trip or is linked to one of
// its roster entries.
func isTripMember(trip *models.Trip, userID string) bool {
	if trip.OwnerID == userID {
		return true
	}
	for _, m := range trip.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// loadTripForUser fetches the trip and verifies the user may access it.
func loadTripForUser(ctx context.Context, store storage.Store, tripID, userID string) (*models.Trip, error) {
	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("trip_id required"))
	}
	trip, err := store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if !isTripMember(trip, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you must be a member of this trip"))
	}
	return trip, nil
}

// findMember returns the roster entry with the given member ID, or nil.
func findMember(trip *models.Trip, memberID string) *models.Member {
	for i := range trip.Members {
		if trip.Members[i].ID == memberID {
			return &trip.Members[i]
		}
	}
	return nil
}
