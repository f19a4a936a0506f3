package handlers

import (
	"context"
	"dinefind-server/db"
	"dinefind-server/externals"
	"dinefind-server/model"
	"errors"
	"net/http"
	"strings"
)

var errUnauthorized = errors.New("unauthorized")

// getAuthenticatedUser resolves the acting user from the bearer ID token.
// The identity is always passed on explicitly, no handler trusts ids found
// in the request body.
func getAuthenticatedUser(r *http.Request) (model.User, error) {
	// get Firebase token
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return model.User{}, errUnauthorized
	}
	idToken := strings.TrimPrefix(authHeader, "Bearer ")

	// verify Firebase token
	ctx := context.Background()
	firebaseUID, err := externals.VerifyFirebaseToken(ctx, idToken)
	if err != nil {
		return model.User{}, errUnauthorized
	}

	// resolve the local user
	userDAO := db.NewUserDAO(db.GetDB())
	user, err := userDAO.GetUserByFirebaseUID(firebaseUID)
	if err != nil {
		return model.User{}, errUnauthorized
	}

	return user, nil
}

// canModifyReview implements the owner-or-elevated rule for review
// mutations.
func canModifyReview(user model.User, review model.Review) bool {
	if user.IsAdmin {
		return true
	}
	return review.UserID != nil && *review.UserID == user.UserID
}
