package api

import "github.com/practicum/shareit-api/internal/domain"

// CreateUserRequest is the body of POST /users. The email format check
// matches the boundary-level validation only; blank-versus-duplicate email
// rules live in the service layer.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UpdateUserRequest is the body of PATCH /users/{userId}. Absent fields are
// left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UserResponse is the wire shape of a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateItemRequest is the body of POST /items. All field rules are enforced
// by the item service so that the availability → name → description
// validation order is preserved.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

// UpdateItemRequest is the body of PATCH /items/{itemId}. Absent fields are
// left unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemResponse is the wire shape of an item.
type ItemResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// userToResponse converts a domain.User to its wire shape.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// usersToResponse converts a slice of users, never returning nil so empty
// lists serialize as [] rather than null.
func usersToResponse(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userToResponse(user))
	}
	return responses
}

// itemToResponse converts a domain.Item to its wire shape.
func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
	}
}

// itemsToResponse converts a slice of items, never returning nil.
func itemsToResponse(items []*domain.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses
}
