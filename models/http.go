package models

// RegisterRequest is the JSON body of POST /api/v1/auth/register.
// Role is optional; an empty value defaults to "user".
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the JSON body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: the issued bearer token
// together with the public view of the account.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// UserResponse wraps a single account for profile endpoints.
type UserResponse struct {
	User User `json:"user"`
}

// UsersResponse is the admin-only listing of all accounts.
type UsersResponse struct {
	Count int    `json:"count"`
	Users []User `json:"users"`
}

// CreateNoteRequest is the JSON body of POST /api/v1/notes.
// Category is optional; an empty value defaults to "Others".
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

// UpdateNoteRequest is the JSON body of PUT /api/v1/notes/{id}. Pointer
// fields distinguish "absent" from "present but empty": only fields that
// appear in the request body are applied.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

// MessageResponse is the generic JSON envelope for status and error messages.
type MessageResponse struct {
	Message string `json:"message"`
}
