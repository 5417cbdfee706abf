package handler

// Request and response types owned by the transport layer. These are
// intentionally separate from ports/domain types so the JSON contract is not
// coupled to internal service changes.

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=USER ADMIN"`
}

// editUserRequest always carries all three fields; an update is a same-shaped
// overwrite, not a sparse patch.
type editUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=USER ADMIN"`
}

// userResponse is the outward-facing user shape. Password, role and creation
// timestamp are deliberately absent.
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listUsersResponse struct {
	Data       []userResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
