package handler

import (
	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	}
}

func toEditInput(req editUserRequest) ports.EditUserInput {
	return ports.EditUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	}
}

// --- Service result → HTTP response ---

func toUserResponse(r *ports.UserResult) userResponse {
	return userResponse{
		ID:       r.ID,
		Username: r.Username,
	}
}

func toListResponse(p *ports.UserPage) listUsersResponse {
	items := make([]userResponse, len(p.Items))
	for i, u := range p.Items {
		items[i] = toUserResponse(&u)
	}
	return listUsersResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}
}
