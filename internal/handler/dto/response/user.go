package response

import (
	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromUserList(views []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(views))
	for i, v := range views {
		res[i] = FromUserView(v)
	}
	return res
}
