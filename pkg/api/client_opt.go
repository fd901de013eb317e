package api

import (
	"net/http"
)

type bearerOpt struct {
	token string
}

// Bearer attaches an OAuth2 bearer token, used for read endpoints.
func Bearer(token string) *bearerOpt {
	return &bearerOpt{token: "Bearer " + token}
}

func (opt *bearerOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Set("Authorization", opt.token)
}
