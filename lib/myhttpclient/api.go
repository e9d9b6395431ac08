package myhttpclient

import "context"

//go:generate mockgen -source=api.go -package myhttpclient -destination sender_mock.go HTTPSender
type HTTPSender interface {
	Send(ctx context.Context, method string, url string, body []byte) (int, []byte, error)
}

func New() HTTPSender {
	return newJSONHTTPClient()
}
