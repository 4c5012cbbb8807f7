package mockfotmob

import (
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) SquadPhotos(squadURL string) (map[string]string, error) {
	args := c.Called(squadURL)

	var photos map[string]string
	if args.Get(0) != nil {
		photos = args.Get(0).(map[string]string)
	}

	return photos, args.Error(1)
}
