package publisher

import "fmt"

// PublishErr is the error type for failed message deliveries.
type PublishErr struct {
	ChannelID string
	Err       error
}

func (e *PublishErr) Error() string {
	return fmt.Sprintf("publish to channel %s failed: %v", e.ChannelID, e.Err)
}

func (e *PublishErr) Unwrap() error {
	return e.Err
}

func NewPublishErr(channelID string, err error) *PublishErr {
	return &PublishErr{ChannelID: channelID, Err: err}
}
