package models

// Channel identifies one of the configured delivery channels.
type Channel string

const (
	ChannelEmail  Channel = "email"
	ChannelLetter Channel = "letter"
	ChannelSMS    Channel = "sms"
)

// ChannelResult records the outcome of one channel attempt for one statement.
type ChannelResult struct {
	Channel Channel
	Err     error
}

// DeliveryReport aggregates per-channel outcomes for a single composed
// document. LetterPrice is filled when the letter channel queried pricing,
// regardless of whether the send afterwards succeeded.
type DeliveryReport struct {
	StatementID string
	Results     []ChannelResult
	LetterPrice string
}

// FirstErr returns the first channel error in attempt order, or nil when all
// attempted channels succeeded.
func (r *DeliveryReport) FirstErr() error {
	for _, res := range r.Results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

// Failed returns the channels that were attempted and failed.
func (r *DeliveryReport) Failed() []Channel {
	var failed []Channel
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res.Channel)
		}
	}
	return failed
}
