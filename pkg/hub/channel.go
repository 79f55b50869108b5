package hub

import "fmt"

// Channel is one of the two fixed content distribution tracks offered
// by the hub. Each channel has its own paginated collection index.
type Channel string

const (
	// ChannelValidated is the validated content track.
	ChannelValidated Channel = "validated"

	// ChannelCertified is the certified content track. The hub serves
	// it under the "published" content path.
	ChannelCertified Channel = "certified"
)

// Channels lists all channels in walk order.
var Channels = []Channel{ChannelValidated, ChannelCertified}

// contentPath maps a channel to the content segment of its index URL.
// The certified track lives under "published" on the API side.
var contentPath = map[Channel]string{
	ChannelValidated: "validated",
	ChannelCertified: "published",
}

// IndexPath returns the start path of the channel's collection index,
// requesting up to limit items per page.
func (ch Channel) IndexPath(limit int) string {
	return fmt.Sprintf("/api/automation-hub/v3/plugin/ansible/content/%s/collections/index/?limit=%d", contentPath[ch], limit)
}

// String implements fmt.Stringer.
func (ch Channel) String() string { return string(ch) }
