package model

// Item is one inventory record as served by the remote source.
// Quantity only seeds a counter; the live value never flows back here.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Payload is the success body: {"data": [...]}.
type Payload struct {
	Data []Item `json:"data"`
}
