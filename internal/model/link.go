package model

// Link is a hypermedia reference attached to outgoing representations.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}
