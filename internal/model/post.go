package model

import (
	"net/url"
	"strconv"
)

// Post is one remote post resource. The four fields mirror the wire JSON
// object 1:1; a Post is only meaningful with all four populated. Posts are
// built once (decoded from a response, or assembled before a create) and not
// mutated afterwards.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// FormValues returns the four fields as form key/value pairs for the
// form-encoded create operation. Integers become their decimal string form.
func (p Post) FormValues() url.Values {
	v := url.Values{}
	v.Set("userId", strconv.Itoa(p.UserID))
	v.Set("id", strconv.Itoa(p.ID))
	v.Set("title", p.Title)
	v.Set("body", p.Body)
	return v
}
