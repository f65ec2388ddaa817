// Package marne polls the public Marne mod server list.
package marne

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/corpix/uarand"
)

const (
	bf1ListURL = "https://marne.io/api/srvlst/"
	bfvListURL = "https://marne.io/api/v/srvlst/"
)

// ListURL returns the server list endpoint for a game. Anything that is not
// bfv falls through to the Battlefield 1 list.
func ListURL(game string) string {
	if game == "bfv" {
		return bfvListURL
	}
	return bf1ListURL
}

// ServerInfo is one community server as reported by the list API. The API
// sends more fields than these; the rest are ignored on decode.
type ServerInfo struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	MapName        string `json:"mapName"`
	GameMode       string `json:"gameMode"`
	MaxPlayers     int    `json:"maxPlayers"`
	CurrentPlayers int    `json:"currentPlayers"`
	Region         string `json:"region"`
	Country        string `json:"country"`
}

type ServerList struct {
	Servers []ServerInfo `json:"servers"`
}

type Client struct {
	URL  string
	HTTP *http.Client
}

func NewClient(game string) *Client {
	return &Client{
		URL:  ListURL(game),
		HTTP: &http.Client{},
	}
}

// Fetch downloads and decodes the current server list. It returns a
// NetworkError when the exchange fails and a ParseError when the body does
// not decode.
func (c *Client) Fetch() (ServerList, error) {
	var list ServerList

	req, err := http.NewRequest("GET", c.URL, nil)
	if err != nil {
		return list, &NetworkError{URL: c.URL, Err: err}
	}
	req.Header.Set("User-Agent", uarand.GetRandom())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return list, &NetworkError{URL: c.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return list, &NetworkError{URL: c.URL, Err: err}
	}

	body = stripBOM(body)
	if err := json.Unmarshal(body, &list); err != nil {
		return list, &ParseError{Raw: string(body), Err: err}
	}

	return list, nil
}

// stripBOM drops the UTF-8 byte order mark the list API prefixes to its
// responses. Only a leading 0xEF triggers the strip.
func stripBOM(body []byte) []byte {
	if len(body) >= 3 && body[0] == 0xEF {
		return body[3:]
	}
	return body
}
