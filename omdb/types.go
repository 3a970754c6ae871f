package omdb

import "encoding/json"

// SearchResponse is the shape of an OMDb search payload. Response is the
// string "True" or "False"; on "False" only Error is populated.
type SearchResponse struct {
	Response     string       `json:"Response"`
	Search       []SearchItem `json:"Search,omitempty"`
	TotalResults string       `json:"totalResults,omitempty"`
	Error        string       `json:"Error,omitempty"`
}

type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Movie is the shape of an OMDb detail payload.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error,omitempty"`
}

// DecodeSearch parses a raw search payload.
func DecodeSearch(raw []byte) (*SearchResponse, error) {
	out := &SearchResponse{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeMovie parses a raw detail payload.
func DecodeMovie(raw []byte) (*Movie, error) {
	out := &Movie{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
