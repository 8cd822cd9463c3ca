package model

// Country is the normalized record produced by the enrichment client.
type Country struct {
	Name      string   `json:"name"`
	Capital   string   `json:"capital"`
	Currency  string   `json:"currency"`
	Flag      string   `json:"flag"`
	Languages []string `json:"languages"`
}
