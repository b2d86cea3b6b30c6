package registry

// LicenseSummary describes one license as returned by the licenses listing
// endpoint. Further fields returned by the API (urls, node ids) are ignored.
type LicenseSummary struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

// LicenseText is a single license with its raw template body. The body
// contains placeholder tokens such as "[year]" and "[fullname]" which are
// substituted at render time.
type LicenseText struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// ListOptions holds the optional query parameters for the listing endpoint.
type ListOptions struct {
	PerPage int `url:"per_page,omitempty"`
	Page    int `url:"page,omitempty"`
}
