package remoteok

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Config defines RemoteOK API client settings
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Limit      int
	Limiter    *rate.Limiter
}

// Client queries the public RemoteOK feed
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limit      int
	limiter    *rate.Limiter
}

// Job is a RemoteOK listing
type Job struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	CompanyLogo string   `json:"company_logo"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	ApplyURL    string   `json:"apply_url"`
	SalaryMin   float64  `json:"salary_min"`
	SalaryMax   float64  `json:"salary_max"`
	Date        string   `json:"date"`
}
