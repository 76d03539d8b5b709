package jsearch

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Config defines JSearch (RapidAPI) client settings
type Config struct {
	APIKey     string
	Host       string // RapidAPI host header, e.g. jsearch.p.rapidapi.com
	BaseURL    string // defaults to https://<Host>
	HTTPClient *http.Client
	Limit      int
	Limiter    *rate.Limiter
}

// Client queries the JSearch API
type Client struct {
	apiKey     string
	host       string
	baseURL    string
	httpClient *http.Client
	limit      int
	limiter    *rate.Limiter
}

type searchResponse struct {
	Status string `json:"status"`
	Data   []Job  `json:"data"`
}

// Job is a JSearch listing
type Job struct {
	JobID           string  `json:"job_id"`
	Title           string  `json:"job_title"`
	EmployerName    string  `json:"employer_name"`
	EmployerLogo    string  `json:"employer_logo"`
	EmployerWebsite string  `json:"employer_website"`
	EmploymentType  string  `json:"job_employment_type"`
	ApplyLink       string  `json:"job_apply_link"`
	GoogleLink      string  `json:"job_google_link"`
	Description     string  `json:"job_description"`
	City            string  `json:"job_city"`
	Country         string  `json:"job_country"`
	MinSalary       float64 `json:"job_min_salary"`
	MaxSalary       float64 `json:"job_max_salary"`
}
