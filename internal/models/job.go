package models

import "time"

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusFailed  LogStatus = "failed"
)

// Job is one supplier-to-storefront synchronization run over a fixed list of
// product codes. ProductCodes, Credentials and Rules are fixed at creation;
// Logs is append-only and len(Logs) always equals Done.
type Job struct {
	ID           string         `json:"id"`
	Kind         string         `json:"kind"`
	Status       JobStatus      `json:"status"`
	Total        int            `json:"total"`
	Done         int            `json:"done"`
	StartedAt    time.Time      `json:"started"`
	EndedAt      *time.Time     `json:"ended"`
	Error        string         `json:"error"`
	Logs         []LogEntry     `json:"-"`
	ProductCodes []string       `json:"-"`
	Credentials  JobCredentials `json:"-"`
	Rules        RuleSet        `json:"-"`
}

// LogEntry records the outcome of a single product code within a job.
type LogEntry struct {
	ItemID  string    `json:"itemId"`
	Status  LogStatus `json:"status"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// JobCredentials carries the upstream API configuration for the duration of a
// job. It is never serialized in status or log responses.
type JobCredentials struct {
	Promodata PromodataConfig
	Woo       WooConfig
}

type PromodataConfig struct {
	BaseURL string `json:"baseUrl"`
	Token   string `json:"token"`
}

type WooConfig struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

// JobSummary is the redacted view returned by the submission and status
// endpoints: no logs, no product codes, no credentials, no rule snapshot.
type JobSummary struct {
	ID      string     `json:"id"`
	Kind    string     `json:"kind"`
	Status  JobStatus  `json:"status"`
	Total   int        `json:"total"`
	Done    int        `json:"done"`
	Started time.Time  `json:"started"`
	Ended   *time.Time `json:"ended"`
	Error   string     `json:"error"`
}

func (j *Job) Summary() JobSummary {
	return JobSummary{
		ID:      j.ID,
		Kind:    j.Kind,
		Status:  j.Status,
		Total:   j.Total,
		Done:    j.Done,
		Started: j.StartedAt,
		Ended:   j.EndedAt,
		Error:   j.Error,
	}
}
