package models

// Dashboard holds the values rendered into the dashboard page shell.
type Dashboard struct {
	Title   string
	Version string
}
