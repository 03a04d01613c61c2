package model

import "time"

type MergeRequest struct {
	ID           int64
	IID          int64
	Title        string
	Author       User
	State        string
	SourceBranch string
	WebURL       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type User struct {
	ID       int64
	Username string
	Name     string
}
