package model

type Project struct {
	ID                int64
	Name              string
	PathWithNamespace string
	WebURL            string
}
