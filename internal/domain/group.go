package domain

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type Group struct {
	ID          string
	Name        string
	Description string
	StartDate   Date
	EndDate     Date
	Visibility  Visibility
	OwnerID     string
}
