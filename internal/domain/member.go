package domain

type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
)

type MemberStatus string

const (
	StatusPending MemberStatus = "pending"
	StatusActive  MemberStatus = "active"
	StatusLeft    MemberStatus = "left"
	StatusRemoved MemberStatus = "removed"
)

// Member is one user's relationship to one group. ID is the membership id;
// goals are scoped to it, not to the user directly.
type Member struct {
	ID          string
	UserID      string
	DisplayName string
	Role        MemberRole
	Status      MemberStatus
	JoinedAt    Date
}

// FindActiveMembership returns the membership id of userID's active
// membership, or false when the user has none.
func FindActiveMembership(members []Member, userID string) (string, bool) {
	for _, m := range members {
		if m.UserID == userID && m.Status == StatusActive {
			return m.ID, true
		}
	}
	return "", false
}
