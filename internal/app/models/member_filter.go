package models

// Discovery filter defaults; age bounds at these values disable the
// date-of-birth window entirely.
const (
	DefaultMinAge = 18
	DefaultMaxAge = 99
)

// Order keys accepted by the discovery list. Anything else falls back to
// last-active ordering.
const (
	OrderByCreated    = "created"
	OrderByCreatedAlt = "createdProfile"
	OrderByLastActive = "lastActive"
)

// MemberFilter is the explicit specification for the discovery list: every
// predicate the member repository applies is enumerated here, so the pipeline
// can be built and inspected without a live store.
type MemberFilter struct {
	RequesterID int64  // always excluded from the result set
	Gender      Gender // required; callers default it to the requester's opposite
	MinAge      int
	MaxAge      int
	Likers      bool // restrict to members who liked the requester
	Likees      bool // restrict to members the requester liked
	OrderBy     string
	Page        int
	PageSize    int
}
