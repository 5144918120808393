package domain

// ActionKind identifies a platform action that earns coins. The set is
// closed; quest and game awards bypass the rate table with an explicit
// override amount instead of registering new kinds.
type ActionKind string

const (
	ActionPostCreated    ActionKind = "post_created"
	ActionVideoPosted    ActionKind = "video_posted"
	ActionListingCreated ActionKind = "listing_created"
	ActionLikeGiven      ActionKind = "like_given"
	ActionCommentPosted  ActionKind = "comment_posted"
	ActionDailyLogin     ActionKind = "daily_login"
)

// CapReason identifies which earning cap truncated a credit.
type CapReason string

const (
	CapReasonNone    CapReason = ""
	CapReasonDaily   CapReason = "daily"
	CapReasonMonthly CapReason = "monthly"
	CapReasonBoth    CapReason = "both"
)

// Age bounds for the earning policy. Users under MinimumAge are rejected
// at registration; the engine treats anything lower as a caller bug.
// Earnings of users below AdultAge are split between available and locked.
const (
	MinimumAge = 13
	AdultAge   = 18
)
