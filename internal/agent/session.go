// Package agent implements the conversational CV-collection agent: a
// finite-state machine that walks a user through personal info, work
// experience, education and skills, using the model gateway both to extract
// fields from free text and to judge whether a follow-up question is needed.
package agent

// Phase is a named stage in the conversation's fixed linear ordering.
// Phases only ever move forward: personal info → experience → education →
// skills → finalized.
type Phase string

// Conversation phases in transition order.
const (
	PhaseCollectingPersonalInfo Phase = "collecting_personal_info"
	PhaseCollectingExperience   Phase = "collecting_experience"
	PhaseCollectingEducation    Phase = "collecting_education"
	PhaseCollectingSkills       Phase = "collecting_skills"
	PhaseFinalized              Phase = "finalized"
)

// MaxFollowups bounds the number of experience turns so the conversation is
// guaranteed to progress even if the model keeps asking for more detail.
const MaxFollowups = 4

// JobPosting is the immutable posting captured at session creation.
type JobPosting struct {
	Title   string `json:"title"`
	RawText string `json:"raw_text"`
}

// PersonalInfo holds contact fields extracted from the user's replies.
// Fields are populated incrementally and never cleared once set.
type PersonalInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Session is the mutable per-conversation state carried across turns by the
// caller. The core never persists it; entry slices are append-only and a
// session that reaches PhaseFinalized is not mutated again.
type Session struct {
	Phase             Phase        `json:"phase"`
	JobPosting        JobPosting   `json:"job_posting"`
	Personal          PersonalInfo `json:"personal"`
	ExperienceEntries []string     `json:"experience_entries"`
	EducationEntries  []string     `json:"education_entries"`
	SkillsEntries     []string     `json:"skills_entries"`
	FollowupsAsked    int          `json:"followups_asked"`
}

// Complete reports whether all four data groups have been collected.
func (s *Session) Complete() bool {
	return s.Personal.Name != "" &&
		len(s.ExperienceEntries) > 0 &&
		len(s.EducationEntries) > 0 &&
		len(s.SkillsEntries) > 0
}
